package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-tide/tide/pkg/config"
)

// scaffoldGoVersion is the go directive written into scaffolded go.mod files.
const scaffoldGoVersion = "1.24"

const scaffoldConfig = `# tide.yaml configures the class-name prefix and the theme.
prefix: tide
theme:
  palette: light
  colors:
    primary: "#6750a4"
  durations:
    snackbar_show: 4s
    ripple_fade: 300ms
`

const scaffoldMain = `package main

import (
	"fmt"
	"os"

	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/theme"
	"github.com/go-tide/tide/pkg/widgets"
)

func main() {
	doc := dom.NewDocument(dom.WithTouchSupport(true))
	env := widgets.Env{Document: doc}

	tabs, err := widgets.NewTabs(env, widgets.TabsOptions{
		Labels: []string{"Home", "Settings"},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	doc.Body().AppendChild(tabs.Element())
	tabs.OnChange(func(i int) { fmt.Println("active tab:", i) })
	tabs.Activate(1)

	fmt.Println(theme.Stylesheet(theme.Default(), "tide"))
}
`

// initCommand creates the init command for scaffolding a tide application.
func (c *CLI) initCommand() *cobra.Command {
	var (
		modulePath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a tide application",
		Long: `Scaffold a tide application in the given directory (default: current).

init writes a go.mod (unless one exists), a tide.yaml with the default
theme, and a main.go that assembles a first widget. The module path is
taken from --module, an existing go.mod, or derived from the directory
name under example.com/.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runInit(dir, modulePath, force)
		},
	}

	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "module path for the scaffolded app")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func (c *CLI) runInit(dir, modulePath string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	path, err := c.ensureModule(dir, modulePath, force)
	if err != nil {
		return err
	}

	if err := c.writeFile(filepath.Join(dir, config.File), []byte(scaffoldConfig), force); err != nil {
		return err
	}
	if err := c.writeFile(filepath.Join(dir, "main.go"), []byte(scaffoldMain), force); err != nil {
		return err
	}

	c.Logger.Info("scaffolded tide application", "dir", dir, "module", path)
	c.Logger.Info("next: go get github.com/go-tide/tide && go run .")
	return nil
}

// ensureModule resolves the module path and writes go.mod when missing.
// An existing go.mod wins over --module so init never rewrites module
// identity under an established project.
func (c *CLI) ensureModule(dir, modulePath string, force bool) (string, error) {
	gomod := filepath.Join(dir, "go.mod")

	if data, err := os.ReadFile(gomod); err == nil {
		f, err := modfile.ParseLax(gomod, data, nil)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", gomod, err)
		}
		if f.Module == nil || f.Module.Mod.Path == "" {
			return "", fmt.Errorf("%s has no module directive", gomod)
		}
		path := f.Module.Mod.Path
		if modulePath != "" && modulePath != path {
			c.Logger.Warn("go.mod exists, keeping its module path", "module", path)
		}
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read %s: %w", gomod, err)
	}

	path := modulePath
	if path == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", err
		}
		path = "example.com/" + sanitizeModuleName(filepath.Base(abs))
	}
	if err := module.CheckPath(path); err != nil {
		return "", fmt.Errorf("invalid module path %q: %w", path, err)
	}

	f := new(modfile.File)
	if err := f.AddModuleStmt(path); err != nil {
		return "", err
	}
	if err := f.AddGoStmt(scaffoldGoVersion); err != nil {
		return "", err
	}
	data, err := f.Format()
	if err != nil {
		return "", err
	}
	if err := c.writeFile(gomod, data, force); err != nil {
		return "", err
	}
	return path, nil
}

// writeFile writes data to path, skipping existing files unless force is
// set.
func (c *CLI) writeFile(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			c.Logger.Warn("exists, skipping (use --force to overwrite)", "file", path)
			return nil
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.Logger.Debug("wrote", "file", path)
	return nil
}

// sanitizeModuleName lowercases name and strips characters module paths
// cannot carry.
func sanitizeModuleName(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-.")
	if out == "" {
		out = "app"
	}
	return out
}
