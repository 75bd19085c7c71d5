package theme_test

import (
	"fmt"

	"github.com/go-tide/tide/pkg/theme"
)

// This example shows how component tokens derive from the palette.
func ExampleTheme_SnackbarThemeOf() {
	th := theme.Default()
	snack := th.SnackbarThemeOf()
	fmt.Println(snack.ShowDuration)
	// Output: 4s
}

// This example shows how to override one component's tokens while the rest
// keep deriving from the palette.
func ExampleTheme() {
	th := theme.Default()
	custom := th.BadgeThemeOf()
	custom.Position = "bottom-left"
	th.BadgeTheme = &custom

	fmt.Println(th.BadgeThemeOf().Position)
	// Output: bottom-left
}

// This example shows how CSS color strings from configuration resolve to
// palette colors.
func ExampleParseColor() {
	c, err := theme.ParseColor("tomato")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(theme.CSS(c))
	// Output: rgb(255, 99, 71)
}
