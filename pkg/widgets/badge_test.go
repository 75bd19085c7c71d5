package widgets_test

import (
	"errors"
	"testing"

	tideerrors "github.com/go-tide/tide/pkg/errors"
	"github.com/go-tide/tide/pkg/uitest"
	"github.com/go-tide/tide/pkg/widgets"
)

func testEnv(h *uitest.Harness) widgets.Env {
	return widgets.Env{Document: h.Doc, Scheduler: h.Clock}
}

func TestNewBadge_BuildsHostAndTextPart(t *testing.T) {
	h := uitest.New()
	b, err := widgets.NewBadge(testEnv(h), widgets.BadgeOptions{Label: "3"})
	if err != nil {
		t.Fatalf("NewBadge: %v", err)
	}
	host := b.Element()
	if host.Tag() != "span" {
		t.Fatalf("host tag = %q, want span", host.Tag())
	}
	if !host.HasClass("tide-badge") {
		t.Fatalf("host classes = %v, want tide-badge", host.Classes())
	}
	if !host.HasClass("tide-badge--top-right") {
		t.Fatalf("host classes = %v, want default position modifier", host.Classes())
	}
	text := host.QueryByClass("tide-badge-text")
	if text == nil {
		t.Fatal("no text part")
	}
	if text.Text() != "3" {
		t.Fatalf("text = %q, want %q", text.Text(), "3")
	}
	if got := host.Style("background-color"); got == "" {
		t.Fatal("expected themed background-color style")
	}
}

func TestNewBadge_HonorsPosition(t *testing.T) {
	h := uitest.New()
	b, err := widgets.NewBadge(testEnv(h), widgets.BadgeOptions{
		Label:    "9",
		Position: widgets.PositionBottomLeft,
	})
	if err != nil {
		t.Fatalf("NewBadge: %v", err)
	}
	if b.Position() != widgets.PositionBottomLeft {
		t.Fatalf("Position() = %q, want bottom-left", b.Position())
	}
	if !b.Element().HasClass("tide-badge--bottom-left") {
		t.Fatalf("classes = %v, want bottom-left modifier", b.Element().Classes())
	}
}

func TestNewBadge_UnknownPositionWarnsAndFallsBack(t *testing.T) {
	h := uitest.New()
	rec := uitest.Capture(t)

	b, err := widgets.NewBadge(testEnv(h), widgets.BadgeOptions{Label: "1", Position: "center"})
	if err != nil {
		t.Fatalf("NewBadge: %v", err)
	}
	if b.Position() != widgets.PositionTopRight {
		t.Fatalf("Position() = %q, want fallback top-right", b.Position())
	}
	if !b.Element().HasClass("tide-badge--top-right") {
		t.Fatalf("classes = %v, want top-right modifier", b.Element().Classes())
	}
	warnings := rec.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Op != "widgets.NewBadge" {
		t.Fatalf("warning op = %q", warnings[0].Op)
	}
}

func TestNewBadge_RequiresDocument(t *testing.T) {
	_, err := widgets.NewBadge(widgets.Env{}, widgets.BadgeOptions{Label: "1"})
	if err == nil {
		t.Fatal("expected error without document")
	}
	var te *tideerrors.TideError
	if !errors.As(err, &te) {
		t.Fatalf("error type = %T, want *tideerrors.TideError", err)
	}
	if te.Kind != tideerrors.KindConstruct {
		t.Fatalf("kind = %v, want construct", te.Kind)
	}
}

func TestBadge_SetLabel(t *testing.T) {
	h := uitest.New()
	b, err := widgets.NewBadge(testEnv(h), widgets.BadgeOptions{Label: "3"})
	if err != nil {
		t.Fatalf("NewBadge: %v", err)
	}
	b.SetLabel("99+")
	if b.Label() != "99+" {
		t.Fatalf("Label() = %q, want 99+", b.Label())
	}
	if got := b.Element().QueryByClass("tide-badge-text").Text(); got != "99+" {
		t.Fatalf("text part = %q, want 99+", got)
	}
}

func TestBadge_DestroyDetaches(t *testing.T) {
	h := uitest.New()
	b, err := widgets.NewBadge(testEnv(h), widgets.BadgeOptions{Label: "3"})
	if err != nil {
		t.Fatalf("NewBadge: %v", err)
	}
	h.Doc.Body().AppendChild(b.Element())

	b.Destroy()
	if b.Element().Attached() {
		t.Fatal("host still attached after destroy")
	}
	if got := uitest.CountByClass(h.Doc.Body(), "tide-badge"); got != 0 {
		t.Fatalf("badges in document = %d, want 0", got)
	}
	b.Destroy() // second destroy is a no-op
}
