package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestTideErrorString(t *testing.T) {
	err := &TideError{
		Op:   "widgets.NewBadge",
		Kind: KindConstruct,
		Err:  errors.New("document required"),
	}
	got := err.Error()
	if !strings.Contains(got, "widgets.NewBadge") || !strings.Contains(got, "[construct]") {
		t.Errorf("unexpected error string %q", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConstruct, "construct"},
		{KindConfig, "config"},
		{KindDOM, "dom"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConstruct(t *testing.T) {
	cause := errors.New("element capability required")
	err := Construct("snackbar", cause)

	if err.Kind != KindConstruct {
		t.Errorf("Kind = %v, want KindConstruct", err.Kind)
	}
	if !strings.Contains(err.Error(), "cannot construct widget") {
		t.Errorf("expected wrapped message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause reachable through Unwrap")
	}
}

func TestReport(t *testing.T) {
	var captured *TideError
	handler := &testHandler{
		onError: func(err *TideError) { captured = err },
	}

	old := SetHandler(handler)
	defer SetHandler(old)

	Report(&TideError{Op: "config.Watch", Kind: KindConfig, Err: errors.New("reload failed")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "config.Watch" {
		t.Errorf("Op = %q, want %q", captured.Op, "config.Watch")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestWarnf(t *testing.T) {
	var captured *Warning
	handler := &testHandler{
		onWarning: func(w *Warning) { captured = w },
	}

	old := SetHandler(handler)
	defer SetHandler(old)

	Warnf("widgets.NewBadge", "unknown position %q, using %q", "middle", "top-right")

	if captured == nil {
		t.Fatal("expected warning to be captured")
	}
	if !strings.Contains(captured.Message, `"middle"`) {
		t.Errorf("expected formatted message, got %q", captured.Message)
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	defer SetHandler(old)

	if DefaultHandler == nil {
		t.Fatal("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler_Output(t *testing.T) {
	var sb strings.Builder
	h := &LogHandler{Out: &sb}

	h.HandleError(&TideError{Op: "a.b", Kind: KindDOM, Err: errors.New("detached")})
	h.HandleWarning(&Warning{Op: "c.d", Message: "fell back"})

	out := sb.String()
	if !strings.Contains(out, "[tide error] a.b [dom]: detached") {
		t.Errorf("unexpected error line in %q", out)
	}
	if !strings.Contains(out, "[tide warning] c.d: fell back") {
		t.Errorf("unexpected warning line in %q", out)
	}
}

type testHandler struct {
	onError   func(*TideError)
	onWarning func(*Warning)
}

func (h *testHandler) HandleError(err *TideError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandleWarning(w *Warning) {
	if h.onWarning != nil {
		h.onWarning(w)
	}
}
