package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := New(CodeInvalidWidth, "width out of range")
	if !stderrors.Is(err, New(CodeInvalidWidth, "different message")) {
		t.Fatal("errors with the same code should match")
	}
	if stderrors.Is(err, New(CodeInvalidHeight, "width out of range")) {
		t.Fatal("errors with different codes should not match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("boom")
	err := Wrap(CodeUpstream, "fetch failed", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("wrapped cause should be reachable via errors.Is")
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if got := CodeOf(New(CodeUserNotFound, "nope")); got != CodeUserNotFound {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUserNotFound)
	}
	wrapped := fmt.Errorf("outer: %w", New(CodeInvalidTheme, "bad theme"))
	if got := CodeOf(wrapped); got != CodeInvalidTheme {
		t.Fatalf("CodeOf(wrapped) = %q, want %q", got, CodeInvalidTheme)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want int
	}{
		{code: CodeInvalidWidth, want: http.StatusBadRequest},
		{code: CodeInvalidCommits, want: http.StatusBadRequest},
		{code: CodeMissingUser, want: http.StatusBadRequest},
		{code: CodeUserNotFound, want: http.StatusNotFound},
		{code: CodeUpstream, want: http.StatusBadGateway},
		{code: CodeRender, want: http.StatusInternalServerError},
		{code: CodeUnknown, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("%q.HTTPStatus() = %d, want %d", tc.code, got, tc.want)
		}
	}
	if got := HTTPStatus(New(CodeInvalidLevel, "bad")); got != http.StatusBadRequest {
		t.Fatalf("HTTPStatus = %d", got)
	}
}
