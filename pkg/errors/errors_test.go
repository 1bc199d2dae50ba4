package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidRange, "end %d before start %d", 2, 5)
	msg := err.Error()

	if !strings.Contains(msg, "INVALID_RANGE") {
		t.Errorf("Error() = %q, want code prefix", msg)
	}
	if !strings.Contains(msg, "end 2 before start 5") {
		t.Errorf("Error() = %q, want formatted message", msg)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write artifact")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeNonContiguous, "expected start 4, got 5")

	if !Is(err, ErrCodeNonContiguous) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidRange) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNonContiguous) {
		t.Error("Is should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeParse, "bad line")); got != ErrCodeParse {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeParse)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidStyle, "unknown style: neon")
	if got := UserMessage(err); got != "unknown style: neon" {
		t.Errorf("UserMessage = %q, want message without code", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestIsUnwrapsChain(t *testing.T) {
	inner := New(ErrCodeInvalidRange, "bad range")
	outer := Wrap(ErrCodeParse, inner, "line 3")

	// The outermost code wins for direct matching.
	if !Is(outer, ErrCodeParse) {
		t.Error("Is should match outer code")
	}
}
