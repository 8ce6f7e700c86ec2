package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidDirection, "unknown direction %q", "up"), `INVALID_DIRECTION: unknown direction "up"`},
		{"with cause", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "open catalog.json"), "FILE_NOT_FOUND: open catalog.json: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	sentinel := errors.New("graph has cycle")
	err := Wrap(ErrCodeCycleDetected, fmt.Errorf("assign levels: %w", sentinel), "cannot lay out catalog")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should reach the wrapped sentinel")
	}
	if UserMessage(err) != "cannot lay out catalog" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestIsAndGetCode(t *testing.T) {
	nested := fmt.Errorf("render: %w", Wrap(ErrCodeInvalidCatalog, New(ErrCodeInvalidInput, "inner"), "outer"))

	tests := []struct {
		name     string
		err      error
		code     Code
		want     bool
		wantCode Code
	}{
		{"match", New(ErrCodeCourseNotFound, "CS999"), ErrCodeCourseNotFound, true, ErrCodeCourseNotFound},
		{"mismatch", New(ErrCodeCourseNotFound, "CS999"), ErrCodeCycleDetected, false, ErrCodeCourseNotFound},
		{"outermost wins", nested, ErrCodeInvalidCatalog, true, ErrCodeInvalidCatalog},
		{"inner not reported", nested, ErrCodeInvalidInput, false, ErrCodeInvalidCatalog},
		{"plain", errors.New("plain"), ErrCodeInternal, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestCodeKind(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{ErrCodeInvalidInput, KindInvalid},
		{ErrCodeInvalidCatalog, KindInvalid},
		{ErrCodeInvalidFormat, KindInvalid},
		{ErrCodeInvalidDirection, KindInvalid},
		{ErrCodeInvalidCourseID, KindInvalid},
		{ErrCodeNotFound, KindNotFound},
		{ErrCodeCourseNotFound, KindNotFound},
		{ErrCodeFileNotFound, KindNotFound},
		{ErrCodeCycleDetected, KindStructural},
		{ErrCodeUnsupported, KindUnsupported},
		{ErrCodeInternal, KindInternal},
		{"SOMETHING_ELSE", KindInternal},
	}

	for _, tt := range tests {
		if got := tt.code.Kind(); got != tt.want {
			t.Errorf("%s.Kind() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestUserMessagePlainError(t *testing.T) {
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}
