package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name    string
		err     *NotFoundError
		wantMsg string
	}{
		{
			name:    "with ID",
			err:     &NotFoundError{Resource: "book", ID: "XYZ"},
			wantMsg: "book not found: XYZ",
		},
		{
			name:    "without ID",
			err:     &NotFoundError{Resource: "writing system"},
			wantMsg: "writing system not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrNotFound) {
				t.Errorf("errors.Is(%v, ErrNotFound) = false, want true", tt.err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("scheme", "unknown scheme name")
	if got, want := err.Error(), "validation failed for scheme: unknown scheme name"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should unwrap to ErrInvalidInput")
	}

	noField := &ValidationError{Message: "bad"}
	if got, want := noField.Error(), "validation failed: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with line",
			err:  NewParse("versification", "eng.vrs", 12, "XYZ 1:2", "unknown book code"),
			want: `failed to parse versification at eng.vrs:12: unknown book code: "XYZ 1:2"`,
		},
		{
			name: "path only",
			err:  &ParseError{Format: "book names", Path: "names.xml", Message: "no root"},
			want: "failed to parse book names at names.xml: no root",
		},
		{
			name: "no location",
			err:  &ParseError{Format: "book names", Message: "empty document"},
			want: "failed to parse book names: empty document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Error("ParseError should unwrap to ErrInvalidInput")
			}
		})
	}

	cause := fmt.Errorf("unexpected token")
	withCause := &ParseError{Format: "OSIS reference", Message: "bad", Err: cause}
	if !errors.Is(withCause, ErrInvalidInput) || !errors.Is(withCause, cause) {
		t.Error("ParseError with cause should match both ErrInvalidInput and the cause")
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfig("data directory", "not initialized", nil)
	if got, want := err.Error(), "configuration error: data directory: not initialized"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Error("ConfigError should match ErrConfiguration")
	}

	wrapped := NewConfig("eng.vrs", "missing", fs.ErrNotExist)
	if !errors.Is(wrapped, ErrConfiguration) {
		t.Error("wrapped ConfigError should match ErrConfiguration")
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("wrapped ConfigError should match the underlying error")
	}
}

func TestIOError(t *testing.T) {
	underlying := fmt.Errorf("disk error")
	err := NewIO("read", "/data/eng.vrs", underlying)
	if got, want := err.Error(), "failed to read /data/eng.vrs: disk error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, underlying) {
		t.Error("IOError should unwrap to the underlying error")
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupported("scheme", "no data file name")
	if got, want := err.Error(), "unsupported scheme: no data file name"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should unwrap to ErrUnsupported")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	err := Wrap(ErrNotFound, "loading scheme")
	if !Is(err, ErrNotFound) {
		t.Error("Wrap should preserve the wrapped error")
	}
	if got, want := err.Error(), "loading scheme: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	errf := Wrapf(ErrInvalidInput, "line %d", 3)
	if got, want := errf.Error(), "line 3: invalid input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var pe *ParseError
	if !As(Wrap(NewParse("x", "", 0, "", "m"), "ctx"), &pe) {
		t.Error("As should find the ParseError")
	}
}
