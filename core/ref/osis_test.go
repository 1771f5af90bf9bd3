package ref

import (
	"errors"
	"testing"

	scrErrors "github.com/FocuswithJustin/scrref/core/errors"
)

func TestParseOSIS(t *testing.T) {
	tests := []struct {
		input string
		start Ref
		end   Ref
	}{
		{"Gen", New(1, 1, 1), New(1, 1, 1)},
		{"Gen.1", New(1, 1, 1), New(1, 1, 1)},
		{"Gen.1.1", New(1, 1, 1), New(1, 1, 1)},
		{"Gen.1.1a", NewWithSegment(1, 1, 1, 1), NewWithSegment(1, 1, 1, 1)},
		{"Matt.5.3-12", New(40, 5, 3), New(40, 5, 12)},
		{"1John.3.16", New(62, 3, 16), New(62, 3, 16)},
		{"Ps.119.176", New(19, 119, 176), New(19, 119, 176)},
		{"Gen.1.1-Gen.1.5", New(1, 1, 1), New(1, 1, 5)},
		{"Gen.1.1a-3b", NewWithSegment(1, 1, 1, 1), NewWithSegment(1, 1, 3, 2)},
		{"1John.1.1-1John.2.3", New(62, 1, 1), New(62, 2, 3)},
		{"Gen.50.26-Exod.1.1", New(1, 50, 26), New(2, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rr, err := ParseOSIS(tt.input)
			if err != nil {
				t.Fatalf("ParseOSIS(%q) failed: %v", tt.input, err)
			}
			if rr.Start() != tt.start {
				t.Errorf("Start = %+v, want %+v", rr.Start(), tt.start)
			}
			if rr.End() != tt.end {
				t.Errorf("End = %+v, want %+v", rr.End(), tt.end)
			}
		})
	}
}

func TestParseOSISErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", scrErrors.ErrInvalidInput},
		{"gen.1.1", scrErrors.ErrInvalidInput},
		{"Foo.1.1", scrErrors.ErrNotFound},
		{"Tob.1.1", scrErrors.ErrNotFound},
		{"Gen.1.5-3", scrErrors.ErrInvalidInput},
		{"Exod.1.1-Gen.1.1", scrErrors.ErrInvalidInput},
		{"Gen.1.1-", scrErrors.ErrInvalidInput},
		{"Gen.1.1-Foo.1.2", scrErrors.ErrNotFound},
	}

	for _, tt := range tests {
		_, err := ParseOSIS(tt.input)
		if err == nil {
			t.Errorf("ParseOSIS(%q) should fail", tt.input)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseOSIS(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}

func TestOSIS(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{New(1, 1, 1), "Gen.1.1"},
		{NewWithSegment(1, 1, 1, 2), "Gen.1.1b"},
		{New(62, 3, 0), "1John.3"},
		{New(1, 0, 0), "Gen"},
		{New(0, 1, 1), ""},
	}

	for _, tt := range tests {
		if got := tt.ref.OSIS(); got != tt.want {
			t.Errorf("%+v.OSIS() = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestOSISRoundTrip(t *testing.T) {
	for book := 1; book <= 66; book++ {
		r := New(book, 3, 7)
		rr, err := ParseOSIS(r.OSIS())
		if err != nil {
			t.Fatalf("ParseOSIS(%q) failed: %v", r.OSIS(), err)
		}
		if rr.Start() != r {
			t.Errorf("round trip of %q = %+v, want %+v", r.OSIS(), rr.Start(), r)
		}
	}
}
