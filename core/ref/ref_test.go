package ref

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/FocuswithJustin/scrref/core/books"
)

func TestCanonicalRoundTrip(t *testing.T) {
	for book := 1; book <= 66; book++ {
		for chapter := 0; chapter <= 150; chapter++ {
			for verse := 0; verse <= 150; verse++ {
				r := New(book, chapter, verse)
				got := FromCanonical(r.ToCanonical())
				if got.Book != book || got.Chapter != chapter || got.Verse != verse {
					t.Fatalf("FromCanonical(%d) = %+v, want %d %d:%d", r.ToCanonical(), got, book, chapter, verse)
				}
			}
		}
	}
}

func TestCanonicalTruncation(t *testing.T) {
	tests := []struct {
		ref  Ref
		want int
	}{
		{New(1, 1, 1), 1001001},
		{New(66, 22, 21), 66022021},
		{New(40, 0, 0), 40000000},
		{New(101, 1, 1), 1001001},
		{New(1, 1001, 2), 1001002},
		{New(1, 2, 1005), 1002005},
	}

	for _, tt := range tests {
		if got := tt.ref.ToCanonical(); got != tt.want {
			t.Errorf("%+v.ToCanonical() = %d, want %d", tt.ref, got, tt.want)
		}
	}

	if got := FromCanonical(123456789); got != New(23, 456, 789) {
		t.Errorf("FromCanonical(123456789) = %+v, want 23 456:789", got)
	}
}

func TestSegmentNotEncoded(t *testing.T) {
	a := NewWithSegment(1, 1, 1, 0)
	b := NewWithSegment(1, 1, 1, 3)
	if a.ToCanonical() != b.ToCanonical() {
		t.Error("segment must not change the canonical integer")
	}
	if !b.EqualsCanonical(1001001) {
		t.Error("EqualsCanonical(1001001) = false, want true")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		ref  Ref
		want bool
	}{
		{New(1, 1, 1), true},
		{New(1, 1, 0), true},
		{New(1, 0, 0), false},
		{New(1, 2, 0), false},
		{New(0, 1, 1), false},
		{New(67, 1, 1), false},
		{New(66, 22, 21), true},
	}

	for _, tt := range tests {
		if got := tt.ref.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v, want %v", tt.ref, got, tt.want)
		}
	}

	deutero := books.NewRegistry(books.WithDeuterocanon(true))
	if !New(67, 1, 1).ValidIn(deutero) {
		t.Error("book 67 should be valid when the deuterocanon is enabled")
	}
}

func TestTotalOrder(t *testing.T) {
	ordered := []Ref{
		NewWithSegment(1, 1, 1, 0),
		NewWithSegment(1, 1, 1, 1),
		NewWithSegment(1, 1, 2, 0),
		NewWithSegment(2, 1, 1, 0),
	}

	for i := 0; i < len(ordered)-1; i++ {
		if Compare(ordered[i], ordered[i+1]) >= 0 {
			t.Errorf("Compare(%+v, %+v) >= 0, want < 0", ordered[i], ordered[i+1])
		}
		if Compare(ordered[i+1], ordered[i]) <= 0 {
			t.Errorf("Compare(%+v, %+v) <= 0, want > 0", ordered[i+1], ordered[i])
		}
		if !ordered[i].Less(ordered[i+1]) {
			t.Errorf("%+v.Less(%+v) = false", ordered[i], ordered[i+1])
		}
	}

	shuffled := []Ref{ordered[3], ordered[1], ordered[0], ordered[2]}
	sort.Slice(shuffled, func(i, j int) bool { return shuffled[i].Less(shuffled[j]) })
	for i := range ordered {
		if shuffled[i] != ordered[i] {
			t.Errorf("sorted[%d] = %+v, want %+v", i, shuffled[i], ordered[i])
		}
	}

	if Compare(New(5, 5, 5), New(5, 5, 5)) != 0 {
		t.Error("equal references should compare 0")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{New(1, 1, 1), "GEN 1:1"},
		{New(62, 3, 16), "1JN 3:16"},
		{New(1, 0, 0), "GEN 0:0"},
		{New(0, 1, 1), "??? 1:1"},
	}

	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTitleIntro(t *testing.T) {
	if !New(1, 0, 0).IsTitle() || New(1, 1, 0).IsTitle() {
		t.Error("IsTitle mismatch")
	}
	if !New(1, 1, 0).IsIntro() || New(1, 1, 1).IsIntro() {
		t.Error("IsIntro mismatch")
	}
}

func TestRefJSON(t *testing.T) {
	r := Ref{Book: 43, Chapter: 3, Verse: 16, Segment: 2, Versification: SchemeEnglish}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"book":43,"chapter":3,"verse":16,"segment":2,"versification":4}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestScheme(t *testing.T) {
	for _, s := range Schemes() {
		got, err := ParseScheme(s.String())
		if err != nil {
			t.Fatalf("ParseScheme(%q) failed: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseScheme(%q) = %v, want %v", s.String(), got, s)
		}
		if !s.IsValid() {
			t.Errorf("%v.IsValid() = false", s)
		}
	}

	if got, err := ParseScheme("english"); err != nil || got != SchemeEnglish {
		t.Errorf("ParseScheme(english) = %v, %v", got, err)
	}
	if _, err := ParseScheme("Klingon"); err == nil {
		t.Error("ParseScheme(Klingon) should fail")
	}
	if _, err := ParseScheme("Unknown"); err == nil {
		t.Error("ParseScheme(Unknown) should fail")
	}
	if SchemeUnknown.IsValid() {
		t.Error("SchemeUnknown.IsValid() = true")
	}
}
