package bookstore

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		in      string
		wantOK  bool
		wantStr string
	}{
		{"10", true, "10"},
		{" 12.50 ", true, "12.5"},
		{"-3", true, "-3"},
		{"5.0", true, "5"},
		{"", false, ""},
		{"   ", false, ""},
		{"NaN", false, ""},
		{"nan", false, ""},
		{"N/A", false, ""},
		{"None", false, ""},
		{"bad", false, ""},
		{"$12", false, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			n := ParseNumber(tc.in)
			if n.Valid() != tc.wantOK {
				t.Fatalf("ParseNumber(%q).Valid() = %v, want %v", tc.in, n.Valid(), tc.wantOK)
			}
			if got := n.String(); got != tc.wantStr {
				t.Errorf("ParseNumber(%q).String() = %q, want %q", tc.in, got, tc.wantStr)
			}
		})
	}
}

func TestNumber_Whole(t *testing.T) {
	testCases := map[string]string{
		"5.7":  "5",
		"5.0":  "5",
		"42":   "42",
		"1e25": "10000000000000000000000000",
	}
	for in, want := range testCases {
		if got := ParseNumber(in).Whole().String(); got != want {
			t.Errorf("ParseNumber(%q).Whole() = %s, want %s", in, got, want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"3", 3, false},
		{" 10 ", 10, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
