package cdkeygen

import "testing"

func TestApplyGrouping(t *testing.T) {
	cases := []struct {
		raw  string
		size int
		sep  string
		want string
	}{
		{"ABCDEFGHIJ", 3, "-", "ABC-DEF-GHI-J"},
		{"ABCDEF", 3, "-", "ABC-DEF"},
		{"ABCDEF", 0, "-", "ABCDEF"},
		{"ABCDEF", -1, "-", "ABCDEF"},
		{"ABCDEF", 6, "-", "ABCDEF"},
		{"ABCDEF", 10, "-", "ABCDEF"},
		{"ABCDEF", 2, "::", "AB::CD::EF"},
		{"", 3, "-", ""},
	}
	for _, tc := range cases {
		if got := ApplyGrouping(tc.raw, tc.size, tc.sep); got != tc.want {
			t.Fatalf("ApplyGrouping(%q, %d, %q) = %q, want %q", tc.raw, tc.size, tc.sep, got, tc.want)
		}
	}
}
