package keyformat

import (
	"errors"
	"testing"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		name string
		key  string
		size int
		sep  string
		out  string
	}{
		{"empty", "", 4, "-", ""},
		{"shorter than group", "ABC", 4, "-", "ABC"},
		{"exact group", "ABCD", 4, "-", "ABCD"},
		{"default grouping", "ABCD1234EFGH5678", DefaultGroupSize, DefaultSeparator, "ABCD-1234-EFGH-5678"},
		{"wider groups", "ABCD1234EFGH5678", 8, ".", "ABCD1234.EFGH5678"},
		{"trailing partial group", "ABCDEFGHIJ", 4, "-", "ABCD-EFGH-IJ"},
		{"multi character separator", "aabbcc", 2, " | ", "aa | bb | cc"},
		{"multi byte characters", "äöüäöü", 3, "-", "äöü-äöü"},
		{"size one", "abc", 1, ":", "a:b:c"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Group(tc.key, tc.size, tc.sep)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.out {
				t.Fatalf("want %q, got %q", tc.out, got)
			}
		})
	}
}

func TestGroupInvalidSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		if _, err := Group("ABCD", size, "-"); !errors.Is(err, ErrInvalidGroupSize) {
			t.Fatalf("size %d: want ErrInvalidGroupSize, got %v", size, err)
		}
	}
}
