// Package keyformat splits keys into fixed size groups for display,
// e.g. ABCD-1234-EFGH-5678.
package keyformat

import (
	"errors"
	"strings"
)

const (
	// DefaultGroupSize is the number of characters per group.
	DefaultGroupSize = 4
	// DefaultSeparator joins the groups.
	DefaultSeparator = "-"
)

// ErrInvalidGroupSize is returned for a group size below 1.
var ErrInvalidGroupSize = errors.New("group size must be at least 1")

// Group inserts sep between every size characters of key. Keys shorter than
// size are returned unchanged.
func Group(key string, size int, sep string) (string, error) {
	if size < 1 {
		return "", ErrInvalidGroupSize
	}

	runes := []rune(key)
	if len(runes) < size {
		return key, nil
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		chunks = append(chunks, string(runes[i:min(i+size, len(runes))]))
	}

	return strings.Join(chunks, sep), nil
}
