package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Bytes returns a human-readable byte size (e.g. "12 kB").
func Bytes(b int64) string {
	if b < 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(b))
}

// Number formats an int with thousands separators (e.g. 1500 → "1,500").
func Number(n int) string {
	return humanize.Comma(int64(n))
}

// Plural returns "1 match" / "2 matches" style counts.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", Number(n), singular)
	}
	return fmt.Sprintf("%s %s", Number(n), plural)
}

// Truncate returns s truncated to max runes with "..." suffix.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
