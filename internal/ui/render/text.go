// Package render provides cell-level text helpers for segment content.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters and replaces invalid UTF-8 so caller
// content cannot break the row layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if unicode.IsControl(r) {
			i += size
			continue
		}
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens a string to fit maxWidth, ellipsized, wide-rune aware.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "…")
}

// Center pads a string with spaces on both sides to exactly width columns,
// truncating first if it does not fit. Odd leftover space goes to the right.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Pad fills a string with trailing spaces to the given width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
