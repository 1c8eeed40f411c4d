package parser

import "strings"

// SplitUniversalLines splits s at "\n", "\r\n" or a lone "\r". Terminators
// are dropped, and a trailing empty segment is not a line.
func SplitUniversalLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}
