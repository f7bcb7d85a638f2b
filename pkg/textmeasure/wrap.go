package textmeasure

import (
	"strings"

	"golang.org/x/image/math/fixed"
)

// wrap breaks s into lines no wider than maxWidth, breaking at spaces.
// Explicit newlines always break. A word wider than maxWidth gets a line of
// its own. maxWidth < 0 disables wrapping.
func (f *face) wrap(s string, maxWidth fixed.Int26_6) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 || maxWidth < 0 {
			lines = append(lines, strings.TrimSpace(para))
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if f.width(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
