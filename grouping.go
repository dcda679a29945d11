package cdkeygen

import "strings"

// ApplyGrouping partitions raw into consecutive chunks of groupSize
// characters joined by sep. The final chunk may be shorter when the length
// does not divide evenly. groupSize <= 0 returns raw unchanged. Only
// fixed-length output is grouped; pattern templates carry their own
// separators inline.
func ApplyGrouping(raw string, groupSize int, sep string) string {
	if groupSize <= 0 {
		return raw
	}
	runes := []rune(raw)
	if len(runes) <= groupSize {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw) + (len(runes)/groupSize)*len(sep))
	for i := 0; i < len(runes); i += groupSize {
		if i > 0 {
			b.WriteString(sep)
		}
		end := i + groupSize
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(string(runes[i:end]))
	}
	return b.String()
}
