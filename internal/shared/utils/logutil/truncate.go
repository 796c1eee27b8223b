package logutil

// TruncateForLog shortens free text (notes, call messages) before it goes
// into a log record. It cuts on rune boundaries and marks the cut with "...".
func TruncateForLog(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
