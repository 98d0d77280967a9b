package ducpdf

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// MergedLine is the text of one structural line collapsed into a single run.
type MergedLine struct {
	BBox     BBox
	Text     string
	FontSize float64 // points
}

// MergeLine concatenates the spans of line in source order.
// The line's own bbox is kept verbatim and the font size is taken from the
// first span; per-span style differences are dropped.
// Returns false if the line has no spans.
func MergeLine(line Line) (MergedLine, bool) {
	if len(line.Spans) == 0 {
		return MergedLine{}, false
	}

	var b strings.Builder
	for _, span := range line.Spans {
		b.WriteString(span.Text)
	}

	return MergedLine{
		BBox:     line.BBox,
		Text:     SanitizeText(b.String()),
		FontSize: line.Spans[0].FontSize,
	}, true
}

// SanitizeText replaces byte sequences that are not valid UTF-8 with U+FFFD.
func SanitizeText(s string) string {
	out, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	return out
}
