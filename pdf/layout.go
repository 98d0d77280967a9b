package pdf

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/ducflair/ducpdf"
	"github.com/ledongthuc/pdf"
)

// Glyph extents relative to the baseline, as fractions of the font size.
const (
	ascent  = 0.8
	descent = 0.2
)

const (
	// baselineTolerance is the fraction of the font size two baselines may
	// differ by and still belong to the same line.
	baselineTolerance = 0.5

	// wordGapRatio is the horizontal gap, as a fraction of the font size,
	// above which a space is inserted between adjacent glyphs.
	wordGapRatio = 0.2

	// blockGapRatio is the vertical gap between lines, as a fraction of the
	// larger font size, above which a new block starts.
	blockGapRatio = 1.0
)

// Layout groups the positioned glyphs of one page into blocks, lines and
// spans. Lines are ordered top to bottom and glyphs left to right. Adjacent
// glyphs sharing a font and size form one span.
func Layout(texts []pdf.Text, index int, width, height float64) *ducpdf.Page {
	page := &ducpdf.Page{
		Index:  index,
		Width:  width,
		Height: height,
		Blocks: []ducpdf.Block{},
	}

	var prev ducpdf.Line
	for i, row := range groupRows(texts) {
		line := buildLine(row)
		if i == 0 || startsBlock(prev, line) {
			page.Blocks = append(page.Blocks, ducpdf.Block{Type: ducpdf.BlockTypeText, BBox: line.BBox})
		}
		block := &page.Blocks[len(page.Blocks)-1]
		block.Lines = append(block.Lines, line)
		block.BBox = block.BBox.Union(line.BBox)
		prev = line
	}
	return page
}

// groupRows buckets glyphs by baseline, returning rows top to bottom with
// glyphs sorted left to right.
func groupRows(texts []pdf.Text) [][]pdf.Text {
	type row struct {
		baseline float64
		size     float64
		texts    []pdf.Text
	}

	var rows []*row
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		var match *row
		for _, r := range rows {
			tolerance := max(r.size, t.FontSize) * baselineTolerance
			if math.Abs(r.baseline-t.Y) <= tolerance {
				match = r
				break
			}
		}
		if match == nil {
			rows = append(rows, &row{baseline: t.Y, size: t.FontSize, texts: []pdf.Text{t}})
			continue
		}
		match.texts = append(match.texts, t)
		match.size = max(match.size, t.FontSize)
	}

	slices.SortStableFunc(rows, func(a, b *row) int {
		return cmp.Compare(b.baseline, a.baseline)
	})

	out := make([][]pdf.Text, 0, len(rows))
	for _, r := range rows {
		slices.SortStableFunc(r.texts, func(a, b pdf.Text) int {
			return cmp.Compare(a.X, b.X)
		})
		out = append(out, r.texts)
	}
	return out
}

// buildLine turns a sorted row of glyphs into a line of spans.
func buildLine(row []pdf.Text) ducpdf.Line {
	var line ducpdf.Line
	var text strings.Builder
	var span ducpdf.Span

	flush := func() {
		if text.Len() == 0 {
			return
		}
		span.Text = text.String()
		line.Spans = append(line.Spans, span)
		text.Reset()
	}

	for i, t := range row {
		box := glyphBox(t)
		if i == 0 {
			line.BBox = box
		} else {
			line.BBox = line.BBox.Union(box)
		}

		if text.Len() > 0 && (t.Font != span.Font || t.FontSize != span.FontSize) {
			flush()
		}

		if text.Len() == 0 {
			span = ducpdf.Span{BBox: box, Font: t.Font, FontSize: t.FontSize}
		} else {
			span.BBox = span.BBox.Union(box)
		}

		if i > 0 {
			prev := row[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > max(t.FontSize, prev.FontSize)*wordGapRatio && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				text.WriteString(" ")
			}
		}
		text.WriteString(t.S)
	}
	flush()
	return line
}

func glyphBox(t pdf.Text) ducpdf.BBox {
	return ducpdf.BBox{
		X0: t.X,
		Y0: t.Y - t.FontSize*descent,
		X1: t.X + t.W,
		Y1: t.Y + t.FontSize*ascent,
	}
}

// startsBlock reports whether line is far enough below prev to begin a new block.
func startsBlock(prev, line ducpdf.Line) bool {
	gap := prev.BBox.Y0 - line.BBox.Y1
	return gap > max(prev.BBox.Height(), line.BBox.Height())*blockGapRatio
}
