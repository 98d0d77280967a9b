package ducpdf

import (
	"context"
	"fmt"
)

// ConvertPage returns the text elements of page in block and line order.
// Non-text blocks and lines without spans are skipped.
func ConvertPage(page *Page, builder *ElementBuilder) []*TextElement {
	elements := []*TextElement{}
	for _, block := range page.Blocks {
		if block.Type != BlockTypeText {
			continue
		}
		for _, line := range block.Lines {
			merged, ok := MergeLine(line)
			if !ok {
				continue
			}
			g := Transform(merged, page.Height)
			elements = append(elements, builder.Build(g, merged.Text))
		}
	}
	return elements
}

// Converter converts every page of an opened PageSource.
type Converter struct {
	Source  PageSource
	Builder *ElementBuilder
}

// NewConverter returns a Converter reading from src.
func NewConverter(src PageSource) *Converter {
	return &Converter{
		Source:  src,
		Builder: NewElementBuilder(),
	}
}

// ConvertPage returns the elements of the page at the 0-based index.
func (c *Converter) ConvertPage(ctx context.Context, index int) ([]*TextElement, error) {
	page, err := c.Source.Page(ctx, index)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %d: %w", index, err)
	}
	return ConvertPage(page, c.builder()), nil
}

// Elements returns the elements of all pages in document order.
// Each call returns a freshly built slice with fresh identifiers.
func (c *Converter) Elements(ctx context.Context) ([]*TextElement, error) {
	elements := []*TextElement{}
	for i := 0; i < c.Source.PageCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pageElements, err := c.ConvertPage(ctx, i)
		if err != nil {
			return nil, err
		}
		elements = append(elements, pageElements...)
	}
	return elements, nil
}

// Convert returns the full document: all elements, the default app state
// and an empty file table.
func (c *Converter) Convert(ctx context.Context) (*Document, error) {
	elements, err := c.Elements(ctx)
	if err != nil {
		return nil, err
	}
	return NewDocument(elements), nil
}

// Encode converts the source and serializes the result with enc.
// It returns the container bytes and the number of elements written.
func (c *Converter) Encode(ctx context.Context, enc Encoder) ([]byte, int, error) {
	doc, err := c.Convert(ctx)
	if err != nil {
		return nil, 0, err
	}
	data, err := enc.Encode(ctx, doc, SourceTag)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, len(doc.Elements), nil
}

// DebugRecords converts the source through the same path as Convert and
// projects the text elements for diagnostic dumps.
func (c *Converter) DebugRecords(ctx context.Context) ([]DebugRecord, error) {
	doc, err := c.Convert(ctx)
	if err != nil {
		return nil, err
	}
	return DebugRecords(doc.Elements), nil
}

func (c *Converter) builder() *ElementBuilder {
	if c.Builder == nil {
		c.Builder = NewElementBuilder()
	}
	return c.Builder
}
