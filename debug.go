package ducpdf

// DebugRecord is the simplified projection of a text element written to
// JSON debug dumps. Field order is the order of keys in the output.
type DebugRecord struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
}

// DebugRecords projects the text elements of elements, preserving order.
func DebugRecords(elements []*TextElement) []DebugRecord {
	records := make([]DebugRecord, 0, len(elements))
	for _, el := range elements {
		if el == nil || el.Type != ElementTypeText {
			continue
		}
		records = append(records, DebugRecord{
			ID:       el.ID,
			Type:     el.Type,
			X:        el.X,
			Y:        el.Y,
			Width:    el.Width,
			Height:   el.Height,
			Text:     el.Text,
			FontSize: el.FontSize,
		})
	}
	return records
}
