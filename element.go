package ducpdf

import "github.com/google/uuid"

// ElementTypeText is the kind tag of text elements.
const ElementTypeText = "text"

// FontFamily identifies a DUC font family.
type FontFamily int

// FontFamily constants.
const (
	FontFamilyVirgil     FontFamily = 1
	FontFamilyHelvetica  FontFamily = 2
	FontFamilyCascadia   FontFamily = 3
	FontFamilyRobotoMono FontFamily = 10
)

// TextAlign is the horizontal alignment of text inside its box.
type TextAlign string

// TextAlign constants.
const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// VerticalAlign is the vertical alignment of text inside its box.
type VerticalAlign string

// VerticalAlign constants.
const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignMiddle VerticalAlign = "middle"
	VerticalAlignBottom VerticalAlign = "bottom"
)

// ScopeMillimeters is the unit scope of every element produced by ducpdf.
const ScopeMillimeters = "mm"

// Fill is a background layer of an element.
type Fill struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Stroke is an outline layer of an element.
type Stroke struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// TextElement is a positioned DUC text element.
// Geometry and font size are in millimeters with a top-left origin.
type TextElement struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scope  string  `json:"scope"`
	Label  string  `json:"label"`

	Text          string        `json:"text"`
	OriginalText  *string       `json:"originalText"`
	FontSize      float64       `json:"fontSize"`
	FontFamily    FontFamily    `json:"fontFamily"`
	TextAlign     TextAlign     `json:"textAlign"`
	VerticalAlign VerticalAlign `json:"verticalAlign"`
	LineHeight    float64       `json:"lineHeight"`
	AutoResize    bool          `json:"autoResize"`
	ContainerID   *string       `json:"containerId"`

	Background []Fill   `json:"background"`
	Stroke     []Stroke `json:"stroke"`
	Opacity    float64  `json:"opacity"`
	Roundness  float64  `json:"roundness"`
	Blending   *string  `json:"blending"`
	Subset     *string  `json:"subset"`

	Angle  float64 `json:"angle"`
	ZIndex float64 `json:"zIndex"`

	Seed          int64    `json:"seed"`
	Version       int64    `json:"version"`
	VersionNonce  int64    `json:"versionNonce"`
	Updated       int64    `json:"updated"`
	Index         *string  `json:"index"`
	GroupIDs      []string `json:"groupIds"`
	FrameID       *string  `json:"frameId"`
	BoundElements []string `json:"boundElements"`
	Link          *string  `json:"link"`
	CustomData    any      `json:"customData"`

	IsDeleted bool `json:"isDeleted"`
	IsVisible bool `json:"isVisible"`
	Locked    bool `json:"locked"`
}

// DefaultTextElement is the template every converted text element starts
// from. Only ID, geometry, text and font size are overridden per element.
var DefaultTextElement = TextElement{
	Type:          ElementTypeText,
	Scope:         ScopeMillimeters,
	Label:         "Text Element",
	FontFamily:    FontFamilyRobotoMono,
	TextAlign:     TextAlignLeft,
	VerticalAlign: VerticalAlignTop,
	LineHeight:    1.0,
	AutoResize:    true,
	Background:    []Fill{},
	Stroke:        []Stroke{},
	Opacity:       100,
	GroupIDs:      []string{},
	IsVisible:     true,
}

// ElementBuilder builds text elements from the default template.
type ElementBuilder struct {
	// NewID returns a fresh element identifier. Defaults to a random UUID.
	NewID func() string
}

// NewElementBuilder returns an ElementBuilder generating random UUIDs.
func NewElementBuilder() *ElementBuilder {
	return &ElementBuilder{NewID: uuid.NewString}
}

// Build returns a new text element placed at g carrying text.
func (b *ElementBuilder) Build(g Geometry, text string) *TextElement {
	newID := b.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	el := DefaultTextElement
	el.Background = []Fill{}
	el.Stroke = []Stroke{}
	el.GroupIDs = []string{}

	el.ID = newID()
	el.X = g.X
	el.Y = g.Y
	el.Width = g.Width
	el.Height = g.Height
	el.Text = text
	el.FontSize = g.FontSize
	return &el
}
