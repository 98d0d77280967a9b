package ducpdf

import (
	"context"
	"strings"
)

// Extension is the canonical file extension of DUC containers.
const Extension = ".duc"

// SourceTag identifies ducpdf as the producer of a container.
const SourceTag = "ducpdf PDF to DUC converter"

// AppState is the application and view state stored alongside elements.
type AppState struct {
	GridSize            int    `json:"gridSize"`
	ViewBackgroundColor string `json:"viewBackgroundColor"`
	Scope               string `json:"scope"`
}

// DefaultAppState returns the view state written with every conversion.
func DefaultAppState() AppState {
	return AppState{
		GridSize:            10,
		ViewBackgroundColor: "#ffffff",
		Scope:               ScopeMillimeters,
	}
}

// BinaryFile is an embedded asset referenced by elements.
type BinaryFile struct {
	ID       string `json:"id"`
	MimeType string `json:"mimeType"`
	Data     []byte `json:"data"`
	Created  int64  `json:"created"`
}

// Document is the result of a conversion run.
type Document struct {
	Elements []*TextElement        `json:"elements"`
	AppState AppState              `json:"appState"`
	Files    map[string]BinaryFile `json:"files"`
}

// NewDocument returns a document holding elements, the default app state
// and an empty file table.
func NewDocument(elements []*TextElement) *Document {
	return &Document{
		Elements: elements,
		AppState: DefaultAppState(),
		Files:    map[string]BinaryFile{},
	}
}

// Encoder serializes a document into a binary container.
type Encoder interface {
	// Encode returns the container bytes for doc, tagged with source.
	Encode(ctx context.Context, doc *Document, source string) ([]byte, error)
}

// Decoder parses a binary container produced by an Encoder.
type Decoder interface {
	// Decode parses data back into a document.
	// Returns EINVALID if data is not a valid container.
	Decode(ctx context.Context, data []byte) (*Document, error)
}

// OutputPath appends Extension to path unless it already ends with it.
func OutputPath(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}
