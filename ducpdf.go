// Package ducpdf converts the text layer of PDF documents into DUC drawing
// documents. Text lines are extracted page by page, merged into single runs,
// converted from points to millimeters on a top-left origin canvas, and
// emitted as DUC text elements.
//
// This package contains domain types, interfaces and the pure conversion
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// of external collaborators live in subdirectories named after their primary
// dependency (e.g., pdf/, sqlite/, slog/).
package ducpdf
