package ducpdf

// UnitScale converts PDF points to millimeters.
const UnitScale = 25.4 / 72

// Geometry is the placement of an element on the canvas, in millimeters
// with the origin at the top-left corner.
type Geometry struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontSize float64
}

// Transform converts a merged line on a page of pageHeight points into
// canvas geometry. The vertical axis is flipped using the top edge of the
// line. Degenerate boxes pass through unchanged.
func Transform(line MergedLine, pageHeight float64) Geometry {
	return Geometry{
		X:        line.BBox.X0 * UnitScale,
		Y:        (pageHeight - line.BBox.Y1) * UnitScale,
		Width:    (line.BBox.X1 - line.BBox.X0) * UnitScale,
		Height:   (line.BBox.Y1 - line.BBox.Y0) * UnitScale,
		FontSize: line.FontSize * UnitScale,
	}
}
