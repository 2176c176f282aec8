package otquery

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// BoundingBox is the union of all glyph bounding boxes of a font, as stated
// by fields xMin, yMin, xMax and yMax of table 'head'. Units are font design
// units (see HeadTableInfo.UnitsPerEm).
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// IsEmpty reports whether the box has zero area, as for fonts without outlines.
func (bbox BoundingBox) IsEmpty() bool {
	return bbox.Width() == 0 || bbox.Height() == 0
}

// Width is the horizontal extent of the box.
func (bbox BoundingBox) Width() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Height is the vertical extent of the box.
func (bbox BoundingBox) Height() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

func (bbox BoundingBox) String() string {
	return fmt.Sprintf("[%d %d %d %d]", bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY)
}

// BBox returns the font's bounding box.
func (info HeadTableInfo) BBox() BoundingBox {
	return BoundingBox{
		MinX: sfnt.Units(info.XMin),
		MinY: sfnt.Units(info.YMin),
		MaxX: sfnt.Units(info.XMax),
		MaxY: sfnt.Units(info.YMax),
	}
}
