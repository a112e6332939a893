package dataset

import (
	"errors"
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ErrBadGeometry marks a geometry string that is present but unusable. Map
// consumers skip the record and keep rendering; nothing else cares.
var ErrBadGeometry = errors.New("bad geometry")

// ParseWKT parses a well-known-text geometry and restricts it to the polygon
// types the source promises. Coordinates are lon/lat WGS84 as written.
func ParseWKT(s string) (geom.T, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadGeometry)
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeometry, err)
	}
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return g, nil
	default:
		return nil, fmt.Errorf("%w: want POLYGON or MULTIPOLYGON", ErrBadGeometry)
	}
}

// BoundsCenter returns the lon/lat midpoint of a geometry's bounding box.
// Good enough for centering a map view on a parcel.
func BoundsCenter(g geom.T) (lon, lat float64) {
	b := g.Bounds()
	return (b.Min(0) + b.Max(0)) / 2, (b.Min(1) + b.Max(1)) / 2
}

// FitZoom picks a web-map zoom level framing the geometry, stepping in as
// the bounding box shrinks.
func FitZoom(g geom.T) int {
	b := g.Bounds()
	span := b.Max(0) - b.Min(0)
	if s := b.Max(1) - b.Min(1); s > span {
		span = s
	}
	switch {
	case span > 0.1:
		return 12
	case span > 0.01:
		return 15
	default:
		return 18
	}
}
