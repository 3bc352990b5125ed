package nws

import (
	"strconv"
	"strings"
)

// Point is a GeoJSON position, [lon, lat].
type Point [2]float64

// Lon returns the longitude.
func (p Point) Lon() float64 { return p[0] }

// Lat returns the latitude.
func (p Point) Lat() float64 { return p[1] }

// Polygon is a GeoJSON polygon with a single closed outer ring.
type Polygon struct {
	Type        string    `json:"type"`
	Coordinates [][]Point `json:"coordinates"`
}

// NewPolygon closes ring if needed and returns nil unless the closed ring has
// at least four points.
func NewPolygon(ring []Point) *Polygon {
	if len(ring) == 0 {
		return nil
	}
	closed := make([]Point, len(ring), len(ring)+1)
	copy(closed, ring)
	if closed[0] != closed[len(closed)-1] {
		closed = append(closed, closed[0])
	}
	if len(closed) < 4 {
		return nil
	}
	return &Polygon{Type: "Polygon", Coordinates: [][]Point{closed}}
}

// Ring returns the outer ring.
func (p *Polygon) Ring() []Point {
	if p == nil || len(p.Coordinates) == 0 {
		return nil
	}
	return p.Coordinates[0]
}

// PolygonFromCAP parses a CAP polygon string ("lat,lon lat,lon ...") into a
// closed [lon, lat] ring. It returns nil on any malformed pair or when the
// ring is too short.
func PolygonFromCAP(s string) *Polygon {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	ring := make([]Point, 0, len(fields)+1)
	for _, f := range fields {
		latStr, lonStr, ok := strings.Cut(f, ",")
		if !ok {
			return nil
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil {
			return nil
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if err != nil {
			return nil
		}
		ring = append(ring, Point{lon, lat})
	}
	return NewPolygon(ring)
}

// Centroid returns the vertex mean of the ring (closing vertex excluded) as
// (lat, lon).
func (p *Polygon) Centroid() (lat, lon float64, ok bool) {
	ring := p.Ring()
	if len(ring) < 2 {
		return 0, 0, false
	}
	verts := ring[:len(ring)-1]
	for _, pt := range verts {
		lat += pt.Lat()
		lon += pt.Lon()
	}
	n := float64(len(verts))
	return lat / n, lon / n, true
}

// Span returns the latitude and longitude extent of the ring.
func (p *Polygon) Span() (latSpan, lonSpan float64) {
	ring := p.Ring()
	if len(ring) == 0 {
		return 0, 0
	}
	minLat, maxLat := ring[0].Lat(), ring[0].Lat()
	minLon, maxLon := ring[0].Lon(), ring[0].Lon()
	for _, pt := range ring[1:] {
		minLat = min(minLat, pt.Lat())
		maxLat = max(maxLat, pt.Lat())
		minLon = min(minLon, pt.Lon())
		maxLon = max(maxLon, pt.Lon())
	}
	return maxLat - minLat, maxLon - minLon
}
