package domain

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/storm-bulletin-etl/internal/nws"
)

// MapImage is a rendered map artifact. Data is base64-encoded on the wire.
type MapImage struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// MapRequest describes the static map to render for an alert.
type MapRequest struct {
	Geometry *nws.Polygon
	Color    string
	Center   [2]float64 // [lat, lon]
	Zoom     int
}

// MapRenderer renders alert geometry into an image.
type MapRenderer interface {
	RenderMap(ctx context.Context, req MapRequest) (MapImage, error)
}

// AttachMap renders rec's geometry and attaches the image. If renderer is nil,
// the alert has no geometry, or rendering fails, rec is left without a map.
func AttachMap(ctx context.Context, rec *AlertRecord, renderer MapRenderer, logger *slog.Logger) {
	if renderer == nil || rec == nil || rec.Geometry == nil {
		return
	}

	req := MapRequest{Geometry: rec.Geometry, Zoom: defaultZoom}
	if rec.Display != nil {
		req.Color = rec.Display.Color
		req.Zoom = rec.Display.Zoom
		if rec.Display.Center != nil {
			req.Center = *rec.Display.Center
		}
	}

	img, err := renderer.RenderMap(ctx, req)
	if err != nil {
		logger.Warn("map render failed",
			"id", rec.ID,
			"event", rec.Event,
			"error", err,
		)
		return
	}
	rec.Map = &img
}
