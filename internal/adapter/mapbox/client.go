package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/observability"
)

const (
	defaultBaseURL = "https://api.mapbox.com/styles/v1"
	defaultColor   = "#808080"
	imageWidth     = 600
	imageHeight    = 400
	maxImageBytes  = 8 << 20
)

// Client implements domain.MapRenderer using the Mapbox Static Images API.
// The alert polygon is drawn as a GeoJSON overlay in the display colour.
type Client struct {
	token      string
	style      string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Mapbox static map client for the given style, e.g.
// "mapbox/streets-v12".
func NewClient(token, style string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		token: token,
		style: style,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// RenderMap fetches a PNG of req.Geometry centred on req.Center.
func (c *Client) RenderMap(ctx context.Context, req domain.MapRequest) (domain.MapImage, error) {
	if req.Geometry == nil {
		return domain.MapImage{}, fmt.Errorf("render map: no geometry")
	}
	overlay, err := geoJSONOverlay(req)
	if err != nil {
		return domain.MapImage{}, err
	}

	u := fmt.Sprintf("%s/%s/static/geojson(%s)/%s/%dx%d@2x?%s",
		c.baseURL,
		c.style,
		url.PathEscape(overlay),
		position(req),
		imageWidth, imageHeight,
		url.Values{"access_token": {c.token}}.Encode(),
	)

	start := time.Now()
	img, err := c.doRequest(ctx, u)
	c.metrics.MapRenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.MapRenderRequests.WithLabelValues("error").Inc()
		return domain.MapImage{}, err
	}
	c.metrics.MapRenderRequests.WithLabelValues("success").Inc()
	c.logger.Debug("static map rendered", "bytes", len(img.Data), "zoom", req.Zoom)
	return img, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.MapImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.MapImage{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MapImage{}, fmt.Errorf("static map request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.MapImage{}, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return domain.MapImage{}, fmt.Errorf("read image: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return domain.MapImage{ContentType: contentType, Data: data}, nil
}

// feature is a GeoJSON feature with simplestyle properties.
type feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   featureGeometry `json:"geometry"`
}

type featureGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

func geoJSONOverlay(req domain.MapRequest) (string, error) {
	color := req.Color
	if color == "" {
		color = defaultColor
	}
	ring := req.Geometry.Ring()
	coords := make([][2]float64, len(ring))
	for i, pt := range ring {
		coords[i] = [2]float64{round4(pt.Lon()), round4(pt.Lat())}
	}

	f := feature{
		Type: "Feature",
		Properties: map[string]any{
			"stroke":         color,
			"stroke-width":   3,
			"stroke-opacity": 1,
			"fill":           color,
			"fill-opacity":   0.3,
		},
		Geometry: featureGeometry{Type: "Polygon", Coordinates: [][][2]float64{coords}},
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode overlay: %w", err)
	}
	return string(b), nil
}

// position is "lon,lat,zoom", or "auto" to let Mapbox fit the overlay.
func position(req domain.MapRequest) string {
	if req.Center == ([2]float64{}) {
		return "auto"
	}
	return strings.Join([]string{
		fmt.Sprintf("%.4f", req.Center[1]),
		fmt.Sprintf("%.4f", req.Center[0]),
		fmt.Sprintf("%d", req.Zoom),
	}, ",")
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
