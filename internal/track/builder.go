// Package track turns a decoded route into a GPX 1.1 document.
package track

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"btroute/internal/types"
)

const creator = "Biketerra GPX Exporter"

// ErrEmptyRoute means the route decoded cleanly but has no points. A
// zero-point export would be a valid but useless file, so the caller treats
// this as terminal.
var ErrEmptyRoute = errors.New("no track points found in route data")

// Build produces a GPX document with a single track and a single contiguous
// segment, points in input order. The timestamp is the build time in UTC;
// the source has no creation time of its own.
func Build(route *types.Route) (*gpx.GPX, error) {
	if len(route.Points) == 0 {
		return nil, ErrEmptyRoute
	}

	now := time.Now().UTC()
	doc := &gpx.GPX{
		Version:     "1.1",
		Creator:     creator,
		Name:        route.Name,
		Description: description(route.Meta),
		Time:        &now,
	}

	seg := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, len(route.Points))}
	for _, p := range route.Points {
		seg.Points = append(seg.Points, gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  p.Lat,
				Longitude: p.Lng,
				Elevation: *gpx.NewNullableFloat64(p.Elevation),
			},
		})
	}
	doc.Tracks = []gpx.GPXTrack{{
		Name:     route.Name,
		Segments: []gpx.GPXTrackSegment{seg},
	}}
	return doc, nil
}

// description assembles the human-readable summary: location (only when a
// city is known), then distance, then elevation gain. Upstream stores both
// distance and elevation in centimeters.
func description(meta types.Metadata) string {
	var parts []string
	if meta.City != "" {
		loc := meta.City
		for _, s := range []string{meta.State, meta.Country} {
			if s != "" {
				loc += ", " + s
			}
		}
		parts = append(parts, "Location: "+loc)
	}
	if meta.HasDistance {
		parts = append(parts, fmt.Sprintf("Distance: %.2f km", meta.Distance/100000))
	}
	if meta.HasElevation {
		parts = append(parts, fmt.Sprintf("Elevation gain: %d m", int(math.Round(meta.Elevation/100))))
	}
	return strings.Join(parts, "; ")
}
