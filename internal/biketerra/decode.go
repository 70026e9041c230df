package biketerra

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"btroute/internal/types"
)

// The payload is a SvelteKit-style flattened array: every composite value is
// stored once in nodes[2].data and referenced elsewhere by integer index.
// Dereferencing is one level at a time; the same cell may be referenced from
// multiple places, so the store is never materialized into a nested tree.
type store []gjson.Result

// resolve dereferences a single pointer index. An out-of-range index means
// the upstream schema assumption no longer holds and must not be masked.
func (s store) resolve(idx int) (gjson.Result, error) {
	if idx < 0 || idx >= len(s) {
		return gjson.Result{}, structErrorf("index %d out of range (store has %d cells)", idx, len(s))
	}
	return s[idx], nil
}

// resolveField applies the metadata pointer heuristic: a value that is an
// integer strictly greater than zero is a pointer into the store, anything
// else is a literal. Index 0 is never a valid pointer target. Only metadata
// fields go through this; structural pointers are always trusted as indices.
func (s store) resolveField(raw gjson.Result) (gjson.Result, error) {
	if raw.Type == gjson.Number && raw.Num > 0 && raw.Num == math.Trunc(raw.Num) {
		return s.resolve(int(raw.Num))
	}
	return raw, nil
}

// DecodeRoute extracts the route from a raw __data.json payload: the route
// record sits at nodes[2].data[0] and points at the metadata record and the
// ordered point-index list. Absent metadata keys are tolerated; any shape or
// index violation aborts the decode with a StructureError.
func DecodeRoute(raw []byte) (*types.Route, error) {
	if !gjson.ValidBytes(raw) {
		return nil, structErrorf("payload is not valid JSON")
	}
	data := gjson.GetBytes(raw, "nodes.2.data")
	if !data.Exists() || !data.IsArray() {
		return nil, structErrorf("nodes[2].data missing or not an array")
	}
	s := store(data.Array())
	if len(s) == 0 {
		return nil, structErrorf("nodes[2].data is empty")
	}

	rec := s[0]
	if !rec.IsObject() {
		return nil, structErrorf("route record at index 0 is not an object")
	}
	latLngIdx, err := structuralIndex(rec, "latLngData")
	if err != nil {
		return nil, err
	}
	metaIdx, err := structuralIndex(rec, "route")
	if err != nil {
		return nil, err
	}

	meta, err := decodeMetadata(s, metaIdx)
	if err != nil {
		return nil, err
	}
	points, err := decodePoints(s, latLngIdx)
	if err != nil {
		return nil, err
	}

	return &types.Route{
		Name:   deriveName(meta),
		Points: points,
		Meta:   meta,
	}, nil
}

// structuralIndex reads a route record field that is always an index, never
// a literal. These come from the rigid part of the schema and skip the
// positive-integer heuristic.
func structuralIndex(rec gjson.Result, key string) (int, error) {
	v := rec.Get(key)
	if v.Type != gjson.Number {
		return 0, structErrorf("route record field %q missing or not an index", key)
	}
	return int(v.Num), nil
}

func decodeMetadata(s store, metaIdx int) (types.Metadata, error) {
	var meta types.Metadata

	rec, err := s.resolve(metaIdx)
	if err != nil {
		return meta, err
	}
	if !rec.IsObject() {
		return meta, structErrorf("metadata record at index %d is not an object", metaIdx)
	}

	for _, key := range []string{"id", "title", "distance", "elevation", "geo_city", "geo_county", "geo_state", "geo_country"} {
		raw := rec.Get(key)
		if !raw.Exists() {
			continue
		}
		val, err := s.resolveField(raw)
		if err != nil {
			return meta, err
		}
		switch key {
		case "id":
			meta.ID = val.Int()
			meta.HasID = true
		case "title":
			meta.Title = val.String()
		case "distance":
			meta.Distance = val.Float()
			meta.HasDistance = true
		case "elevation":
			meta.Elevation = val.Float()
			meta.HasElevation = true
		case "geo_city":
			meta.City = val.String()
		case "geo_county":
			meta.County = val.String()
		case "geo_state":
			meta.State = val.String()
		case "geo_country":
			meta.Country = val.String()
		}
	}
	return meta, nil
}

// decodePoints walks the point-index list: each entry points at a 3-element
// reference list (lat, lng, ele), each element of which points at a numeric
// literal. Any malformed point aborts the whole decode; a partially
// corrupted track is worse than an explicit failure.
func decodePoints(s store, latLngIdx int) ([]types.Point, error) {
	list, err := s.resolve(latLngIdx)
	if err != nil {
		return nil, err
	}
	if !list.IsArray() {
		return nil, structErrorf("point list at index %d is not an array", latLngIdx)
	}

	entries := list.Array()
	points := make([]types.Point, 0, len(entries))
	for i, entry := range entries {
		if entry.Type != gjson.Number {
			return nil, structErrorf("point %d: entry is not an index", i)
		}
		rec, err := s.resolve(int(entry.Num))
		if err != nil {
			return nil, err
		}
		refs := rec.Array()
		if !rec.IsArray() || len(refs) != 3 {
			return nil, structErrorf("point %d: expected 3 references, got %d", i, len(refs))
		}
		var coords [3]float64
		for j, ref := range refs {
			if ref.Type != gjson.Number {
				return nil, structErrorf("point %d: reference %d is not an index", i, j)
			}
			cell, err := s.resolve(int(ref.Num))
			if err != nil {
				return nil, err
			}
			if cell.Type != gjson.Number {
				return nil, structErrorf("point %d: cell %d is not numeric", i, int(ref.Num))
			}
			coords[j] = cell.Num
		}
		points = append(points, types.Point{Lat: coords[0], Lng: coords[1], Elevation: coords[2]})
	}
	return points, nil
}

func deriveName(meta types.Metadata) string {
	if meta.Title != "" {
		return meta.Title
	}
	if meta.HasID {
		return fmt.Sprintf("Route %d", meta.ID)
	}
	return "Route Unknown"
}
