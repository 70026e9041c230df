package types

// Point is a single track point. Elevation is in meters.
type Point struct {
	Lat       float64
	Lng       float64
	Elevation float64
}

// Metadata holds the route fields present in the Biketerra payload.
// Distance and Elevation are in centimeters, as stored upstream. String
// fields use "" for absent; numeric fields carry an explicit presence flag
// so a literal zero is distinguishable from a missing key.
type Metadata struct {
	ID        int64
	Title     string
	Distance  float64
	Elevation float64
	City      string
	County    string
	State     string
	Country   string

	HasID        bool
	HasDistance  bool
	HasElevation bool
}

// Route is a decoded route: ordered track points plus metadata and the
// derived display name.
type Route struct {
	Name   string
	Points []Point
	Meta   Metadata
}
