package entity

// Coordinates is a GPS point. It is stored and echoed back, never computed on.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinates returns nil unless both parts are present.
func NewCoordinates(lat, lng *float64) *Coordinates {
	if lat == nil || lng == nil {
		return nil
	}

	return &Coordinates{Latitude: *lat, Longitude: *lng}
}
