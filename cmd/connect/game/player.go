package game

import "fmt"

type markerSet struct {
	Empty  Marker
	Red    Marker
	Yellow Marker
}

// Markers represents the set of markers a cell can hold.
var Markers = markerSet{
	Empty:  Marker{},
	Red:    newMarker("Red", 'X'),
	Yellow: newMarker("Yellow", 'O'),
}

// =============================================================================

// Set of known player markers.
var markers = make(map[string]Marker)

// Marker represents the occupant of a cell. The zero value is the empty
// marker.
type Marker struct {
	name   string
	symbol rune
}

func newMarker(name string, symbol rune) Marker {
	m := Marker{name, symbol}
	markers[name] = m
	return m
}

// IsZero checks if the marker is set to its zero value, the empty cell.
func (m Marker) IsZero() bool {
	return m.name == ""
}

// String returns the name of the marker.
func (m Marker) String() string {
	if m.IsZero() {
		return "Empty"
	}

	return m.name
}

// Symbol returns the single character used to print the marker.
func (m Marker) Symbol() rune {
	if m.IsZero() {
		return '.'
	}

	return m.symbol
}

// Opponent returns the marker of the other player. The empty marker has
// no opponent and is returned unchanged.
func (m Marker) Opponent() Marker {
	switch m {
	case Markers.Red:
		return Markers.Yellow
	case Markers.Yellow:
		return Markers.Red
	}

	return m
}

// Equal provides support for the go-cmp package and testing.
func (m Marker) Equal(m2 Marker) bool {
	return m.name == m2.name
}

// =============================================================================

// ParseMarker parses the string value and returns a player marker if one
// exists.
func ParseMarker(value string) (Marker, error) {
	marker, exists := markers[value]
	if !exists {
		return Marker{}, fmt.Errorf("invalid marker %q", value)
	}

	return marker, nil
}

// MustParseMarker parses the string value and returns a player marker if
// one exists. If an error occurs the function panics.
func MustParseMarker(value string) Marker {
	marker, err := ParseMarker(value)
	if err != nil {
		panic(err)
	}

	return marker
}
