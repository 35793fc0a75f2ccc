package engine

import (
	"fmt"
	"strings"
)

// Direction is the compass heading of the car
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// UnknownDirectionLabel is shown for headings outside the compass table
const UnknownDirectionLabel = "Unknown"

var directionLabels = map[Direction]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// Rotation tables. Anything not listed rotates to North.
var (
	rightOf = map[Direction]Direction{
		North: East,
		East:  South,
		South: West,
		West:  North,
	}
	leftOf = map[Direction]Direction{
		North: West,
		West:  South,
		South: East,
		East:  North,
	}
)

// TurnLeft returns the heading after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	if next, ok := leftOf[d]; ok {
		return next
	}
	return North
}

// TurnRight returns the heading after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	if next, ok := rightOf[d]; ok {
		return next
	}
	return North
}

// Label returns the display name of the heading
func (d Direction) Label() string {
	if label, ok := directionLabels[d]; ok {
		return label
	}
	return UnknownDirectionLabel
}

func (d Direction) String() string {
	return d.Label()
}

// IsValid reports whether d is one of the four compass headings
func (d Direction) IsValid() bool {
	_, ok := directionLabels[d]
	return ok
}

// MarshalText encodes the heading as its lowercase name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(d.Label())), nil
}

// UnmarshalText decodes a heading name (case-insensitive)
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection maps a heading name to a Direction
func ParseDirection(name string) (Direction, error) {
	for dir, label := range directionLabels {
		if strings.EqualFold(label, strings.TrimSpace(name)) {
			return dir, nil
		}
	}
	return North, fmt.Errorf("unknown direction %q", name)
}
