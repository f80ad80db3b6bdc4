// Package preset computes property values from a variant's identity when no
// explicit value is supplied. String presets are deterministic case
// transforms of the variant's name; number presets derive a value from the
// variant's position in declared order. Presets never consult resolved
// values, only the declaration itself.
package preset

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
)

// String is a case-transform preset over the variant's name.
type String int

// String presets. Variant passes the name through unaltered.
const (
	Variant String = iota
	Snake
	UpperSnake
	Kebab
	UpperKebab
	Camel
	Title
	Upper
	Lower
	Flat
	UpperFlat
	Train
)

var stringNames = map[String]string{
	Variant:    "Variant",
	Snake:      "Snake",
	UpperSnake: "UpperSnake",
	Kebab:      "Kebab",
	UpperKebab: "UpperKebab",
	Camel:      "Camel",
	Title:      "Title",
	Upper:      "Upper",
	Lower:      "Lower",
	Flat:       "Flat",
	UpperFlat:  "UpperFlat",
	Train:      "Train",
}

// String returns the preset identifier.
func (p String) String() string {
	if s, ok := stringNames[p]; ok {
		return s
	}
	return fmt.Sprintf("String(%d)", int(p))
}

// ParseString parses a string-preset identifier.
func ParseString(id string) (String, error) {
	for p, s := range stringNames {
		if s == id {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown string preset %q", id)
}

// IsString reports whether id names a registered string preset.
func IsString(id string) bool {
	_, err := ParseString(id)
	return err == nil
}

// Convert applies the case transform to a variant name.
func (p String) Convert(name string) string {
	snake := inflect.Underscore(name)
	switch p {
	case Variant:
		return name
	case Snake:
		return snake
	case UpperSnake:
		return strings.ToUpper(snake)
	case Kebab:
		return inflect.Dasherize(snake)
	case UpperKebab:
		return strings.ToUpper(inflect.Dasherize(snake))
	case Camel:
		return inflect.CamelizeDownFirst(snake)
	case Title:
		return strings.Join(capitalized(snake), " ")
	case Upper:
		return strings.ToUpper(strings.ReplaceAll(snake, "_", " "))
	case Lower:
		return strings.ReplaceAll(snake, "_", " ")
	case Flat:
		return strings.ReplaceAll(snake, "_", "")
	case UpperFlat:
		return strings.ToUpper(strings.ReplaceAll(snake, "_", ""))
	case Train:
		return strings.Join(capitalized(snake), "-")
	}
	return name
}

func capitalized(snake string) []string {
	words := strings.Split(snake, "_")
	for i, w := range words {
		words[i] = inflect.Capitalize(w)
	}
	return words
}

// Number is a position-based preset for numeric properties.
type Number int

// Number presets. Ordinal is the variant's position in declared order;
// Serial is start + increment * position.
const (
	Ordinal Number = iota
	Serial
)

var numberNames = map[Number]string{
	Ordinal: "Ordinal",
	Serial:  "Serial",
}

// String returns the preset identifier.
func (p Number) String() string {
	if s, ok := numberNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Number(%d)", int(p))
}

// ParseNumber parses a number-preset identifier.
func ParseNumber(id string) (Number, error) {
	for p, s := range numberNames {
		if s == id {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown number preset %q", id)
}

// IsNumber reports whether id names a registered number preset.
func IsNumber(id string) bool {
	_, err := ParseNumber(id)
	return err == nil
}

// SerialInt computes a Serial preset value over the signed integer domain.
func SerialInt(position int, start, increment int64) int64 {
	return start + increment*int64(position)
}

// SerialUint computes a Serial preset value over the unsigned integer domain.
func SerialUint(position int, start, increment uint64) uint64 {
	return start + increment*uint64(position)
}

// SerialFloat computes a Serial preset value over the floating-point domain.
func SerialFloat(position int, start, increment float64) float64 {
	return start + increment*float64(position)
}

// OrdinalOf returns the Ordinal preset value for a declared position.
func OrdinalOf(position int) int64 {
	return int64(position)
}
