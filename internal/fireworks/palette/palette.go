// Package palette defines the closed set of named colors used by effect
// generators and choreography tables. Color names are internal tokens,
// never user input; referencing an unknown name is a programming error
// surfaced by Lookup.
package palette

import "fmt"

// Hex values for every color token. Kept as one literal so the whole
// palette is reviewable at a glance.
var colors = map[string]string{
	"gold":        "#ffd700",
	"amber":       "#ffbf00",
	"crimson":     "#ff4d6d",
	"scarlet":     "#ff2e2e",
	"coral":       "#ff7f50",
	"peach":       "#ffd1a3",
	"ivory":       "#fffff0",
	"silver":      "#d9e2ec",
	"moonlight":   "#aebfd4",
	"sky":         "#7ec8ff",
	"azure":       "#3fa7ff",
	"indigo":      "#5c6bc0",
	"violet":      "#b388ff",
	"orchid":      "#da70d6",
	"sakura":      "#ffb7c5",
	"mint":        "#98ffb3",
	"jade":        "#4dd599",
	"aqua":        "#66e0ff",
	"foam":        "#ccf5ff",
	"deep-night":  "#0b1026",
	"night":       "#1a2340",
	"water-dark":  "#0a1a2e",
	"ember":       "#ff9e3d",
	"white":       "#ffffff",
	"spark-white": "#f4f9ff",
}

// Lookup resolves a color token to its hex value.
func Lookup(name string) (string, error) {
	hex, ok := colors[name]
	if !ok {
		return "", fmt.Errorf("unknown palette color %q", name)
	}
	return hex, nil
}

// MustLookup resolves a token known at compile time. It panics on a
// misspelled name, which only happens from a hard-coded table.
func MustLookup(name string) string {
	hex, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return hex
}

// Has reports whether a color token exists.
func Has(name string) bool {
	_, ok := colors[name]
	return ok
}
