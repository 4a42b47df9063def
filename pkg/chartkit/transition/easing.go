package transition

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEasing is returned by ParseEasing for unrecognized names.
var ErrUnknownEasing = errors.New("unknown easing")

// Easing maps linear progress in [0,1] to eased progress. Every easing
// returns exactly 0 at 0 and exactly 1 at 1.
type Easing func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// EaseIn starts slowly and accelerates.
func EaseIn(t float64) float64 {
	return t * t
}

// EaseOut starts quickly and decelerates.
func EaseOut(t float64) float64 {
	return t * (2 - t)
}

// EaseInOut accelerates through the first half and decelerates through the
// second (smoothstep).
func EaseInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

var easings = map[string]Easing{
	"linear":      Linear,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// ParseEasing returns the easing registered under name. Matching is
// case-insensitive and accepts underscores or camel case ("easeInOut").
func ParseEasing(name string) (Easing, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	switch key {
	case "easein":
		key = "ease-in"
	case "easeout":
		key = "ease-out"
	case "easeinout":
		key = "ease-in-out"
	}

	if e, ok := easings[key]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownEasing, name, strings.Join(EasingNames(), ", "))
}

// EasingNames lists the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
