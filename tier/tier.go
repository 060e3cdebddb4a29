// Package tier defines the ordered capability tiers a request can be routed
// into.
//
// Tiers form a total order from Micro (cheapest, least capable) to Complex
// (most expensive, most capable). The ordering is what makes clamping and
// escalation well-defined: preferences clamp a classified tier into a range,
// and escalation moves strictly upward one step at a time.
package tier

import (
	"fmt"
	"strings"
)

// Tier represents a capability tier, ordered by cost and capability.
type Tier int

// Tier constants in ascending order of capability.
const (
	Micro Tier = iota
	Standard
	Versatile
	Heavy
	Complex
)

// Min and Max bound the tier enumeration.
const (
	Min = Micro
	Max = Complex
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case Micro:
		return "micro"
	case Standard:
		return "standard"
	case Versatile:
		return "versatile"
	case Heavy:
		return "heavy"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Valid returns true if the tier is a known value.
func (t Tier) Valid() bool {
	return t >= Micro && t <= Complex
}

// Parse converts a tier name to a Tier. Matching is case-insensitive.
func Parse(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "micro":
		return Micro, nil
	case "standard":
		return Standard, nil
	case "versatile":
		return Versatile, nil
	case "heavy":
		return Heavy, nil
	case "complex":
		return Complex, nil
	default:
		return Standard, fmt.Errorf("unknown tier %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler so tiers serialize as
// their names in JSON, YAML, and TOML.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Next returns the next tier up and true, or the same tier and false
// when already at the maximum.
func (t Tier) Next() (Tier, bool) {
	if t >= Max {
		return t, false
	}
	return t + 1, true
}

// Clamp restricts the tier to the inclusive range [lo, hi].
// The caller is responsible for ensuring lo <= hi; if the bounds are
// inverted the tier is returned unchanged.
func (t Tier) Clamp(lo, hi Tier) Tier {
	if lo > hi {
		return t
	}
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

// All returns every tier in ascending order.
func All() []Tier {
	return []Tier{Micro, Standard, Versatile, Heavy, Complex}
}
