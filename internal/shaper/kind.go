package shaper

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates a shape name outside the enumeration.
var ErrUnknownKind = errors.New("unknown motion profile")

// Kind enumerates the supported normalized motion shapes.
type Kind int

const (
	// StraightLine is constant velocity: f(w) = w.
	StraightLine Kind = iota

	// QuadraticParabola is a symmetric piecewise parabola
	// (constant acceleration then constant deceleration).
	QuadraticParabola

	// QuinticPolynomial is the 5th-degree smoothstep with zero velocity
	// and acceleration at both ends.
	QuinticPolynomial

	// SimpleSinusoid is a half cosine: 0.5 - 0.5·cos(πw).
	SimpleSinusoid

	// ModifiedSinusoid raises the simple sinusoid to a blend-dependent power
	// and renormalizes it over the sample grid.
	ModifiedSinusoid

	numKinds
)

var kindNames = [numKinds]string{
	StraightLine:      "Straight line",
	QuadraticParabola: "Quadratic parabola",
	QuinticPolynomial: "Polynomial of 5th degree",
	SimpleSinusoid:    "Simple sinus",
	ModifiedSinusoid:  "Modified sinus",
}

// String returns the wire name of the shape.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the enumerated shapes.
func (k Kind) Valid() bool {
	return k >= StraightLine && k < numKinds
}

// Kinds returns all shapes in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := StraightLine; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Lookup maps a wire name to its Kind. Matching is exact.
func Lookup(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Parse is like Lookup but returns an error wrapping ErrUnknownKind.
func Parse(name string) (Kind, error) {
	k, ok := Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
