package geom

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownType = errors.New("geom: unknown boundary type")

// Type selects the mapper. The set is closed.
type Type int

const (
	StrikeSlip Type = iota
	Normal
	Reverse
	TwoPlate
	ThreePlate
	FourPlate
)

var typeNames = [...]string{
	StrikeSlip: "strike-slip",
	Normal:     "normal",
	Reverse:    "reverse",
	TwoPlate:   "2-plate",
	ThreePlate: "3-plate",
	FourPlate:  "4-plate",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// IsScenario reports whether t is a multi-plate 3D scenario.
func (t Type) IsScenario() bool { return t >= TwoPlate && t <= FourPlate }

// Valid reports whether t is one of the declared constants.
func (t Type) Valid() bool { return t >= StrikeSlip && t <= FourPlate }

func Types() []Type {
	return []Type{StrikeSlip, Normal, Reverse, TwoPlate, ThreePlate, FourPlate}
}

// FaultTypes returns the 2D cross-section types.
func FaultTypes() []Type { return []Type{StrikeSlip, Normal, Reverse} }

// ParseType accepts the canonical names plus a few common spellings.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	switch key {
	case "strike-slip", "strikeslip", "transform":
		return StrikeSlip, nil
	case "normal", "divergent":
		return Normal, nil
	case "reverse", "thrust", "convergent":
		return Reverse, nil
	case "2-plate", "two-plate", "2":
		return TwoPlate, nil
	case "3-plate", "three-plate", "triple", "3":
		return ThreePlate, nil
	case "4-plate", "four-plate", "4":
		return FourPlate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
