package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// This file defines unit-safe lengths used by page geometry settings.
// Layout itself always works in points.

// Unit represents the original unit of a length value.
type Unit int

const (
	UnitNone Unit = iota // bare numbers, read as points
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt and mm.
const (
	PtToMm = 25.4 / 72
	MmToPt = 72 / 25.4
)

// String returns a short suffix for a Unit value.
func (u Unit) String() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// ParseUnit maps a suffix to a Unit. The empty suffix yields UnitNone.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return UnitNone, nil
	case "pt":
		return UnitPT, nil
	case "mm":
		return UnitMM, nil
	case "cm":
		return UnitCM, nil
	case "in":
		return UnitIN, nil
	default:
		return UnitNone, fmt.Errorf("未知长度单位：%s", s)
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// ToPT converts the length to points. Unit-less values are already points.
func (l Length) ToPT() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value * MmToPt
	case UnitCM:
		return l.Value * 10 * MmToPt
	case UnitIN:
		return l.Value * 72
	default:
		return l.Value
	}
}

// ToMM converts the length to millimeters.
func (l Length) ToMM() float64 { return l.ToPT() * PtToMm }

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// ParseLength parses strings such as "12", "12pt", "20mm" or "8.5in".
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("长度为空")
	}
	num := strings.TrimRightFunc(v, unicode.IsLetter)
	unit, err := ParseUnit(v[len(num):])
	if err != nil {
		return Length{}, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("无法解析长度 %q: %w", value, err)
	}
	return Length{Value: f, Unit: unit}, nil
}
