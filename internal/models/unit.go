package models

import "fmt"

// Rule converts a value of one unit to and from its category base unit.
type Rule interface {
	ToBase(value float64) float64
	FromBase(base float64) float64
}

// Linear is a pure scale: base = value * Factor.
type Linear struct {
	Factor float64
}

func (r Linear) ToBase(value float64) float64  { return value * r.Factor }
func (r Linear) FromBase(base float64) float64 { return base / r.Factor }

// Affine applies an offset before scaling: base = (value + Offset) * Num / Den.
// Num and Den are kept apart so that reference points stay exact.
type Affine struct {
	Offset float64
	Num    float64
	Den    float64
}

func (r Affine) ToBase(value float64) float64  { return (value + r.Offset) * r.Num / r.Den }
func (r Affine) FromBase(base float64) float64 { return base*r.Den/r.Num - r.Offset }

// Reciprocal expresses units inversely proportional to the base: base = K / value.
type Reciprocal struct {
	K float64
}

func (r Reciprocal) ToBase(value float64) float64  { return r.K / value }
func (r Reciprocal) FromBase(base float64) float64 { return r.K / base }

// Rate is a currency rate quoted against the base currency (USD).
type Rate struct {
	Value float64
}

func (r Rate) ToBase(value float64) float64  { return value / r.Value }
func (r Rate) FromBase(base float64) float64 { return base * r.Value }

// Unit is one entry of a category's ordered unit table.
type Unit struct {
	Name   string
	Symbol string
	Rule   Rule
}

// Label renders the unit as "Name (symbol)".
func (u Unit) Label() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Symbol)
}

// UnitResponse is a unit as exposed over the API.
// swagger:model UnitResponse
type UnitResponse struct {
	Index  int    `json:"index" example:"0"`
	Name   string `json:"name" example:"Meters"`
	Symbol string `json:"symbol" example:"m"`
}

// CategoryResponse is a category with its current unit count.
// swagger:model CategoryResponse
type CategoryResponse struct {
	CategoryInfo
	UnitCount int `json:"unit_count" example:"10"`
}

// UnitsResponse lists the units of one category.
// swagger:model UnitsResponse
type UnitsResponse struct {
	Category Category       `json:"category" example:"length"`
	Units    []UnitResponse `json:"units"`
}
