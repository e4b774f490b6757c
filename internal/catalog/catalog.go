// Package catalog holds the static unit tables of every category and the
// free-text alias resolver built on top of them.
package catalog

import "github.com/sbilibin2017/equiv/internal/models"

var categories = []models.CategoryInfo{
	{ID: models.Length, DisplayName: "Length", Icon: "ruler", Kind: models.KindStandard},
	{ID: models.Mass, DisplayName: "Weight / Mass", Icon: "scalemass", Kind: models.KindStandard},
	{ID: models.Temperature, DisplayName: "Temperature", Icon: "thermometer.medium", Kind: models.KindStandard},
	{ID: models.Volume, DisplayName: "Volume", Icon: "cup.and.saucer", Kind: models.KindStandard},
	{ID: models.Area, DisplayName: "Area", Icon: "square.dashed", Kind: models.KindStandard},
	{ID: models.Speed, DisplayName: "Speed", Icon: "gauge.with.needle", Kind: models.KindStandard},
	{ID: models.Time, DisplayName: "Time", Icon: "clock", Kind: models.KindStandard},
	{ID: models.DigitalStorage, DisplayName: "Digital Storage", Icon: "internaldrive", Kind: models.KindStandard},
	{ID: models.Energy, DisplayName: "Energy", Icon: "bolt", Kind: models.KindStandard},
	{ID: models.Pressure, DisplayName: "Pressure", Icon: "barometer", Kind: models.KindStandard},
	{ID: models.Angle, DisplayName: "Angle", Icon: "angle", Kind: models.KindStandard},
	{ID: models.Frequency, DisplayName: "Frequency", Icon: "waveform", Kind: models.KindStandard},
	{ID: models.FuelEconomy, DisplayName: "Fuel Economy", Icon: "fuelpump", Kind: models.KindStandard},
	{ID: models.Power, DisplayName: "Power", Icon: "powerplug", Kind: models.KindStandard},
	{ID: models.Force, DisplayName: "Force", Icon: "arrow.up.and.down", Kind: models.KindCustom},
	{ID: models.DataTransferRate, DisplayName: "Data Transfer Rate", Icon: "network", Kind: models.KindCustom},
	{ID: models.Torque, DisplayName: "Torque", Icon: "wrench.and.screwdriver", Kind: models.KindCustom},
	{ID: models.Density, DisplayName: "Density", Icon: "cube", Kind: models.KindCustom},
	{ID: models.Illuminance, DisplayName: "Illuminance", Icon: "lightbulb", Kind: models.KindCustom},
	{ID: models.Currency, DisplayName: "Currency", Icon: "dollarsign.circle", Kind: models.KindCurrency},
}

var byID = func() map[models.Category]models.CategoryInfo {
	m := make(map[models.Category]models.CategoryInfo, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}()

// Categories returns every category in display order.
func Categories() []models.CategoryInfo {
	out := make([]models.CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Lookup returns the descriptor of a category.
func Lookup(id models.Category) (models.CategoryInfo, bool) {
	c, ok := byID[id]
	return c, ok
}

// UnitsFor returns the ordered unit table of a standard or custom category.
// Currency and unknown categories yield nil; currency units come from the
// rate provider.
func UnitsFor(id models.Category) []models.Unit {
	var table []models.Unit
	if t, ok := standardUnits[id]; ok {
		table = t
	} else if t, ok := customUnits[id]; ok {
		table = t
	}
	if table == nil {
		return nil
	}
	out := make([]models.Unit, len(table))
	copy(out, table)
	return out
}

// UnitCount returns the number of units of a static category.
func UnitCount(id models.Category) int {
	if t, ok := standardUnits[id]; ok {
		return len(t)
	}
	return len(customUnits[id])
}

// UnitAt returns the unit at index i. Out-of-range indices report false.
func UnitAt(id models.Category, i int) (models.Unit, bool) {
	table, ok := standardUnits[id]
	if !ok {
		table = customUnits[id]
	}
	if i < 0 || i >= len(table) {
		return models.Unit{}, false
	}
	return table[i], true
}
