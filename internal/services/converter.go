package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/formatter"
	"github.com/sbilibin2017/equiv/internal/models"
)

//go:generate mockgen -source=converter.go -destination=converter_mock.go -package=services

// CurrencyUnitsReader exposes the currency units of the active rate snapshot.
type CurrencyUnitsReader interface {
	Currencies() []models.Unit
}

var (
	ErrUnresolvedUnit   = errors.New("unresolved unit")
	ErrCategoryMismatch = errors.New("category mismatch")
	ErrNoResult         = errors.New("unable to perform the conversion")
)

// Hints offered when a free-text unit cannot be resolved.
const (
	SourceUnitHint      = "Try using a common unit name like 'miles', 'kg', or 'celsius'."
	DestinationUnitHint = "Try using a common unit name like 'kilometers', 'pounds', or 'fahrenheit'."
)

// UnresolvedUnitError reports free text that matches no alias.
type UnresolvedUnitError struct {
	Text string
	Hint string
}

func (e *UnresolvedUnitError) Error() string {
	return fmt.Sprintf("I couldn't recognize the unit '%s'", e.Text)
}

func (e *UnresolvedUnitError) Unwrap() error { return ErrUnresolvedUnit }

// ConverterService converts values between units of one category.
// It holds no state besides the currency source and is safe for concurrent use.
type ConverterService struct {
	currencies CurrencyUnitsReader
}

// NewConverterService creates a new service instance. currencies may be nil,
// in which case the currency category has no units.
func NewConverterService(currencies CurrencyUnitsReader) *ConverterService {
	return &ConverterService{currencies: currencies}
}

// Units returns the ordered units of a category.
func (svc *ConverterService) Units(category models.Category) []models.Unit {
	info, ok := catalog.Lookup(category)
	if !ok {
		return nil
	}
	if info.IsCurrency() {
		if svc.currencies == nil {
			return nil
		}
		return svc.currencies.Currencies()
	}
	return catalog.UnitsFor(category)
}

// UnitCount returns the number of units currently available in a category.
func (svc *ConverterService) UnitCount(category models.Category) int {
	return len(svc.Units(category))
}

// Convert converts value from the unit at src to the unit at dst.
// It reports false when either index is out of range or the result is not finite.
func (svc *ConverterService) Convert(category models.Category, src, dst int, value float64) (float64, bool) {
	units := svc.Units(category)
	if !inRange(src, units) || !inRange(dst, units) {
		return 0, false
	}
	return convert(units, src, dst, value)
}

// ConvertToAll converts value from src into every unit of the category.
// With excludeSource the source unit itself is skipped.
func (svc *ConverterService) ConvertToAll(category models.Category, src int, value float64, excludeSource bool) []models.ConvertedValue {
	units := svc.Units(category)
	if !inRange(src, units) {
		return nil
	}
	out := make([]models.ConvertedValue, 0, len(units))
	for i, u := range units {
		if excludeSource && i == src {
			continue
		}
		v, ok := convert(units, src, i, value)
		out = append(out, models.ConvertedValue{Index: i, Unit: u, Value: v, OK: ok})
	}
	return out
}

// ConvertText converts the textual input of a request and renders the result.
func (svc *ConverterService) ConvertText(req models.ConversionRequest) models.ConversionResult {
	units := svc.Units(req.Category)
	res := models.ConversionResult{
		SourceSymbol:      symbolAt(units, req.SourceIndex),
		DestinationSymbol: symbolAt(units, req.DestinationIndex),
	}
	value, ok := formatter.ParseValue(req.Value)
	if !ok || !inRange(req.SourceIndex, units) || !inRange(req.DestinationIndex, units) {
		return res
	}
	v, ok := convert(units, req.SourceIndex, req.DestinationIndex, value)
	if !ok {
		return res
	}
	res.Result = formatter.Format(v, req.Scientific)
	res.ShareText = fmt.Sprintf("%s %s = %s %s", req.Value, res.SourceSymbol, res.Result, res.DestinationSymbol)
	return res
}

// ConvertAllText renders a multi-unit conversion of textual input.
// Invalid input yields no entries.
func (svc *ConverterService) ConvertAllText(req models.ConvertAllRequest) []models.ConvertAllEntry {
	value, ok := formatter.ParseValue(req.Value)
	if !ok {
		return nil
	}
	values := svc.ConvertToAll(req.Category, req.SourceIndex, value, true)
	out := make([]models.ConvertAllEntry, 0, len(values))
	for _, cv := range values {
		e := models.ConvertAllEntry{Index: cv.Index, Name: cv.Unit.Name, Symbol: cv.Unit.Symbol}
		if cv.OK {
			e.Value = formatter.Format(cv.Value, req.Scientific)
		}
		out = append(out, e)
	}
	return out
}

// ConvertPhrase converts value between two free-text unit names, e.g.
// (5, "miles", "km") -> "5 mi = 8.04672 km".
func (svc *ConverterService) ConvertPhrase(value float64, from, to string) (string, error) {
	src, ok := catalog.Resolve(from)
	if !ok {
		return "", &UnresolvedUnitError{Text: from, Hint: SourceUnitHint}
	}
	dst, ok := catalog.Resolve(to)
	if !ok {
		return "", &UnresolvedUnitError{Text: to, Hint: DestinationUnitHint}
	}
	if src.Category != dst.Category {
		srcInfo, _ := catalog.Lookup(src.Category)
		dstInfo, _ := catalog.Lookup(dst.Category)
		return "", fmt.Errorf("%w: cannot convert between %s and %s, both units must be in the same category",
			ErrCategoryMismatch, srcInfo.DisplayName, dstInfo.DisplayName)
	}
	v, ok := svc.Convert(src.Category, src.UnitIndex, dst.UnitIndex, value)
	if !ok {
		return "", ErrNoResult
	}
	return fmt.Sprintf("%s %s = %s %s",
		strconv.FormatFloat(value, 'f', -1, 64), src.Symbol, formatter.Format(v, false), dst.Symbol), nil
}

// convert expects both indices to be in range.
func convert(units []models.Unit, src, dst int, value float64) (float64, bool) {
	if from, ok := units[src].Rule.(models.Rate); ok {
		to, ok := units[dst].Rule.(models.Rate)
		if !ok || from.Value <= 0 {
			return 0, false
		}
		return finite(value * (to.Value / from.Value))
	}
	if src == dst {
		return value, true
	}
	return finite(units[dst].Rule.FromBase(units[src].Rule.ToBase(value)))
}

func finite(v float64) (float64, bool) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func inRange(i int, units []models.Unit) bool {
	return i >= 0 && i < len(units)
}

func symbolAt(units []models.Unit, i int) string {
	if !inRange(i, units) {
		return ""
	}
	return units[i].Symbol
}
