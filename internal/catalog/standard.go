package catalog

import (
	"math"

	"github.com/sbilibin2017/equiv/internal/models"
)

func linear(name, symbol string, factor float64) models.Unit {
	return models.Unit{Name: name, Symbol: symbol, Rule: models.Linear{Factor: factor}}
}

// Index order is part of the public contract: callers address units by position.
var standardUnits = map[models.Category][]models.Unit{
	// base: meters
	models.Length: {
		linear("Meters", "m", 1),
		linear("Kilometers", "km", 1000),
		linear("Centimeters", "cm", 0.01),
		linear("Millimeters", "mm", 0.001),
		linear("Miles", "mi", 1609.344),
		linear("Yards", "yd", 0.9144),
		linear("Feet", "ft", 0.3048),
		linear("Inches", "in", 0.0254),
		linear("Nautical Miles", "NM", 1852),
		linear("Micrometers", "µm", 1e-6),
	},
	// base: kilograms
	models.Mass: {
		linear("Kilograms", "kg", 1),
		linear("Grams", "g", 0.001),
		linear("Milligrams", "mg", 1e-6),
		linear("Pounds", "lb", 0.45359237),
		linear("Ounces", "oz", 0.028349523125),
		linear("Stones", "st", 6.35029318),
		linear("Metric Tons", "t", 1000),
		linear("Short Tons", "ton", 907.18474),
	},
	// base: celsius
	models.Temperature: {
		{Name: "Celsius", Symbol: "°C", Rule: models.Affine{Offset: 0, Num: 1, Den: 1}},
		{Name: "Fahrenheit", Symbol: "°F", Rule: models.Affine{Offset: -32, Num: 5, Den: 9}},
		{Name: "Kelvin", Symbol: "K", Rule: models.Affine{Offset: -273.15, Num: 1, Den: 1}},
	},
	// base: liters
	models.Volume: {
		linear("Liters", "L", 1),
		linear("Milliliters", "mL", 0.001),
		linear("Gallons", "gal", 3.785411784),
		linear("Quarts", "qt", 0.946352946),
		linear("Pints", "pt", 0.473176473),
		linear("Cups", "cup", 0.24),
		linear("Fluid Ounces", "fl oz", 0.0295735295625),
		linear("Tablespoons", "tbsp", 0.01478676478125),
		linear("Teaspoons", "tsp", 0.00492892159375),
		linear("Cubic Meters", "m³", 1000),
	},
	// base: square meters
	models.Area: {
		linear("Square Meters", "m²", 1),
		linear("Square Kilometers", "km²", 1e6),
		linear("Square Feet", "ft²", 0.09290304),
		linear("Square Yards", "yd²", 0.83612736),
		linear("Square Miles", "mi²", 2589988.110336),
		linear("Acres", "ac", 4046.8564224),
		linear("Hectares", "ha", 10000),
		linear("Square Inches", "in²", 0.00064516),
		linear("Square Centimeters", "cm²", 0.0001),
	},
	// base: meters per second
	models.Speed: {
		linear("Meters Per Second", "m/s", 1),
		linear("Kilometers Per Hour", "km/h", 1000.0/3600.0),
		linear("Miles Per Hour", "mph", 0.44704),
		linear("Knots", "kn", 1852.0/3600.0),
	},
	// base: seconds
	models.Time: {
		linear("Seconds", "s", 1),
		linear("Minutes", "min", 60),
		linear("Hours", "hr", 3600),
	},
	// base: bytes
	models.DigitalStorage: {
		linear("Bytes", "B", 1),
		linear("Kilobytes", "kB", 1e3),
		linear("Megabytes", "MB", 1e6),
		linear("Gigabytes", "GB", 1e9),
		linear("Terabytes", "TB", 1e12),
		linear("Petabytes", "PB", 1e15),
		linear("Kibibytes", "KiB", 1<<10),
		linear("Mebibytes", "MiB", 1<<20),
		linear("Gibibytes", "GiB", 1<<30),
		linear("Tebibytes", "TiB", 1<<40),
	},
	// base: joules
	models.Energy: {
		linear("Joules", "J", 1),
		linear("Kilojoules", "kJ", 1000),
		linear("Calories", "cal", 4.184),
		linear("Kilocalories", "kcal", 4184),
		linear("Kilowatt Hours", "kWh", 3.6e6),
	},
	// base: pascals
	models.Pressure: {
		linear("Pascals", "Pa", 1),
		linear("Kilopascals", "kPa", 1000),
		linear("Hectopascals", "hPa", 100),
		linear("Bars", "bar", 1e5),
		linear("Millibars", "mbar", 100),
		linear("Pounds Per Square Inch", "psi", 6894.757293168),
		linear("Millimeters Of Mercury", "mmHg", 133.322387415),
		linear("Inches Of Mercury", "inHg", 3386.389),
	},
	// base: degrees
	models.Angle: {
		linear("Degrees", "°", 1),
		linear("Radians", "rad", 180/math.Pi),
		linear("Revolutions", "rev", 360),
		linear("Arcminutes", "ʹ", 1.0/60.0),
		linear("Arcseconds", "ʺ", 1.0/3600.0),
		linear("Gradians", "grad", 0.9),
	},
	// base: hertz
	models.Frequency: {
		linear("Hertz", "Hz", 1),
		linear("Kilohertz", "kHz", 1e3),
		linear("Megahertz", "MHz", 1e6),
		linear("Gigahertz", "GHz", 1e9),
		linear("Terahertz", "THz", 1e12),
	},
	// base: liters per 100 kilometers; mpg is inversely proportional to it
	models.FuelEconomy: {
		linear("Liters Per 100 Kilometers", "L/100km", 1),
		{Name: "Miles Per Gallon", Symbol: "mpg", Rule: models.Reciprocal{K: 235.214583}},
		{Name: "Miles Per Imperial Gallon", Symbol: "mpg (imp)", Rule: models.Reciprocal{K: 282.480936}},
	},
	// base: watts
	models.Power: {
		linear("Watts", "W", 1),
		linear("Kilowatts", "kW", 1e3),
		linear("Megawatts", "MW", 1e6),
		linear("Horsepower", "hp", 745.69987158227022),
		linear("Milliwatts", "mW", 1e-3),
	},
}
