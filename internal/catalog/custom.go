package catalog

import "github.com/sbilibin2017/equiv/internal/models"

var customUnits = map[models.Category][]models.Unit{
	// base: newtons
	models.Force: {
		linear("Newtons", "N", 1.0),
		linear("Kilonewtons", "kN", 1000.0),
		linear("Pound-force", "lbf", 4.44822),
		linear("Dynes", "dyn", 0.00001),
		linear("Kilogram-force", "kgf", 9.80665),
	},
	// base: bits per second
	models.DataTransferRate: {
		linear("Bits per second", "bps", 1.0),
		linear("Kilobits per second", "Kbps", 1000.0),
		linear("Megabits per second", "Mbps", 1_000_000.0),
		linear("Gigabits per second", "Gbps", 1_000_000_000.0),
		linear("Bytes per second", "B/s", 8.0),
		linear("Kilobytes per second", "KB/s", 8000.0),
		linear("Megabytes per second", "MB/s", 8_000_000.0),
	},
	// base: newton-metres
	models.Torque: {
		linear("Newton-metres", "N·m", 1.0),
		linear("Foot-pounds", "ft·lbf", 1.35582),
		linear("Inch-pounds", "in·lbf", 0.112985),
		linear("Kilogram-force metres", "kgf·m", 9.80665),
	},
	// base: kilograms per cubic metre
	models.Density: {
		linear("Kilograms per cubic metre", "kg/m³", 1.0),
		linear("Grams per cubic centimetre", "g/cm³", 1000.0),
		linear("Pounds per cubic foot", "lb/ft³", 16.0185),
		linear("Pounds per cubic inch", "lb/in³", 27679.9),
		linear("Grams per litre", "g/L", 1.0),
	},
	// base: lux
	models.Illuminance: {
		linear("Lux", "lx", 1.0),
		linear("Foot-candles", "fc", 10.7639),
		linear("Phot", "ph", 10000.0),
		linear("Nox", "nx", 0.001),
	},
}
