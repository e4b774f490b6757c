package catalog

import "github.com/sbilibin2017/equiv/internal/models"

type alias struct {
	pattern  string
	category models.Category
	index    int
}

// "kn" belongs to knots; kilonewtons are reachable through their full name only.
var aliasTable = []alias{
	// Length
	{"meters", models.Length, 0}, {"metres", models.Length, 0}, {"m", models.Length, 0}, {"meter", models.Length, 0}, {"metre", models.Length, 0},
	{"kilometers", models.Length, 1}, {"kilometres", models.Length, 1}, {"km", models.Length, 1},
	{"centimeters", models.Length, 2}, {"centimetres", models.Length, 2}, {"cm", models.Length, 2},
	{"millimeters", models.Length, 3}, {"millimetres", models.Length, 3}, {"mm", models.Length, 3},
	{"miles", models.Length, 4}, {"mi", models.Length, 4}, {"mile", models.Length, 4},
	{"yards", models.Length, 5}, {"yd", models.Length, 5}, {"yard", models.Length, 5},
	{"feet", models.Length, 6}, {"foot", models.Length, 6}, {"ft", models.Length, 6},
	{"inches", models.Length, 7}, {"inch", models.Length, 7}, {"in", models.Length, 7},
	{"nautical miles", models.Length, 8}, {"nmi", models.Length, 8},
	{"micrometers", models.Length, 9}, {"micrometres", models.Length, 9}, {"µm", models.Length, 9}, {"um", models.Length, 9},

	// Mass
	{"kilograms", models.Mass, 0}, {"kg", models.Mass, 0}, {"kilo", models.Mass, 0}, {"kilos", models.Mass, 0},
	{"grams", models.Mass, 1}, {"g", models.Mass, 1}, {"gram", models.Mass, 1},
	{"milligrams", models.Mass, 2}, {"mg", models.Mass, 2},
	{"pounds", models.Mass, 3}, {"lbs", models.Mass, 3}, {"lb", models.Mass, 3}, {"pound", models.Mass, 3},
	{"ounces", models.Mass, 4}, {"oz", models.Mass, 4}, {"ounce", models.Mass, 4},
	{"stones", models.Mass, 5}, {"stone", models.Mass, 5}, {"st", models.Mass, 5},
	{"metric tons", models.Mass, 6}, {"tonnes", models.Mass, 6}, {"metric ton", models.Mass, 6}, {"tonne", models.Mass, 6},
	{"short tons", models.Mass, 7}, {"tons", models.Mass, 7}, {"ton", models.Mass, 7},

	// Temperature
	{"celsius", models.Temperature, 0}, {"c", models.Temperature, 0}, {"centigrade", models.Temperature, 0}, {"°c", models.Temperature, 0},
	{"fahrenheit", models.Temperature, 1}, {"f", models.Temperature, 1}, {"°f", models.Temperature, 1},
	{"kelvin", models.Temperature, 2}, {"k", models.Temperature, 2},

	// Volume
	{"liters", models.Volume, 0}, {"litres", models.Volume, 0}, {"l", models.Volume, 0}, {"liter", models.Volume, 0}, {"litre", models.Volume, 0},
	{"milliliters", models.Volume, 1}, {"millilitres", models.Volume, 1}, {"ml", models.Volume, 1},
	{"gallons", models.Volume, 2}, {"gal", models.Volume, 2}, {"gallon", models.Volume, 2},
	{"quarts", models.Volume, 3}, {"qt", models.Volume, 3}, {"quart", models.Volume, 3},
	{"pints", models.Volume, 4}, {"pt", models.Volume, 4}, {"pint", models.Volume, 4},
	{"cups", models.Volume, 5}, {"cup", models.Volume, 5},
	{"fluid ounces", models.Volume, 6}, {"fl oz", models.Volume, 6},
	{"tablespoons", models.Volume, 7}, {"tbsp", models.Volume, 7}, {"tablespoon", models.Volume, 7},
	{"teaspoons", models.Volume, 8}, {"tsp", models.Volume, 8}, {"teaspoon", models.Volume, 8},
	{"cubic meters", models.Volume, 9}, {"cubic metres", models.Volume, 9}, {"m3", models.Volume, 9},

	// Area
	{"square meters", models.Area, 0}, {"sq m", models.Area, 0}, {"m2", models.Area, 0},
	{"square kilometers", models.Area, 1}, {"sq km", models.Area, 1}, {"km2", models.Area, 1},
	{"square feet", models.Area, 2}, {"sq ft", models.Area, 2}, {"ft2", models.Area, 2},
	{"square yards", models.Area, 3}, {"sq yd", models.Area, 3}, {"yd2", models.Area, 3},
	{"square miles", models.Area, 4}, {"sq mi", models.Area, 4}, {"mi2", models.Area, 4},
	{"acres", models.Area, 5}, {"acre", models.Area, 5},
	{"hectares", models.Area, 6}, {"ha", models.Area, 6}, {"hectare", models.Area, 6},
	{"square inches", models.Area, 7}, {"sq in", models.Area, 7}, {"in2", models.Area, 7},
	{"square centimeters", models.Area, 8}, {"sq cm", models.Area, 8}, {"cm2", models.Area, 8},

	// Speed
	{"meters per second", models.Speed, 0}, {"m/s", models.Speed, 0},
	{"kilometers per hour", models.Speed, 1}, {"km/h", models.Speed, 1}, {"kph", models.Speed, 1},
	{"miles per hour", models.Speed, 2}, {"mph", models.Speed, 2},
	{"knots", models.Speed, 3}, {"kn", models.Speed, 3}, {"knot", models.Speed, 3},

	// Time
	{"seconds", models.Time, 0}, {"sec", models.Time, 0}, {"s", models.Time, 0}, {"second", models.Time, 0},
	{"minutes", models.Time, 1}, {"min", models.Time, 1}, {"minute", models.Time, 1},
	{"hours", models.Time, 2}, {"hr", models.Time, 2}, {"h", models.Time, 2}, {"hour", models.Time, 2},

	// Digital storage
	{"bytes", models.DigitalStorage, 0}, {"byte", models.DigitalStorage, 0},
	{"kilobytes", models.DigitalStorage, 1}, {"kb", models.DigitalStorage, 1},
	{"megabytes", models.DigitalStorage, 2}, {"mb", models.DigitalStorage, 2},
	{"gigabytes", models.DigitalStorage, 3}, {"gb", models.DigitalStorage, 3},
	{"terabytes", models.DigitalStorage, 4}, {"tb", models.DigitalStorage, 4},
	{"petabytes", models.DigitalStorage, 5}, {"pb", models.DigitalStorage, 5},
	{"kibibytes", models.DigitalStorage, 6}, {"kib", models.DigitalStorage, 6},
	{"mebibytes", models.DigitalStorage, 7}, {"mib", models.DigitalStorage, 7},
	{"gibibytes", models.DigitalStorage, 8}, {"gib", models.DigitalStorage, 8},
	{"tebibytes", models.DigitalStorage, 9}, {"tib", models.DigitalStorage, 9},

	// Energy
	{"joules", models.Energy, 0}, {"j", models.Energy, 0}, {"joule", models.Energy, 0},
	{"kilojoules", models.Energy, 1}, {"kj", models.Energy, 1},
	{"calories", models.Energy, 2}, {"cal", models.Energy, 2}, {"calorie", models.Energy, 2},
	{"kilocalories", models.Energy, 3}, {"kcal", models.Energy, 3},
	{"kilowatt hours", models.Energy, 4}, {"kwh", models.Energy, 4},

	// Pressure
	{"pascals", models.Pressure, 0}, {"pa", models.Pressure, 0}, {"pascal", models.Pressure, 0},
	{"kilopascals", models.Pressure, 1}, {"kpa", models.Pressure, 1},
	{"hectopascals", models.Pressure, 2}, {"hpa", models.Pressure, 2},
	{"bars", models.Pressure, 3}, {"bar", models.Pressure, 3},
	{"millibars", models.Pressure, 4}, {"mbar", models.Pressure, 4},
	{"psi", models.Pressure, 5}, {"pounds per square inch", models.Pressure, 5},
	{"mmhg", models.Pressure, 6}, {"millimeters of mercury", models.Pressure, 6},
	{"inhg", models.Pressure, 7}, {"inches of mercury", models.Pressure, 7},

	// Angle
	{"degrees", models.Angle, 0}, {"deg", models.Angle, 0}, {"degree", models.Angle, 0},
	{"radians", models.Angle, 1}, {"rad", models.Angle, 1}, {"radian", models.Angle, 1},
	{"revolutions", models.Angle, 2}, {"rev", models.Angle, 2}, {"revolution", models.Angle, 2},
	{"arcminutes", models.Angle, 3}, {"arc minutes", models.Angle, 3},
	{"arcseconds", models.Angle, 4}, {"arc seconds", models.Angle, 4},
	{"gradians", models.Angle, 5}, {"gradian", models.Angle, 5}, {"gon", models.Angle, 5},

	// Frequency
	{"hertz", models.Frequency, 0}, {"hz", models.Frequency, 0},
	{"kilohertz", models.Frequency, 1}, {"khz", models.Frequency, 1},
	{"megahertz", models.Frequency, 2}, {"mhz", models.Frequency, 2},
	{"gigahertz", models.Frequency, 3}, {"ghz", models.Frequency, 3},
	{"terahertz", models.Frequency, 4}, {"thz", models.Frequency, 4},

	// Fuel economy
	{"liters per 100 kilometers", models.FuelEconomy, 0}, {"l/100km", models.FuelEconomy, 0},
	{"miles per gallon", models.FuelEconomy, 1}, {"mpg", models.FuelEconomy, 1},
	{"miles per imperial gallon", models.FuelEconomy, 2}, {"mpg imp", models.FuelEconomy, 2},

	// Power
	{"watts", models.Power, 0}, {"w", models.Power, 0}, {"watt", models.Power, 0},
	{"kilowatts", models.Power, 1}, {"kw", models.Power, 1},
	{"megawatts", models.Power, 2}, {"mw", models.Power, 2},
	{"horsepower", models.Power, 3}, {"hp", models.Power, 3},
	{"milliwatts", models.Power, 4},

	// Force
	{"newtons", models.Force, 0}, {"newton", models.Force, 0}, {"n", models.Force, 0},
	{"kilonewtons", models.Force, 1}, {"kilonewton", models.Force, 1},
	{"pound-force", models.Force, 2}, {"lbf", models.Force, 2},
	{"dynes", models.Force, 3}, {"dyn", models.Force, 3}, {"dyne", models.Force, 3},
	{"kilogram-force", models.Force, 4}, {"kgf", models.Force, 4},

	// Data transfer rate
	{"bits per second", models.DataTransferRate, 0}, {"bps", models.DataTransferRate, 0},
	{"kilobits per second", models.DataTransferRate, 1}, {"kbps", models.DataTransferRate, 1},
	{"megabits per second", models.DataTransferRate, 2}, {"mbps", models.DataTransferRate, 2},
	{"gigabits per second", models.DataTransferRate, 3}, {"gbps", models.DataTransferRate, 3},
	{"bytes per second", models.DataTransferRate, 4}, {"b/s", models.DataTransferRate, 4},
	{"kilobytes per second", models.DataTransferRate, 5}, {"kb/s", models.DataTransferRate, 5},
	{"megabytes per second", models.DataTransferRate, 6}, {"mb/s", models.DataTransferRate, 6},

	// Torque
	{"newton-metres", models.Torque, 0}, {"newton-meters", models.Torque, 0}, {"nm", models.Torque, 0}, {"n·m", models.Torque, 0},
	{"foot-pounds", models.Torque, 1}, {"ft·lbf", models.Torque, 1}, {"ft-lbf", models.Torque, 1},
	{"inch-pounds", models.Torque, 2}, {"in·lbf", models.Torque, 2}, {"in-lbf", models.Torque, 2},
	{"kilogram-force metres", models.Torque, 3}, {"kgf·m", models.Torque, 3}, {"kgf-m", models.Torque, 3},

	// Density
	{"kilograms per cubic metre", models.Density, 0}, {"kg/m3", models.Density, 0}, {"kg/m³", models.Density, 0},
	{"grams per cubic centimetre", models.Density, 1}, {"g/cm3", models.Density, 1}, {"g/cm³", models.Density, 1},
	{"pounds per cubic foot", models.Density, 2}, {"lb/ft3", models.Density, 2}, {"lb/ft³", models.Density, 2},
	{"pounds per cubic inch", models.Density, 3}, {"lb/in3", models.Density, 3}, {"lb/in³", models.Density, 3},
	{"grams per litre", models.Density, 4}, {"grams per liter", models.Density, 4}, {"g/l", models.Density, 4},

	// Illuminance
	{"lux", models.Illuminance, 0}, {"lx", models.Illuminance, 0},
	{"foot-candles", models.Illuminance, 1}, {"fc", models.Illuminance, 1}, {"foot-candle", models.Illuminance, 1},
	{"phot", models.Illuminance, 2}, {"ph", models.Illuminance, 2},
	{"nox", models.Illuminance, 3}, {"nx", models.Illuminance, 3},
}
