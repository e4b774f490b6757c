package models

// Category identifies a physical quantity whose units convert among each other.
type Category string

const (
	Length           Category = "length"
	Mass             Category = "mass"
	Temperature      Category = "temperature"
	Volume           Category = "volume"
	Area             Category = "area"
	Speed            Category = "speed"
	Time             Category = "time"
	DigitalStorage   Category = "digitalStorage"
	Energy           Category = "energy"
	Pressure         Category = "pressure"
	Angle            Category = "angle"
	Frequency        Category = "frequency"
	FuelEconomy      Category = "fuelEconomy"
	Power            Category = "power"
	Force            Category = "force"
	DataTransferRate Category = "dataTransferRate"
	Torque           Category = "torque"
	Density          Category = "density"
	Illuminance      Category = "illuminance"
	Currency         Category = "currency"
)

// Kind tells where a category's unit table comes from.
type Kind string

const (
	// KindStandard categories use a fixed dimension table.
	KindStandard Kind = "standard"
	// KindCustom categories use an explicit (name, symbol, factor) table.
	KindCustom Kind = "custom"
	// KindCurrency categories take their units from the live rate snapshot.
	KindCurrency Kind = "currency"
)

// CategoryInfo describes a category.
// swagger:model CategoryInfo
type CategoryInfo struct {
	ID          Category `json:"id" example:"length"`
	DisplayName string   `json:"display_name" example:"Length"`
	Icon        string   `json:"icon" example:"ruler"`
	Kind        Kind     `json:"kind" example:"standard"`
}

// IsCurrency reports whether the category converts with live rates.
func (c CategoryInfo) IsCurrency() bool { return c.Kind == KindCurrency }

// IsCustom reports whether the category uses an explicit factor table.
func (c CategoryInfo) IsCustom() bool { return c.Kind == KindCustom }
