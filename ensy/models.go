package ensy

// FanMode is the fan speed as the unit numbers it.
type FanMode int

const (
	FanLow FanMode = iota + 1
	FanMedium
	FanHigh
)

func (m FanMode) String() string {
	switch m {
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanHigh:
		return "high"
	}

	return "unknown"
}

// PresetMode reconciles the unit's separate away and party flags into a
// single mutually exclusive mode. Empty means no flag has been reported yet.
type PresetMode string

const (
	PresetHome  PresetMode = "home"
	PresetAway  PresetMode = "away"
	PresetBoost PresetMode = "boost"
)

// State is the last known state of the ventilation aggregate. Fields are nil
// (or zero, for FanMode and PresetMode) until the unit first reports them.
// Temperatures are whole degrees, as reported.
type State struct {
	IsOnline  bool  `json:"is_online"`
	IsHeating *bool `json:"is_heating"`

	FanMode    FanMode    `json:"fan_mode,omitempty"`
	PresetMode PresetMode `json:"preset_mode,omitempty"`

	TemperatureExhaust *int `json:"temperature_exhaust"`
	TemperatureExtract *int `json:"temperature_extract"`
	TemperatureHeater  *int `json:"temperature_heater"`
	TemperatureOutside *int `json:"temperature_outside"`
	TemperatureSupply  *int `json:"temperature_supply"`
	TemperatureTarget  *int `json:"temperature_target"`
}
