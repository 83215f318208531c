package homeassistant

type sensorConfiguration struct {
	UniqueId          string `json:"unique_id"`
	Name              string `json:"name"`
	DeviceClass       string `json:"device_class,omitempty"`
	StateTopic        string `json:"state_topic"`
	UnitOfMeasurement string `json:"unit_of_measurement,omitempty"`
	AvailabilityTopic string `json:"availability_topic"`
}

type binarySensorConfiguration struct {
	UniqueId          string `json:"unique_id"`
	Name              string `json:"name"`
	DeviceClass       string `json:"device_class,omitempty"`
	StateTopic        string `json:"state_topic"`
	AvailabilityTopic string `json:"availability_topic"`
}

type climateConfiguration struct {
	UniqueId                string   `json:"unique_id"`
	Name                    string   `json:"name"`
	AvailabilityTopic       string   `json:"availability_topic"`
	CurrentTemperatureTopic string   `json:"current_temperature_topic"`
	TemperatureCommandTopic string   `json:"temperature_command_topic"`
	TemperatureStateTopic   string   `json:"temperature_state_topic"`
	MinTemp                 int      `json:"min_temp"`
	MaxTemp                 int      `json:"max_temp"`
	TempStep                int      `json:"temp_step"`
	FanModes                []string `json:"fan_modes"`
	FanModeCommandTopic     string   `json:"fan_mode_command_topic"`
	FanModeStateTopic       string   `json:"fan_mode_state_topic"`
	PresetModes             []string `json:"preset_modes"`
	PresetModeCommandTopic  string   `json:"preset_mode_command_topic"`
	PresetModeStateTopic    string   `json:"preset_mode_state_topic"`
}
