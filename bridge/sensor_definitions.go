package bridge

import "github.com/victorjacobs/go-ensy/ensy"

var sensorDefinitions = [...]*sensorConfiguration{
	{
		name:  "Ensy Extract Temperature",
		class: "temperature",
		unit:  "°C",
		get:   func(state ensy.State) *int { return state.TemperatureExtract },
	},
	{
		name:  "Ensy Exhaust Temperature",
		class: "temperature",
		unit:  "°C",
		get:   func(state ensy.State) *int { return state.TemperatureExhaust },
	},
	{
		name:  "Ensy Supply Temperature",
		class: "temperature",
		unit:  "°C",
		get:   func(state ensy.State) *int { return state.TemperatureSupply },
	},
	{
		name:  "Ensy Outside Temperature",
		class: "temperature",
		unit:  "°C",
		get:   func(state ensy.State) *int { return state.TemperatureOutside },
	},
	{
		name:  "Ensy Heater Temperature",
		class: "temperature",
		unit:  "°C",
		get:   func(state ensy.State) *int { return state.TemperatureHeater },
	},
}
