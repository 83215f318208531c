package ensy

import (
	"log"
	"strconv"
)

// applyReport decodes one state topic report into a state mutation. Runs on
// the run loop. Listeners are notified once per applied mutation; unknown
// keys and unusable payloads change nothing and notify nobody.
func (c *Client) applyReport(key string, value string) {
	// Data on this MAC's topics means the unit exists upstream, whether or
	// not we understand the key.
	c.discovered.Set()

	applied := true

	switch key {
	case "temperature":
		applied = c.setTemperature(&c.state.TemperatureTarget, key, value)
	case "status":
		c.state.IsOnline = value == "online"
		if c.state.IsOnline {
			c.online.Set()
		} else {
			c.online.Clear()
		}
	case "fan":
		switch value {
		case "1":
			c.state.FanMode = FanLow
		case "2":
			c.state.FanMode = FanMedium
		case "3":
			c.state.FanMode = FanHigh
		default:
			applied = false
		}
	case "party":
		// The unit broadcasts 2 when party is explicitly disabled, and
		// enabling away while party is on shows party off on the physical
		// display but on in the Ensy app. So only 1 counts as enabled.
		if value == "1" {
			c.state.PresetMode = PresetBoost
		} else {
			c.state.PresetMode = PresetHome
		}
	case "absent":
		// Ditto:
		if value == "1" {
			c.state.PresetMode = PresetAway
		} else {
			c.state.PresetMode = PresetHome
		}
	case "textr":
		applied = c.setTemperature(&c.state.TemperatureExtract, key, value)
	case "texauh":
		applied = c.setTemperature(&c.state.TemperatureExhaust, key, value)
	case "tsupl":
		applied = c.setTemperature(&c.state.TemperatureSupply, key, value)
	case "tout":
		applied = c.setTemperature(&c.state.TemperatureOutside, key, value)
	case "overheating":
		applied = c.setTemperature(&c.state.TemperatureHeater, key, value)
	case "he":
		heating := value == "1"
		c.state.IsHeating = &heating
	default:
		// E.g. what's `rm` and `altsa` etc? Alarms? No documentation and
		// guesswork hasn't led anywhere so far, so leave them alone.
		applied = false
	}

	if applied {
		c.notify()
	}
}

func (c *Client) setTemperature(field **int, key string, value string) bool {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Unparseable payload [%v] for key [%v]: %v", value, key, err)
		return false
	}

	*field = &parsed

	return true
}
