package ensy

import (
	"fmt"
	"log"
	"strconv"
)

// SetTargetTemperature publishes a new target temperature. Values outside
// [MinTemperature, MaxTemperature] return ErrTemperatureOutOfRange and
// publish nothing.
func (c *Client) SetTargetTemperature(temperature int) error {
	if temperature < MinTemperature || temperature > MaxTemperature {
		return fmt.Errorf("%w: %v", ErrTemperatureOutOfRange, temperature)
	}

	c.enqueue(func() {
		c.applyState("temperature", strconv.Itoa(temperature))
	})

	return nil
}

// SetFanMode publishes a new fan speed. The unit clears away/party status
// whenever a fan speed is dialled in manually, so mirror that by
// transitioning to home first.
func (c *Client) SetFanMode(speed FanMode) {
	c.enqueue(func() {
		if c.state.PresetMode != PresetHome {
			c.transitionPreset(PresetHome)
		}
		c.applyState("fan", strconv.Itoa(int(speed)))
	})
}

// SetPresetMode publishes a preset transition. Requesting the mode the unit
// is already known to be in publishes nothing.
func (c *Client) SetPresetMode(preset PresetMode) {
	c.enqueue(func() {
		if preset == c.state.PresetMode {
			return
		}

		c.transitionPreset(preset)
	})
}

// ApplyState publishes a raw value to one of the unit's app topics, for
// keys that don't have a typed command.
func (c *Client) ApplyState(key string, value string) {
	c.enqueue(func() {
		c.applyState(key, value)
	})
}

func (c *Client) transitionPreset(preset PresetMode) {
	switch preset {
	case PresetHome:
		c.applyState("absent", "0")
		// 2 seems to disable party. 0 or 1 turns it on :shrug:
		c.applyState("party", "2")
	case PresetAway:
		c.applyState("absent", "1")
	case PresetBoost:
		c.applyState("party", "1")
	}
}

func (c *Client) applyState(key string, value string) {
	c.publish(c.applyPrefix+key, value)
}

// publish sends one retained QoS 1 message, so a late (re)joining subscriber
// sees the last commanded value without waiting for a fresh report.
func (c *Client) publish(topic string, payload string) {
	if c.mqttClient == nil {
		log.Printf("Dropping publish to [%v]: not connected", topic)
		return
	}

	// Don't hold up the run loop on the ack.
	token := c.mqttClient.Publish(topic, 1, true, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.Printf("MQTT publishing failed: %v", token.Error())
		}
	}()
}
