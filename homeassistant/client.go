package homeassistant

import (
	"encoding/json"
	"fmt"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/victorjacobs/go-ensy/config"
	"github.com/victorjacobs/go-ensy/ensy"
)

type Client struct {
	mqtt mqtt.Client
}

func NewClient(mqtt mqtt.Client) *Client {
	return &Client{
		mqtt: mqtt,
	}
}

// RegisterClimate announces the ventilation aggregate as an MQTT climate
// entity: target temperature within the unit's supported range, the three
// fan speeds and the three preset modes.
func (h *Client) RegisterClimate() error {
	climateConfiguration, _ := json.Marshal(climateConfiguration{
		UniqueId:                "ensy_climate",
		Name:                    "Ensy Ventilation Aggregate",
		AvailabilityTopic:       fmt.Sprintf("%v/availability", config.TopicPrefix),
		CurrentTemperatureTopic: fmt.Sprintf("%v/climate/current/state", config.TopicPrefix),
		TemperatureCommandTopic: fmt.Sprintf("%v/climate/temperature/cmd", config.TopicPrefix),
		TemperatureStateTopic:   fmt.Sprintf("%v/climate/temperature/state", config.TopicPrefix),
		MinTemp:                 ensy.MinTemperature,
		MaxTemp:                 ensy.MaxTemperature,
		TempStep:                1,
		FanModes:                []string{"low", "medium", "high"},
		FanModeCommandTopic:     fmt.Sprintf("%v/climate/fan/cmd", config.TopicPrefix),
		FanModeStateTopic:       fmt.Sprintf("%v/climate/fan/state", config.TopicPrefix),
		PresetModes:             []string{"home", "away", "boost"},
		PresetModeCommandTopic:  fmt.Sprintf("%v/climate/preset/cmd", config.TopicPrefix),
		PresetModeStateTopic:    fmt.Sprintf("%v/climate/preset/state", config.TopicPrefix),
	})

	if t := h.mqtt.Publish(config.HomeAssistantPrefix+"/climate/ensy/config", 0, true, climateConfiguration); t.Wait() && t.Error() != nil {
		return t.Error()
	}

	return nil
}

func (h *Client) RegisterSensor(name string, class string, unit string) (string, error) {
	uniqueId := strings.Replace(strings.ToLower(name), " ", "_", -1)

	var stateTopic string
	if class == "" {
		stateTopic = fmt.Sprintf("%v/%v", config.TopicPrefix, uniqueId)
	} else {
		stateTopic = fmt.Sprintf("%v/%v/%v", config.TopicPrefix, class, uniqueId)
	}

	sensorConfiguration, _ := json.Marshal(sensorConfiguration{
		UniqueId:          uniqueId,
		Name:              name,
		DeviceClass:       class,
		StateTopic:        stateTopic,
		UnitOfMeasurement: unit,
		AvailabilityTopic: fmt.Sprintf("%v/availability", config.TopicPrefix),
	})

	configTopic := fmt.Sprintf("%v/sensor/%v/config", config.HomeAssistantPrefix, uniqueId)

	if t := h.mqtt.Publish(configTopic, 0, true, sensorConfiguration); t.Wait() && t.Error() != nil {
		return "", t.Error()
	}

	return stateTopic, nil
}

func (h *Client) RegisterBinarySensor(name string, class string) (string, error) {
	uniqueId := strings.Replace(strings.ToLower(name), " ", "_", -1)

	stateTopic := fmt.Sprintf("%v/%v/%v", config.TopicPrefix, class, uniqueId)

	binarySensorConfiguration, _ := json.Marshal(binarySensorConfiguration{
		UniqueId:          uniqueId,
		Name:              name,
		DeviceClass:       class,
		StateTopic:        stateTopic,
		AvailabilityTopic: fmt.Sprintf("%v/availability", config.TopicPrefix),
	})

	configTopic := fmt.Sprintf("%v/binary_sensor/%v/config", config.HomeAssistantPrefix, uniqueId)

	if t := h.mqtt.Publish(configTopic, 0, true, binarySensorConfiguration); t.Wait() && t.Error() != nil {
		return "", t.Error()
	}

	return stateTopic, nil
}
