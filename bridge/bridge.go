package bridge

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/victorjacobs/go-ensy/config"
	"github.com/victorjacobs/go-ensy/ensy"
	"github.com/victorjacobs/go-ensy/homeassistant"
)

// Bridge republishes the unit's state to the local broker for Home
// Assistant, and forwards Home Assistant commands to the unit.
type Bridge struct {
	cfg        *config.Configuration
	ensyClient *ensy.Client

	mu                sync.RWMutex
	lastState         ensy.State
	hasState          bool
	heatingStateTopic string
}

func New(cfg *config.Configuration, ensyClient *ensy.Client) *Bridge {
	return &Bridge{
		cfg:        cfg,
		ensyClient: ensyClient,
	}
}

func (b *Bridge) RegisterEntities(mqttClient mqtt.Client) error {
	homeAssistantClient := homeassistant.NewClient(mqttClient)

	if err := homeAssistantClient.RegisterClimate(); err != nil {
		return err
	}
	log.Printf("Registered climate entity")

	for _, sensorConfig := range sensorDefinitions {
		if stateTopic, err := homeAssistantClient.RegisterSensor(sensorConfig.name, sensorConfig.class, sensorConfig.unit); err != nil {
			return err
		} else {
			log.Printf("Registered sensor %v", sensorConfig.name)
			sensorConfig.stateTopic = stateTopic
		}
	}

	heatingStateTopic, err := homeAssistantClient.RegisterBinarySensor("Ensy Heating", "heat")
	if err != nil {
		return err
	}
	log.Printf("Registered binary sensor Ensy Heating")

	b.mu.Lock()
	b.heatingStateTopic = heatingStateTopic
	b.mu.Unlock()

	return nil
}

func (b *Bridge) SubscribeToCommands(mqttClient mqtt.Client) {
	b.subscribe(mqttClient, fmt.Sprintf("%v/climate/temperature/cmd", config.TopicPrefix), b.handleTemperatureCommand)
	b.subscribe(mqttClient, fmt.Sprintf("%v/climate/fan/cmd", config.TopicPrefix), b.handleFanModeCommand)
	b.subscribe(mqttClient, fmt.Sprintf("%v/climate/preset/cmd", config.TopicPrefix), b.handlePresetCommand)
}

// Start wires the unit's state updates through to the local broker.
func (b *Bridge) Start(mqttClient mqtt.Client) {
	b.ensyClient.AddListener(func(state ensy.State) {
		b.publishState(mqttClient, state)
	})
}

// State returns the last snapshot received from the unit, if any.
func (b *Bridge) State() (ensy.State, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.lastState, b.hasState
}

func (b *Bridge) subscribe(mqttClient mqtt.Client, topic string, handler func(payload string)) {
	if t := mqttClient.Subscribe(topic, 0, func(client mqtt.Client, msg mqtt.Message) {
		handler(string(msg.Payload()))
	}); t.Wait() && t.Error() != nil {
		log.Printf("MQTT receive error: %v", t.Error())
	}
}

func (b *Bridge) handleTemperatureCommand(payload string) {
	// Home Assistant sends "21" or "21.0" depending on the frontend.
	temperature, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		log.Printf("Unparseable temperature command [%v]: %v", payload, err)
		return
	}

	if err := b.ensyClient.SetTargetTemperature(int(temperature)); err != nil {
		log.Printf("Error setting target temperature: %v", err)
	}
}

func (b *Bridge) handleFanModeCommand(payload string) {
	switch payload {
	case "low":
		b.ensyClient.SetFanMode(ensy.FanLow)
	case "medium":
		b.ensyClient.SetFanMode(ensy.FanMedium)
	case "high":
		b.ensyClient.SetFanMode(ensy.FanHigh)
	default:
		log.Printf("Unknown fan mode command [%v]", payload)
	}
}

func (b *Bridge) handlePresetCommand(payload string) {
	switch preset := ensy.PresetMode(payload); preset {
	case ensy.PresetHome, ensy.PresetAway, ensy.PresetBoost:
		b.ensyClient.SetPresetMode(preset)
	default:
		log.Printf("Unknown preset command [%v]", payload)
	}
}

func (b *Bridge) publishState(mqttClient mqtt.Client, state ensy.State) {
	b.mu.Lock()
	b.lastState = state
	b.hasState = true
	heatingStateTopic := b.heatingStateTopic
	b.mu.Unlock()

	availability := "offline"
	if state.IsOnline {
		availability = "online"
	}
	b.publish(mqttClient, fmt.Sprintf("%v/availability", config.TopicPrefix), availability)

	if state.TemperatureTarget != nil {
		b.publish(mqttClient, fmt.Sprintf("%v/climate/temperature/state", config.TopicPrefix), strconv.Itoa(*state.TemperatureTarget))
	}

	// The climate entity shows the extract side as the current temperature.
	if state.TemperatureExtract != nil {
		b.publish(mqttClient, fmt.Sprintf("%v/climate/current/state", config.TopicPrefix), strconv.Itoa(*state.TemperatureExtract))
	}

	if state.FanMode != 0 {
		b.publish(mqttClient, fmt.Sprintf("%v/climate/fan/state", config.TopicPrefix), state.FanMode.String())
	}

	if state.PresetMode != "" {
		b.publish(mqttClient, fmt.Sprintf("%v/climate/preset/state", config.TopicPrefix), string(state.PresetMode))
	}

	if state.IsHeating != nil && heatingStateTopic != "" {
		heating := "OFF"
		if *state.IsHeating {
			heating = "ON"
		}
		b.publish(mqttClient, heatingStateTopic, heating)
	}

	for _, sensorConfig := range sensorDefinitions {
		if value := sensorConfig.get(state); value != nil && sensorConfig.stateTopic != "" {
			b.publish(mqttClient, sensorConfig.stateTopic, strconv.Itoa(*value))
		}
	}
}

func (b *Bridge) publish(mqttClient mqtt.Client, topic string, payload string) {
	if t := mqttClient.Publish(topic, 0, true, payload); t.Wait() && t.Error() != nil {
		log.Printf("MQTT publishing failed: %v", t.Error())
	}
}
