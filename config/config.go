package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const HomeAssistantPrefix = "homeassistant"
const TopicPrefix = "ensy"

type Configuration struct {
	MacAddress       string `json:"mac_address"`
	AllowInsecureTLS bool   `json:"allow_insecure_tls"`
	Mqtt             Mqtt   `json:"mqtt"`
}

// Mqtt points at the local broker the bridge republishes to, not at Ensy's
// endpoint.
type Mqtt struct {
	IpAddress string `json:"ip_address"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func LoadConfiguration(filename string) (*Configuration, error) {
	var file *os.File
	var err error
	if file, err = os.Open(filename); err != nil {
		return nil, err
	}

	defer file.Close()
	decoder := json.NewDecoder(file)
	configuration := &Configuration{}
	if err := decoder.Decode(configuration); err != nil {
		return nil, err
	}

	if configuration.MacAddress == "" {
		return nil, errors.New("mac_address is required")
	}

	if configuration.Mqtt.IpAddress == "" {
		return nil, errors.New("mqtt.ip_address is required")
	}

	return configuration, nil
}

func (m *Mqtt) ClientOptions() *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%v:1883", m.IpAddress)).
		SetUsername(m.Username).
		SetPassword(m.Password).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(client mqtt.Client, err error) {
			log.Printf("MQTT connection lost: %v", err)
		}).
		SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
			log.Printf("MQTT reconnecting")
		})
}
