package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/julienschmidt/httprouter"
	"github.com/victorjacobs/go-ensy/bridge"
	"github.com/victorjacobs/go-ensy/config"
	"github.com/victorjacobs/go-ensy/ensy"
	"github.com/victorjacobs/go-ensy/routes"
)

func main() {
	probe := flag.Bool("probe", false, "check that the configured unit reports data upstream, then exit")
	configFile := flag.String("config", "ensy.json", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfiguration(*configFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
		return
	}

	if *probe {
		if ensy.TestConnectivity(context.Background(), cfg.MacAddress, cfg.AllowInsecureTLS) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ensyClient := ensy.New(cfg.MacAddress, cfg.AllowInsecureTLS)
	bridge := bridge.New(cfg, ensyClient)

	mqttOpts := cfg.Mqtt.ClientOptions()
	// Configure MQTT subscriptions in the ConnectHandler to make sure they are set up after reconnect
	mqttOpts.SetOnConnectHandler(func(client mqtt.Client) {
		bridge.SubscribeToCommands(client)
	})

	mqttClient := mqtt.NewClient(mqttOpts)
	if t := mqttClient.Connect(); t.Wait() && t.Error() != nil {
		log.Printf("MQTT connection error: %v", t.Error())
		return
	}

	if err := bridge.RegisterEntities(mqttClient); err != nil {
		log.Fatalf("Error registering entities: %v", err)
		return
	}

	// Wire state propagation before connecting upstream, or the first
	// reports can race the wiring:
	bridge.Start(mqttClient)
	ensyClient.Connect()

	// Start httprouter
	router := httprouter.New()
	router.GET("/state", routes.State(bridge))

	go loopSafely(func() {
		http.ListenAndServe(":8080", router)
	})

	select {}
}
