package ensy

import (
	"context"
	"errors"
	"log"
	"time"
)

const connectivityProbeTimeout = 10 * time.Second

// TestConnectivity checks whether a unit with the given MAC address actually
// reports data upstream, by connecting and waiting for its first message.
// The probing client is always stopped, whatever the outcome.
func TestConnectivity(ctx context.Context, macAddress string, allowInsecureTLS bool) bool {
	client := New(macAddress, allowInsecureTLS)
	defer client.Stop()

	client.Connect()

	ctx, cancel := context.WithTimeout(ctx, connectivityProbeTimeout)
	defer cancel()

	if err := client.Discovered().Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Printf("Possible Ensy MAC address [%v], but timed out awaiting data from the MQTT endpoint", client.MacAddress())
		} else {
			log.Printf("Gave up probing Ensy MAC address [%v]: %v", client.MacAddress(), err)
		}

		return false
	}

	log.Printf("Discovered Ensy unit with MAC [%v] and confirmed upstream data is available", client.MacAddress())

	return true
}
