package ensy

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	apiHost = "app.ensy.no"
	apiPort = 8083

	MinTemperature = 15
	MaxTemperature = 26
)

const (
	taskQueueSize       = 64
	disconnectQuiesceMs = 250
	maxReconnectBackoff = 2 * time.Minute
)

// Listener receives a full state snapshot after every applied update. It is
// invoked on the client's run loop and must not call back into command or
// State methods.
type Listener func(State)

// Client maintains a live model of one Ensy ventilation aggregate by
// subscribing to its topic tree on Ensy's websocket MQTT endpoint, and
// issues commands by publishing to the sibling app topics.
//
// One client per unit. The MAC address is the only identity in Ensy's
// protocol: it scopes both topic prefixes and nothing else authenticates
// the session.
type Client struct {
	macAddress       string
	allowInsecureTLS bool

	statePrefix string
	applyPrefix string

	// state, listeners and all decoding only ever run on the loop started
	// by New, so none of them need locking.
	state     State
	listeners []Listener

	online     *Latch
	discovered *Latch

	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once

	mqttClient mqtt.Client
	newClient  func(*mqtt.ClientOptions) mqtt.Client
}

// New creates a client for the unit with the given MAC address. The address
// may contain colons; the unit's topics use it stripped and lowercased.
//
// allowInsecureTLS disables certificate verification for the upstream
// endpoint, see Connect.
func New(macAddress string, allowInsecureTLS bool) *Client {
	mac := strings.ToLower(strings.ReplaceAll(macAddress, ":", ""))

	c := &Client{
		macAddress:       mac,
		allowInsecureTLS: allowInsecureTLS,
		statePrefix:      fmt.Sprintf("units/%v/unit/", mac),
		applyPrefix:      fmt.Sprintf("units/%v/app/", mac),
		online:           NewLatch(),
		discovered:       NewLatch(),
		tasks:            make(chan func(), taskQueueSize),
		done:             make(chan struct{}),
		newClient:        mqtt.NewClient,
	}

	go c.run()

	return c
}

// MacAddress returns the normalized MAC address the client is scoped to.
func (c *Client) MacAddress() string {
	return c.macAddress
}

// Discovered is set the first time anything arrives on this unit's topics,
// whether or not the key is understood. It is never cleared.
func (c *Client) Discovered() *Latch {
	return c.discovered
}

// Online tracks whether the unit reports itself online. It is cleared when
// the connection to the endpoint is lost. Note this is about the unit, not
// about this client's own connectivity.
func (c *Client) Online() *Latch {
	return c.online
}

// AddListener registers a callback for state updates.
func (c *Client) AddListener(listener Listener) {
	c.enqueue(func() {
		c.listeners = append(c.listeners, listener)
	})
}

// State returns a snapshot of the last known device state.
func (c *Client) State() State {
	snapshot := make(chan State, 1)
	c.enqueue(func() {
		snapshot <- c.state
	})

	select {
	case state := <-snapshot:
		return state
	case <-c.done:
		return State{}
	}
}

// Connect configures TLS, dispatches the broker connection and returns
// without waiting for the session to come up. Reconnecting after failures
// is paho's job, with its own backoff; this client never retries on top.
func (c *Client) Connect() {
	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("wss://%v:%v/mqtt", apiHost, apiPort)).
		SetClientID(fmt.Sprintf("go-ensy-%v", c.macAddress)).
		SetTLSConfig(c.tlsConfig()).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(maxReconnectBackoff).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(c.onConnectionLost)

	c.mqttClient = c.newClient(opts)

	token := c.mqttClient.Connect()
	go func() {
		if token.Wait() && token.Error() != nil {
			// Paho doesn't say much about why. Historically, Ensy fails to
			// rotate their TLS certificate in time.
			log.Printf("Failed to connect: %v. Likely expired TLS certificate", token.Error())
		}
	}()

	log.Printf("Started Ensy client for %v", c.macAddress)
}

// Stop shuts down the transport and the run loop. It does not block.
func (c *Client) Stop() {
	c.stopOnce.Do(func() {
		go func() {
			if c.mqttClient != nil {
				c.mqttClient.Disconnect(disconnectQuiesceMs)
			}
			close(c.done)
		}()

		log.Printf("Stopped Ensy client")
	})
}

func (c *Client) tlsConfig() *tls.Config {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if !c.allowInsecureTLS {
		return cfg
	}

	// Ensy lets their server certificate lapse for extended periods. The
	// unit itself keeps connecting regardless, and the MAC is the only real
	// authenticator in this protocol, so skipping verification is an
	// accepted trade-off, strictly per-client opt-in.
	cfg.InsecureSkipVerify = true
	if roots, err := x509.SystemCertPool(); err == nil {
		cfg.RootCAs = roots
	}

	return cfg
}

// onConnect runs on every (re)connect, so the subscription survives paho's
// own reconnects.
func (c *Client) onConnect(client mqtt.Client) {
	log.Printf("Connected, establishing subscription")

	if t := client.Subscribe(c.statePrefix+"#", 0, c.onMessage); t.Wait() && t.Error() != nil {
		log.Printf("MQTT subscribe error: %v", t.Error())
	}
}

func (c *Client) onMessage(client mqtt.Client, msg mqtt.Message) {
	value := string(msg.Payload())
	log.Printf("Received MQTT message on topic [%v] with payload [%v]", msg.Topic(), value)

	if !strings.HasPrefix(msg.Topic(), c.statePrefix) {
		// Not something we know
		return
	}

	key := strings.TrimPrefix(msg.Topic(), c.statePrefix)

	// Paho delivers on its own goroutine; hand off to the run loop and
	// return immediately.
	c.enqueue(func() {
		c.applyReport(key, value)
	})
}

func (c *Client) onConnectionLost(client mqtt.Client, err error) {
	log.Printf("Disconnected: %v", err)

	c.enqueue(func() {
		c.online.Clear()
		c.state.IsOnline = false
		c.notify()
	})
}

// run is the single goroutine on which all state mutation and listener
// notification happens.
func (c *Client) run() {
	for {
		select {
		case task := <-c.tasks:
			task()
		case <-c.done:
			return
		}
	}
}

func (c *Client) enqueue(task func()) {
	select {
	case c.tasks <- task:
	case <-c.done:
	}
}

func (c *Client) notify() {
	for _, listener := range c.listeners {
		listener(c.state)
	}
}
