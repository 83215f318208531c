package ensy

import (
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// fakeToken is an immediately resolved paho token.
type fakeToken struct{}

func (fakeToken) Wait() bool                     { return true }
func (fakeToken) WaitTimeout(time.Duration) bool { return true }
func (fakeToken) Error() error                   { return nil }

func (fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type publishedMessage struct {
	topic    string
	payload  string
	qos      byte
	retained bool
}

// fakeTransport records publishes and subscriptions instead of talking to a
// broker.
type fakeTransport struct {
	mu         sync.Mutex
	published  []publishedMessage
	subscribed []string
}

func (f *fakeTransport) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.published = append(f.published, publishedMessage{
		topic:    topic,
		payload:  payload.(string),
		qos:      qos,
		retained: retained,
	})

	return fakeToken{}
}

func (f *fakeTransport) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.subscribed = append(f.subscribed, topic)

	return fakeToken{}
}

func (f *fakeTransport) publishedMessages() []publishedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]publishedMessage(nil), f.published...)
}

func (f *fakeTransport) IsConnected() bool      { return true }
func (f *fakeTransport) IsConnectionOpen() bool { return true }
func (f *fakeTransport) Connect() mqtt.Token    { return fakeToken{} }
func (f *fakeTransport) Disconnect(quiesce uint) {}

func (f *fakeTransport) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	return fakeToken{}
}

func (f *fakeTransport) Unsubscribe(topics ...string) mqtt.Token { return fakeToken{} }

func (f *fakeTransport) AddRoute(topic string, callback mqtt.MessageHandler) {}

func (f *fakeTransport) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.ClientOptionsReader{}
}

type fakeMessage struct {
	topic   string
	payload string
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 0 }
func (m fakeMessage) Payload() []byte   { return []byte(m.payload) }
func (m fakeMessage) Ack()              {}

func newTestClient(t *testing.T) (*Client, *fakeTransport) {
	t.Helper()

	client := New("00:00:00:00:00:00", false)
	t.Cleanup(client.Stop)

	transport := &fakeTransport{}
	client.mqttClient = transport

	return client, transport
}

// settle waits until the run loop has processed everything queued before it.
func settle(t *testing.T, client *Client) {
	t.Helper()

	done := make(chan struct{})
	client.enqueue(func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the client run loop")
	}
}

// applyReports feeds state topic messages through the transport callback in
// order and waits for them to be processed.
func applyReports(t *testing.T, client *Client, reports ...[2]string) {
	t.Helper()

	for _, report := range reports {
		client.onMessage(client.mqttClient, fakeMessage{
			topic:   client.statePrefix + report[0],
			payload: report[1],
		})
	}

	settle(t, client)
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
