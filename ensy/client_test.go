package ensy

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacAddressNormalization(t *testing.T) {
	client := New("AA:BB:CC:11:22:33", false)
	t.Cleanup(client.Stop)

	assert.Equal(t, "aabbcc112233", client.MacAddress())
	assert.Equal(t, "units/aabbcc112233/unit/", client.statePrefix)
	assert.Equal(t, "units/aabbcc112233/app/", client.applyPrefix)
}

func TestOnConnectSubscribes(t *testing.T) {
	client, transport := newTestClient(t)

	client.onConnect(transport)

	assert.Equal(t, []string{"units/000000000000/unit/#"}, transport.subscribed)
}

func TestTLSConfigSecureByDefault(t *testing.T) {
	client, _ := newTestClient(t)

	cfg := client.tlsConfig()
	assert.False(t, cfg.InsecureSkipVerify)
	assert.EqualValues(t, tls.VersionTLS12, cfg.MinVersion)
}

func TestTLSConfigInsecure(t *testing.T) {
	client := New("00:00:00:00:00:00", true)
	t.Cleanup(client.Stop)

	cfg := client.tlsConfig()
	assert.True(t, cfg.InsecureSkipVerify)
	// Still negotiates a modern TLS version:
	assert.EqualValues(t, tls.VersionTLS12, cfg.MinVersion)
}

func TestStopIsIdempotent(t *testing.T) {
	client := New("00:00:00:00:00:00", false)

	client.Stop()
	client.Stop()
}
