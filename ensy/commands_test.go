package ensy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTargetTemperature(t *testing.T) {
	client, transport := newTestClient(t)

	require.NoError(t, client.SetTargetTemperature(20))
	settle(t, client)

	published := transport.publishedMessages()
	require.Len(t, published, 1)
	assert.Equal(t, "units/000000000000/app/temperature", published[0].topic)
	assert.Equal(t, "20", published[0].payload)
	assert.Equal(t, byte(1), published[0].qos)
	assert.True(t, published[0].retained)
}

func TestSetTargetTemperatureOutOfBounds(t *testing.T) {
	client, transport := newTestClient(t)

	for _, temperature := range []int{MinTemperature - 1, MaxTemperature + 1} {
		err := client.SetTargetTemperature(temperature)
		assert.ErrorIs(t, err, ErrTemperatureOutOfRange)
	}

	settle(t, client)
	assert.Empty(t, transport.publishedMessages())
}

func TestSetTargetTemperatureBounds(t *testing.T) {
	client, transport := newTestClient(t)

	require.NoError(t, client.SetTargetTemperature(MinTemperature))
	require.NoError(t, client.SetTargetTemperature(MaxTemperature))
	settle(t, client)

	published := transport.publishedMessages()
	require.Len(t, published, 2)
	assert.Equal(t, "15", published[0].payload)
	assert.Equal(t, "26", published[1].payload)
}

func TestSetFanMode(t *testing.T) {
	client, transport := newTestClient(t)

	applyReports(t, client, [2]string{"party", "2"})
	require.Equal(t, PresetHome, client.State().PresetMode)

	client.SetFanMode(FanHigh)
	settle(t, client)

	published := transport.publishedMessages()
	require.Len(t, published, 1)
	assert.Equal(t, "units/000000000000/app/fan", published[0].topic)
	assert.Equal(t, "3", published[0].payload)
}

func TestSetFanModeClearsPreset(t *testing.T) {
	for _, preset := range [][2]string{{"absent", "1"}, {"party", "1"}} {
		t.Run(preset[0], func(t *testing.T) {
			client, transport := newTestClient(t)

			applyReports(t, client, preset)

			// Adjusting the fan speed should clear the away/boost mode:
			client.SetFanMode(FanMedium)
			settle(t, client)

			published := transport.publishedMessages()
			require.Len(t, published, 3)
			assert.Equal(t, "units/000000000000/app/absent", published[0].topic)
			assert.Equal(t, "0", published[0].payload)
			assert.Equal(t, "units/000000000000/app/party", published[1].topic)
			assert.Equal(t, "2", published[1].payload)
			assert.Equal(t, "units/000000000000/app/fan", published[2].topic)
			assert.Equal(t, "2", published[2].payload)
		})
	}
}

func TestSetPresetMode(t *testing.T) {
	tests := []struct {
		preset PresetMode
		want   []publishedMessage
	}{
		{
			preset: PresetHome,
			want: []publishedMessage{
				{topic: "units/000000000000/app/absent", payload: "0", qos: 1, retained: true},
				{topic: "units/000000000000/app/party", payload: "2", qos: 1, retained: true},
			},
		},
		{
			preset: PresetAway,
			want: []publishedMessage{
				{topic: "units/000000000000/app/absent", payload: "1", qos: 1, retained: true},
			},
		},
		{
			preset: PresetBoost,
			want: []publishedMessage{
				{topic: "units/000000000000/app/party", payload: "1", qos: 1, retained: true},
			},
		},
	}

	for _, test := range tests {
		t.Run(string(test.preset), func(t *testing.T) {
			client, transport := newTestClient(t)

			client.SetPresetMode(test.preset)
			settle(t, client)

			assert.Equal(t, test.want, transport.publishedMessages())
		})
	}
}

func TestSetPresetModeIdempotent(t *testing.T) {
	client, transport := newTestClient(t)

	applyReports(t, client, [2]string{"party", "1"})
	require.Equal(t, PresetBoost, client.State().PresetMode)

	client.SetPresetMode(PresetBoost)
	settle(t, client)

	assert.Empty(t, transport.publishedMessages())
}
