package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

// ── fakes ──

type fakeToken struct {
	completed bool
	err       error
}

func (t *fakeToken) Wait() bool                     { return t.completed }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.completed }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	connected    bool
	token        *fakeToken
	published    []published
	disconnected bool
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) pahomqtt.Token {
	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return c.token
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func newTestPublisher(client *fakeClient) *MQTTPublisher {
	cfg := config.MQTT{TopicPrefix: "sphere-sync", QoS: 1}
	return newMQTTPublisher(client, cfg, time.Second, logger.Nop())
}

// ── Publish ──

func TestMQTTPublisher_Publish(t *testing.T) {
	event := Event{
		Kind:     KindCreated,
		SphereID: "sp1",
		Category: models.CategoryLocations,
		ItemID:   "loc1",
		UserID:   "u1",
		At:       models.TimestampFromMillis(1700000000000),
	}

	tests := []struct {
		name    string
		client  *fakeClient
		wantErr error
		wantPub int
	}{
		{
			name:    "acknowledged",
			client:  &fakeClient{connected: true, token: &fakeToken{completed: true}},
			wantPub: 1,
		},
		{
			name:    "not connected",
			client:  &fakeClient{connected: false, token: &fakeToken{completed: true}},
			wantErr: ErrNotConnected,
		},
		{
			name:    "timeout",
			client:  &fakeClient{connected: true, token: &fakeToken{completed: false}},
			wantErr: ErrPublishFailed,
			wantPub: 1,
		},
		{
			name:    "broker error",
			client:  &fakeClient{connected: true, token: &fakeToken{completed: true, err: errors.New("boom")}},
			wantErr: ErrPublishFailed,
			wantPub: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPublisher(tt.client)

			err := p.Publish(context.Background(), event)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, tt.client.published, tt.wantPub)
		})
	}
}

func TestMQTTPublisher_Publish_Payload(t *testing.T) {
	client := &fakeClient{connected: true, token: &fakeToken{completed: true}}
	p := newTestPublisher(client)

	err := p.Publish(context.Background(), Event{
		Kind:     KindUpdated,
		SphereID: "sp1",
		Category: models.CategoryStones,
		ItemID:   "st1",
		At:       models.TimestampFromMillis(1700000000000),
	})
	require.NoError(t, err)
	require.Len(t, client.published, 1)

	msg := client.published[0]
	assert.Equal(t, "sphere-sync/spheres/sp1/stones/updated", msg.topic)
	assert.Equal(t, byte(1), msg.qos)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.payload, &body))
	assert.Equal(t, "updated", body["type"])
	assert.Equal(t, "st1", body["itemId"])
	assert.Equal(t, "2023-11-14T22:13:20.000Z", body["at"])
	assert.NotContains(t, body, "userId")
}

func TestMQTTPublisher_HealthCheckAndClose(t *testing.T) {
	client := &fakeClient{connected: false, token: &fakeToken{completed: true}}
	p := newTestPublisher(client)

	assert.ErrorIs(t, p.HealthCheck(context.Background()), ErrNotConnected)

	client.connected = true
	assert.NoError(t, p.HealthCheck(context.Background()))

	require.NoError(t, p.Close())
	assert.True(t, client.disconnected)
}

func TestNewMQTTPublisher_InvalidQoS(t *testing.T) {
	p, err := NewMQTTPublisher(config.MQTT{Broker: "tcp://localhost:1883", QoS: 3}, logger.Nop())

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidQoS)
}
