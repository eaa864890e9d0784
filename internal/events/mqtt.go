package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/logger"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultKeepAlive      = 30 * time.Second
	disconnectQuiesceMs   = 250
	maxQoS                = 2
)

// mqttClient is the part of the paho client the publisher uses.
type mqttClient interface {
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes events as JSON to an MQTT broker.
type MQTTPublisher struct {
	client  mqttClient
	topics  Topics
	qos     byte
	timeout time.Duration
	logger  *logger.Logger
}

// NewMQTTPublisher connects to cfg.Broker and returns a ready publisher.
// The paho client reconnects on its own after the first successful connect.
func NewMQTTPublisher(cfg config.MQTT, log *logger.Logger) (*MQTTPublisher, error) {
	if cfg.QoS < 0 || cfg.QoS > maxQoS {
		return nil, ErrInvalidQoS
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	opts := buildClientOptions(cfg, timeout, log)
	client := pahomqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	log.Info().Str("broker", cfg.Broker).Str("client_id", cfg.ClientID).Msg("connected to mqtt broker")

	return newMQTTPublisher(client, cfg, timeout, log), nil
}

func newMQTTPublisher(client mqttClient, cfg config.MQTT, timeout time.Duration, log *logger.Logger) *MQTTPublisher {
	return &MQTTPublisher{
		client:  client,
		topics:  Topics{Prefix: cfg.TopicPrefix},
		qos:     byte(cfg.QoS),
		timeout: timeout,
		logger:  log,
	}
}

func buildClientOptions(cfg config.MQTT, timeout time.Duration, log *logger.Logger) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(false)
	opts.SetConnectTimeout(timeout)
	opts.SetKeepAlive(defaultKeepAlive)

	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost")
	})
	opts.SetReconnectingHandler(func(_ pahomqtt.Client, _ *pahomqtt.ClientOptions) {
		log.Info().Msg("mqtt reconnecting")
	})

	return opts
}

// Publish sends event to its topic and waits for the broker acknowledgement
// (QoS 1 and 2) or for the write (QoS 0).
func (p *MQTTPublisher) Publish(ctx context.Context, event Event) error {
	if !p.client.IsConnected() {
		return ErrNotConnected
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	token := p.client.Publish(p.topics.Event(event), p.qos, false, payload)
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, timeout)
	}
	if err = token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

// HealthCheck reports ErrNotConnected while the client is offline.
func (p *MQTTPublisher) HealthCheck(context.Context) error {
	if !p.client.IsConnected() {
		return ErrNotConnected
	}
	return nil
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(disconnectQuiesceMs)
	p.logger.Info().Msg("mqtt publisher closed")
	return nil
}
