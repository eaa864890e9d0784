package events

import "errors"

var (
	// ErrNotConnected is returned when publishing on a disconnected client.
	ErrNotConnected = errors.New("events: mqtt client not connected")

	// ErrConnectionFailed is returned when the initial broker connection fails.
	ErrConnectionFailed = errors.New("events: mqtt connection failed")

	// ErrPublishFailed is returned when the broker did not acknowledge a publish.
	ErrPublishFailed = errors.New("events: publish failed")

	// ErrInvalidQoS is returned for a QoS outside 0..2.
	ErrInvalidQoS = errors.New("events: invalid QoS level (must be 0, 1, or 2)")

	// ErrQueueFull is reported when the dispatcher drops an event.
	ErrQueueFull = errors.New("events: queue is full")
)
