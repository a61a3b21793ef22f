package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusPublishSubscribe(t *testing.T) {
	bus := NewEventBus()

	var received []*Event
	bus.Subscribe(EventBookingRequestCreated, func(event *Event) error {
		received = append(received, event)
		return nil
	})

	err := bus.PublishJSON(EventBookingRequestCreated, BookingEventPayload{
		RequestID:   7,
		Status:      "pending",
		ProgramName: "Robotics Demo",
	})
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.False(t, received[0].CreatedAt.IsZero())

	var payload BookingEventPayload
	require.NoError(t, json.Unmarshal(received[0].Payload, &payload))
	assert.Equal(t, int64(7), payload.RequestID)
	assert.Equal(t, "Robotics Demo", payload.ProgramName)
}

func TestEventBusIgnoresOtherTypes(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.Subscribe(EventBookingRequestApproved, func(event *Event) error {
		called = true
		return nil
	})

	require.NoError(t, bus.PublishJSON(EventBookingRequestRejected, BookingEventPayload{RequestID: 1}))
	assert.False(t, called)
}

func TestNilBusIsSafe(t *testing.T) {
	var bus *EventBus
	assert.NoError(t, bus.PublishJSON(EventBookingRequestCreated, nil))
}
