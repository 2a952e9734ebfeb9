package events_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/team-insight/insight-cli/internal/events"
)

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	bus := events.NewBus()

	var order []string
	bus.Subscribe(events.Logout, func() { order = append(order, "first") })
	bus.Subscribe(events.Logout, func() { order = append(order, "second") })
	bus.Subscribe(events.TokenRefreshFailed, func() { order = append(order, "other") })

	bus.Emit(events.Logout)

	require.Equal(t, []string{"first", "second"}, order)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()

	var calls int
	unsubscribe := bus.Subscribe(events.TokenRefreshFailed, func() { calls++ })

	bus.Emit(events.TokenRefreshFailed)
	unsubscribe()
	bus.Emit(events.TokenRefreshFailed)

	require.Equal(t, 1, calls)

	// A second unsubscribe is a no-op.
	unsubscribe()
	bus.Emit(events.TokenRefreshFailed)
	require.Equal(t, 1, calls)
}

func TestBus_UnsubscribeRemovesOnlyOwnHandler(t *testing.T) {
	bus := events.NewBus()

	var a, b int
	unsubA := bus.Subscribe(events.Logout, func() { a++ })
	bus.Subscribe(events.Logout, func() { b++ })

	unsubA()
	bus.Emit(events.Logout)

	require.Zero(t, a)
	require.Equal(t, 1, b)
}

func TestBus_EmitWithoutSubscribers(t *testing.T) {
	bus := events.NewBus()

	// Fire-and-forget: emitting with no subscribers must not panic.
	require.NotPanics(t, func() { bus.Emit(events.Logout) })
}
