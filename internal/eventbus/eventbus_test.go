package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		panic("unreachable")
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()

	got := make(chan Event, 1)
	b.Subscribe(EventSelectionChanged, func(e Event) { got <- e })

	b.Publish(SelectionChangedEvent{IDs: []string{"apple"}, Labels: []string{"Apple"}})

	event := waitFor(t, got)
	sel, ok := event.(SelectionChangedEvent)
	require.True(t, ok)
	assert.Equal(t, []string{"apple"}, sel.IDs)
	assert.Equal(t, []string{"Apple"}, sel.Labels)
}

func TestSubscribeFiltersByType(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()

	selections := make(chan Event, 2)
	additions := make(chan Event, 2)
	b.Subscribe(EventSelectionChanged, func(e Event) { selections <- e })
	b.Subscribe(EventItemAdded, func(e Event) { additions <- e })

	b.Publish(ItemAddedEvent{ID: "fig", Label: "Fig"})

	added := waitFor(t, additions)
	assert.Equal(t, EventItemAdded, added.Type())
	select {
	case e := <-selections:
		t.Fatalf("selection handler saw %s", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()

	first := make(chan Event, 2)
	second := make(chan Event, 2)
	unsubscribe := b.Subscribe(EventItemAdded, func(e Event) { first <- e })
	b.Subscribe(EventItemAdded, func(e Event) { second <- e })

	unsubscribe()
	b.Publish(ItemAddedEvent{ID: "kiwi", Label: "Kiwi"})

	waitFor(t, second)
	select {
	case <-first:
		t.Fatal("unsubscribed handler still called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDeliveryOrderIsPublishOrder(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()

	got := make(chan Event, 3)
	b.Subscribe(EventSelectionChanged, func(e Event) { got <- e })

	for _, id := range []string{"a", "b", "c"} {
		b.Publish(SelectionChangedEvent{IDs: []string{id}})
	}

	var ids []string
	for i := 0; i < 3; i++ {
		sel := waitFor(t, got).(SelectionChangedEvent)
		ids = append(ids, sel.IDs[0])
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()

	got := make(chan Event, 1)
	b.Subscribe(EventConfigSaved, func(Event) { panic("boom") })
	b.Subscribe(EventConfigSaved, func(e Event) { got <- e })

	b.Publish(ConfigSavedEvent{Path: "/tmp/x.toml"})

	saved := waitFor(t, got).(ConfigSavedEvent)
	assert.Equal(t, "/tmp/x.toml", saved.Path)
}
