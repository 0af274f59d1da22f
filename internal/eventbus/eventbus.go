package eventbus

import (
	"log"
	"runtime/debug"
	"sync"
)

// EventType identifies a kind of event on the bus
type EventType string

const (
	EventSelectionChanged EventType = "selection_changed"
	EventItemAdded        EventType = "item_added"
	EventConfigSaved      EventType = "config_saved"
)

// Event is anything that can be published on the bus
type Event interface {
	Type() EventType
}

// SelectionChangedEvent carries the widget's selection after it changed
type SelectionChangedEvent struct {
	IDs    []string
	Labels []string
}

func (SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ItemAddedEvent announces an item created at runtime
type ItemAddedEvent struct {
	ID    string
	Label string
}

func (ItemAddedEvent) Type() EventType { return EventItemAdded }

// ConfigSavedEvent announces a successful config write
type ConfigSavedEvent struct {
	Path string
}

func (ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// Handler is a function that handles events
type Handler func(Event)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler Handler) func()
	Close()
}

type subscription struct {
	id      int
	handler Handler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan Event
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan Event, 64),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event Event) {
	log.Printf("EventBus: publishing %s", event.Type())

	select {
	case b.eventChan <- event:
	default:
		log.Printf("EventBus: channel full, dropping %s", event.Type())
	}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Events still queued are dropped.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch delivers events to subscribers. Handlers run in order on the
// dispatcher goroutine so a config writer sees changes in publish order.
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, sub := range subs {
				b.deliver(sub.handler, event)
			}

		case <-b.quit:
			return
		}
	}
}

func (b *bus) deliver(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("EventBus: handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}
