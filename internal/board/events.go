package board

import (
	"sync"

	"kanban/internal/models"
)

// EventKind names a state change the presentation layer should re-render for.
type EventKind string

const (
	EventBoardCreated   EventKind = "board.created"
	EventBoardDeleted   EventKind = "board.deleted"
	EventBoardSelected  EventKind = "board.selected"
	EventBoardsReplaced EventKind = "boards.replaced"
	EventItemAdded      EventKind = "item.added"
	EventItemDeleted    EventKind = "item.deleted"
	EventItemMoved      EventKind = "item.moved"
	EventThemeChanged   EventKind = "theme.changed"
)

const defaultSubscriberBuffer = 16

// Event describes one completed mutation.
type Event struct {
	Kind    EventKind         `json:"kind"`
	BoardID string            `json:"board_id,omitempty"`
	ItemID  string            `json:"item_id,omitempty"`
	From    models.ColumnKind `json:"from,omitempty"`
	To      models.ColumnKind `json:"to,omitempty"`
	Theme   models.Theme      `json:"theme,omitempty"`
	// Stale is set when the change is in memory but the storage write failed.
	Stale bool `json:"stale,omitempty"`
}

type broker struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func (b *broker) subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.subs == nil {
		b.subs = map[int]chan Event{}
	}
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// publish never blocks; a subscriber with a full buffer misses the event.
func (b *broker) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
