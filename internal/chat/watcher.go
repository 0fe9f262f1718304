// internal/chat/watcher.go

package chat

import (
	"context"
	"log"
	"sync"
	"time"
)

// WindowUpdate is the payload broadcast while a conversation's
// response window is being watched.
type WindowUpdate struct {
	ConversationID string       `json:"conversationId"`
	Window         WindowStatus `json:"window"`
}

type watchEntry struct {
	cancel context.CancelFunc
	refs   int
}

// Watcher polls the response window of subscribed conversations and
// broadcasts state transitions. Polling is reference counted per
// conversation so several clients can watch the same chat; stopping a
// watch never mutates timer state, which lives entirely in the store.
type Watcher struct {
	store    *Store
	hub      *Hub
	interval time.Duration

	mu      sync.Mutex
	entries map[string]*watchEntry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWatcher(store *Store, hub *Hub, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		store:    store,
		hub:      hub,
		interval: interval,
		entries:  make(map[string]*watchEntry),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch begins polling the conversation's window. Repeated calls for
// the same conversation share one poller.
func (w *Watcher) Watch(counterpartID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if entry, ok := w.entries[counterpartID]; ok {
		entry.refs++
		return
	}

	ctx, cancel := context.WithCancel(w.ctx)
	w.entries[counterpartID] = &watchEntry{cancel: cancel, refs: 1}

	w.wg.Add(1)
	go w.poll(ctx, counterpartID)
}

// Unwatch releases one reference. The poller stops when the last
// watcher leaves.
func (w *Watcher) Unwatch(counterpartID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry, ok := w.entries[counterpartID]
	if !ok {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		entry.cancel()
		delete(w.entries, counterpartID)
	}
}

func (w *Watcher) poll(ctx context.Context, counterpartID string) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.store.Window(counterpartID, time.Now())
	if last.PromptRating {
		// Subscribing to an already-expired window still surfaces the
		// one-shot prompt
		w.hub.Broadcast(NewEvent(EventWindowExpired, WindowUpdate{
			ConversationID: counterpartID,
			Window:         last,
		}))
	}

	for {
		select {
		case <-ctx.Done():
			return

		case now := <-ticker.C:
			status := w.store.Window(counterpartID, now)

			if status.PromptRating {
				w.hub.Broadcast(NewEvent(EventWindowExpired, WindowUpdate{
					ConversationID: counterpartID,
					Window:         status,
				}))
			} else if status.State != last.State {
				w.hub.Broadcast(NewEvent(EventWindowChanged, WindowUpdate{
					ConversationID: counterpartID,
					Window:         status,
				}))
			}

			last = status
		}
	}
}

// Stop cancels every poller and waits for them to exit.
func (w *Watcher) Stop() {
	w.cancel()

	w.mu.Lock()
	w.entries = make(map[string]*watchEntry)
	w.mu.Unlock()

	w.wg.Wait()

	log.Println("Conversation watcher stopped")
}
