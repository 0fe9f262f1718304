// internal/chat/store.go
// In-memory conversation collection, activity-ordered, with JSON
// snapshots to the key-value store

package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Store owns all conversation state. A single mutex serializes writes;
// reads return copies so list rendering cannot race a send.
type Store struct {
	mu     sync.Mutex
	order  []string // counterpart ids, most recently active first
	convs  map[string]*Conversation
	window time.Duration

	// Session-scoped prompt-shown flags, one per open window; never
	// persisted so a restart may re-prompt an expired window once
	prompts map[string]bool

	kv kvstore.KVStore
}

// NewStore builds the conversation collection from the persisted
// snapshot; an absent or unreadable snapshot yields an empty collection
// (seeds are installed at login).
func NewStore(kv kvstore.KVStore, window time.Duration) *Store {
	s := &Store{
		convs:   make(map[string]*Conversation),
		prompts: make(map[string]bool),
		window:  window,
		kv:      kv,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := kv.Load(ctx, kvstore.KeyConversations)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			log.Printf("chat: failed to load snapshot, starting empty: %v", err)
		}
		return s
	}

	var loaded []*Conversation
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("chat: malformed snapshot, starting empty: %v", err)
		return s
	}

	for _, c := range loaded {
		if c.Messages == nil {
			c.Messages = []Message{}
		}
		s.convs[c.CounterpartID] = c
		s.order = append(s.order, c.CounterpartID)
	}

	return s
}

// Ensure creates a conversation for the counterpart if none exists.
// Existing state is preserved verbatim; navigating back to a chat never
// resets or restarts anything.
func (s *Store) Ensure(counterpartID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.convs[counterpartID]; ok {
		return copyConversation(existing)
	}

	conv := &Conversation{
		ID:              uuid.NewString(),
		CounterpartID:   counterpartID,
		Messages:        []Message{},
		TimerStarted:    nil,
		Rated:           false,
		LastMessageTime: time.Now(),
	}
	s.convs[counterpartID] = conv
	s.order = append([]string{counterpartID}, s.order...)

	s.snapshotLocked()
	return copyConversation(conv)
}

// Send appends an outgoing message, refreshes the preview cache, moves
// the conversation to the front, and opens a fresh response window when
// none is live. Sending while a window is already running leaves the
// timer untouched.
func (s *Store) Send(counterpartID, senderID, text string, now time.Time) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[counterpartID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	conv.Messages = append(conv.Messages, Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: now,
	})

	conv.LastMessage = "You: " + text
	conv.LastMessageTime = now
	conv.LastMessageSenderID = senderID
	conv.WaitingForResponse = true
	conv.TheyRespondedLast = false

	if windowLapsed(conv, s.window, now) {
		started := now
		conv.TimerStarted = &started
		conv.Rated = false
		conv.RatingType = ""
		conv.RatingReason = ""
		s.prompts[counterpartID] = false
		recordWindowOpened()
	}

	s.moveToFrontLocked(counterpartID)
	s.snapshotLocked()
	recordMessage("sent")
	return copyConversation(conv), nil
}

// Receive appends an inbound message, marks all prior local messages as
// seen, refreshes the preview cache, and moves the conversation to the
// front. The response window is never touched.
func (s *Store) Receive(counterpartID, text string, now time.Time) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[counterpartID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	for i := range conv.Messages {
		if conv.Messages[i].SenderID != counterpartID && !conv.Messages[i].Seen {
			conv.Messages[i].Seen = true
		}
	}

	conv.Messages = append(conv.Messages, Message{
		ID:        uuid.NewString(),
		SenderID:  counterpartID,
		Text:      text,
		Timestamp: now,
	})

	conv.LastMessage = text
	conv.LastMessageTime = now
	conv.LastMessageSenderID = counterpartID
	conv.WaitingForResponse = false
	conv.TheyRespondedLast = true

	s.moveToFrontLocked(counterpartID)
	s.snapshotLocked()
	recordMessage("received")
	return copyConversation(conv), nil
}

// Window evaluates the response window against now. The rating prompt
// is armed once per expiry: the first caller to observe the expired
// state gets PromptRating set, subsequent polls do not.
func (s *Store) Window(counterpartID string, now time.Time) WindowStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[counterpartID]
	if !ok {
		return evaluateWindow(nil, s.window, now)
	}

	status := evaluateWindow(conv, s.window, now)
	if status.State == WindowExpiredUnrated && !s.prompts[counterpartID] {
		s.prompts[counterpartID] = true
		status.PromptRating = true
		recordWindowExpired()
	}
	return status
}

// MarkRated records the outcome of the current window. Unknown
// counterparts are a no-op.
func (s *Store) MarkRated(counterpartID string, isGood bool, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[counterpartID]
	if !ok {
		return
	}

	conv.Rated = true
	if isGood {
		conv.RatingType = "good"
	} else {
		conv.RatingType = "bad"
	}
	conv.RatingReason = reason

	s.snapshotLocked()
}

// Get returns the conversation for a counterpart
func (s *Store) Get(counterpartID string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[counterpartID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return copyConversation(conv), nil
}

// List returns all conversations, most recently active first
func (s *Store) List() []*Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Conversation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyConversation(s.convs[id]))
	}
	return out
}

// DeleteAll clears the entire collection and persists the empty state
func (s *Store) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.convs = make(map[string]*Conversation)
	s.prompts = make(map[string]bool)
	s.order = nil

	s.snapshotLocked()
}

// Replace installs a fresh set of conversations, replacing any current
// state. Used when a session starts with seed history.
func (s *Store) Replace(convs []*Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.convs = make(map[string]*Conversation, len(convs))
	s.prompts = make(map[string]bool)
	s.order = make([]string, 0, len(convs))

	for _, c := range convs {
		if c.Messages == nil {
			c.Messages = []Message{}
		}
		s.convs[c.CounterpartID] = c
		s.order = append(s.order, c.CounterpartID)
	}

	s.snapshotLocked()
}

// Clear drops in-memory state and removes the persisted snapshot
// entirely (logout teardown).
func (s *Store) Clear() {
	s.mu.Lock()
	s.convs = make(map[string]*Conversation)
	s.prompts = make(map[string]bool)
	s.order = nil
	s.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.kv.Remove(ctx, kvstore.KeyConversations); err != nil {
			log.Printf("chat: failed to remove snapshot: %v", err)
		}
	}()
}

func (s *Store) moveToFrontLocked(counterpartID string) {
	for i, id := range s.order {
		if id == counterpartID {
			if i == 0 {
				return
			}
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append([]string{counterpartID}, s.order...)
}

// snapshotLocked persists the collection fire-and-forget; the caller
// holds the mutex
func (s *Store) snapshotLocked() {
	all := make([]*Conversation, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.convs[id])
	}

	raw, err := json.Marshal(all)
	if err != nil {
		log.Printf("chat: failed to marshal snapshot: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.kv.Save(ctx, kvstore.KeyConversations, raw); err != nil {
			log.Printf("chat: failed to save snapshot: %v", err)
		}
	}()
}

func copyConversation(c *Conversation) *Conversation {
	out := *c
	out.Messages = append([]Message(nil), c.Messages...)
	if c.TimerStarted != nil {
		started := *c.TimerStarted
		out.TimerStarted = &started
	}
	return &out
}
