// internal/chat/service.go

package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aviato-app/aviato-backend/internal/users"
)

var ErrConversationMissing = errors.New("conversation not found")

// UnavailableError is returned when a message is sent to a user whose
// availability mode blocks incoming contact.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("user unavailable: %s", e.Reason)
}

// Service is the chat API surface: conversations, the response window
// and the rating flow that closes it.
type Service interface {
	EnsureConversation(ctx context.Context, counterpartID string) (*Conversation, error)
	ListConversations(ctx context.Context) []*Conversation
	GetConversation(ctx context.Context, counterpartID string) (*Conversation, error)
	SendMessage(ctx context.Context, senderID, counterpartID, text string) (*Conversation, error)
	ReceiveMessage(ctx context.Context, counterpartID, text string) (*Conversation, error)
	Window(ctx context.Context, counterpartID string) WindowStatus
	Rate(ctx context.Context, counterpartID string, isGood bool, reason string) (int, error)
	DeleteAll(ctx context.Context)
	StartSession(ctx context.Context, localUserID string)
	EndSession(ctx context.Context)
}

// RatingApplier applies an approval delta to the rated user.
// Satisfied by the reputation service.
type RatingApplier interface {
	ApplyRating(ctx context.Context, targetID string, isGood bool, reason string) (int, error)
}

type AutoReplyConfig struct {
	UserID string
	Text   string
	Delay  time.Duration
}

type service struct {
	store      *Store
	users      users.Service
	reputation RatingApplier
	hub        *Hub
	autoReply  AutoReplyConfig
}

func NewService(store *Store, userService users.Service, reputation RatingApplier, hub *Hub, autoReply AutoReplyConfig) Service {
	return &service{
		store:      store,
		users:      userService,
		reputation: reputation,
		hub:        hub,
		autoReply:  autoReply,
	}
}

// EnsureConversation creates an empty conversation with the given user
// if none exists yet. Opening a chat never starts the response window.
func (s *service) EnsureConversation(ctx context.Context, counterpartID string) (*Conversation, error) {
	if _, err := s.users.GetUser(ctx, counterpartID); err != nil {
		return nil, err
	}
	return s.store.Ensure(counterpartID), nil
}

func (s *service) ListConversations(ctx context.Context) []*Conversation {
	return s.store.List()
}

func (s *service) GetConversation(ctx context.Context, counterpartID string) (*Conversation, error) {
	conv, err := s.store.Get(counterpartID)
	if err != nil {
		return nil, ErrConversationMissing
	}
	return conv, nil
}

// SendMessage appends an outgoing message after checking that the
// counterpart's availability mode allows contact. A send into a lapsed
// window opens a fresh one; a send into a running window leaves the
// deadline alone.
func (s *service) SendMessage(ctx context.Context, senderID, counterpartID, text string) (*Conversation, error) {
	now := time.Now()

	verdict := s.users.CheckAvailability(ctx, counterpartID, now)
	if !verdict.Available {
		return nil, &UnavailableError{Reason: verdict.Reason}
	}

	s.store.Ensure(counterpartID)

	conv, err := s.store.Send(counterpartID, senderID, text, now)
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(NewEvent(EventConversationUpdated, conv))

	if counterpartID == s.autoReply.UserID {
		s.scheduleAutoReply(counterpartID)
	}

	return conv, nil
}

// ReceiveMessage records an incoming message from the counterpart.
// Incoming traffic never touches the response window.
func (s *service) ReceiveMessage(ctx context.Context, counterpartID, text string) (*Conversation, error) {
	conv, err := s.store.Receive(counterpartID, text, time.Now())
	if err != nil {
		return nil, ErrConversationMissing
	}

	s.hub.Broadcast(NewEvent(EventMessage, conv))

	return conv, nil
}

func (s *service) Window(ctx context.Context, counterpartID string) WindowStatus {
	return s.store.Window(counterpartID, time.Now())
}

// Rate applies the approval delta for the chosen rating, then marks
// the conversation rated so the window stays closed until the next
// outgoing message. Rating an unknown conversation is a no-op.
func (s *service) Rate(ctx context.Context, counterpartID string, isGood bool, reason string) (int, error) {
	if _, err := s.store.Get(counterpartID); err != nil {
		return 0, nil
	}

	delta, err := s.reputation.ApplyRating(ctx, counterpartID, isGood, reason)
	if err != nil {
		return 0, err
	}

	s.store.MarkRated(counterpartID, isGood, reason)

	if conv, err := s.store.Get(counterpartID); err == nil {
		s.hub.Broadcast(NewEvent(EventConversationUpdated, conv))
	}

	return delta, nil
}

func (s *service) DeleteAll(ctx context.Context) {
	s.store.DeleteAll()
}

// StartSession installs the starter conversations for a fresh login.
func (s *service) StartSession(ctx context.Context, localUserID string) {
	s.store.Replace(SeedConversations(localUserID, time.Now()))
}

// EndSession drops in-memory conversation state and the persisted
// snapshot. User profiles are untouched.
func (s *service) EndSession(ctx context.Context) {
	s.store.Clear()
}

func (s *service) scheduleAutoReply(counterpartID string) {
	text := s.autoReply.Text
	delay := s.autoReply.Delay

	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := s.ReceiveMessage(ctx, counterpartID, text); err != nil {
			log.Printf("Auto-reply for conversation %s failed: %v", counterpartID, err)
		}
	})
}
