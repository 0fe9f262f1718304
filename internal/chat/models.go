// internal/chat/models.go

package chat

import "time"

// Message is a single chat message. Immutable once appended except for
// the Seen flag, which flips when the counterpart replies.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Seen      bool      `json:"seen"`
}

// Conversation is the message history with one counterpart. At most one
// conversation exists per counterpart.
type Conversation struct {
	ID            string    `json:"id"`
	CounterpartID string    `json:"counterpart_id"`
	Messages      []Message `json:"messages"`

	// Response window. TimerStarted is non-nil exactly while a window is
	// open or has expired unrated; Rated records that the current
	// window's outcome was submitted.
	TimerStarted *time.Time `json:"timer_started,omitempty"`
	Rated        bool       `json:"rated"`
	RatingType   string     `json:"rating_type,omitempty"`
	RatingReason string     `json:"rating_reason,omitempty"`

	// Denormalized preview of the most recent message, written only by
	// the append path so it cannot drift from Messages
	LastMessage         string    `json:"last_message"`
	LastMessageTime     time.Time `json:"last_message_time"`
	LastMessageSenderID string    `json:"last_message_sender_id,omitempty"`

	WaitingForResponse bool `json:"waiting_for_response"`
	TheyRespondedLast  bool `json:"they_responded_last"`
}

// WindowState is the response-window lifecycle state
type WindowState string

const (
	WindowIdle           WindowState = "idle"
	WindowRunning        WindowState = "running"
	WindowExpiredUnrated WindowState = "expired_unrated"
	WindowRated          WindowState = "rated"
)

// WindowStatus is the evaluated response-window position at a point in
// time. PromptRating is true exactly once per expiry.
type WindowStatus struct {
	State        WindowState   `json:"state"`
	RemainingMS  int64         `json:"remaining_ms"`
	DurationMS   int64         `json:"duration_ms"`
	PromptRating bool          `json:"prompt_rating"`
	Remaining    time.Duration `json:"-"`
}

// SendMessageRequest is the outbound message payload
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// ReceiveMessageRequest simulates an inbound message from the counterpart
type ReceiveMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// RateConversationRequest records the outcome of an expired window
type RateConversationRequest struct {
	IsGood bool   `json:"is_good"`
	Reason string `json:"reason,omitempty" validate:"max=100"`
}
