// internal/chat/seed.go
// Seed conversation history installed when a session starts

package chat

import (
	"time"

	"github.com/google/uuid"
)

// SeedConversations returns the default chat history for a fresh
// session. Timestamps are laid out relative to now so the activity
// ordering and previews look lived-in.
func SeedConversations(localUserID string, now time.Time) []*Conversation {
	hour := time.Hour
	day := 24 * time.Hour

	build := func(counterpartID string, msgs []Message) *Conversation {
		last := msgs[len(msgs)-1]

		conv := &Conversation{
			ID:                  uuid.NewString(),
			CounterpartID:       counterpartID,
			Messages:            msgs,
			LastMessage:         last.Text,
			LastMessageTime:     last.Timestamp,
			LastMessageSenderID: last.SenderID,
			WaitingForResponse:  last.SenderID == localUserID,
			TheyRespondedLast:   last.SenderID == counterpartID,
		}
		if last.SenderID == localUserID {
			conv.LastMessage = "You: " + last.Text
		}
		return conv
	}

	msg := func(senderID, text string, at time.Time, read bool) Message {
		return Message{
			ID:        uuid.NewString(),
			SenderID:  senderID,
			Text:      text,
			Timestamp: at,
			Read:      read,
		}
	}

	return []*Conversation{
		build("1", []Message{
			msg("1", "Hey! How's it going?", now.Add(-150*time.Minute-10*time.Minute), true),
			msg(localUserID, "Pretty good! Just working on some projects", now.Add(-150*time.Minute-5*time.Minute), true),
			msg("1", "Nice! What kind of projects?", now.Add(-150*time.Minute-3*time.Minute), true),
			msg(localUserID, "Building a new app, it's been fun", now.Add(-150*time.Minute-time.Minute), true),
			msg("1", "That's awesome! Would love to hear more about it", now.Add(-150*time.Minute), true),
			msg(localUserID, "I'll show you the prototype soon", now.Add(-6*time.Minute), true),
			msg("1", "Hey, how are you doing?", now, false),
		}),
		build("2", []Message{
			msg("2", "Hi there! Nice vibe.", now.Add(-6*hour), true),
			msg(localUserID, "Thanks! You too.", now.Add(-348*time.Minute), true),
			msg("2", "Do you like hiking?", now.Add(-330*time.Minute), true),
			msg(localUserID, "Love it. Going this weekend actually.", now.Add(-312*time.Minute), true),
			msg("2", "Thanks for the recommendation!", now.Add(-306*time.Minute), true),
		}),
		build("6", []Message{
			msg("6", "Yo, nice photos.", now.Add(-24*hour), true),
			msg(localUserID, "Appreciate it man. You shoot too?", now.Add(-1410*time.Minute), true),
			msg("6", "Yeah, mostly street photography.", now.Add(-23*hour), true),
			msg(localUserID, "See you later", now.Add(-330*time.Minute), true),
		}),
		build("5", []Message{
			msg("5", "Catch up soon!", now.Add(-3*day), true),
		}),
	}
}
