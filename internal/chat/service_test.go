// internal/chat/service_test.go

package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
	"github.com/aviato-app/aviato-backend/internal/reputation"
	"github.com/aviato-app/aviato-backend/internal/users"
)

func newTestChatService(t *testing.T, autoReply AutoReplyConfig) (Service, users.Repository) {
	t.Helper()

	repo := users.NewRepository(kvstore.NewMemoryStore())
	userService := users.NewService(repo, users.NewLocalUploadService(t.TempDir(), ""))
	reputationService := reputation.NewService(repo)
	store := NewStore(kvstore.NewMemoryStore(), testWindow)

	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Shutdown)

	return NewService(store, userService, reputationService, hub, autoReply), repo
}

func TestSendMessageGatedByAvailability(t *testing.T) {
	svc, _ := newTestChatService(t, AutoReplyConfig{})
	ctx := context.Background()

	tests := []struct {
		name          string
		counterpartID string
		wantReason    string
	}{
		{"locked user", "5", "User is locked"},
		{"paused user", "8", "User is paused"},
		{"capped user at quota", "3", "Max contacts reached"},
		{"unknown user", "nobody", "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendMessage(ctx, "current-user", tt.counterpartID, "hello?")

			var unavailable *UnavailableError
			if !errors.As(err, &unavailable) {
				t.Fatalf("err = %v, want UnavailableError", err)
			}
			if unavailable.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", unavailable.Reason, tt.wantReason)
			}
		})
	}
}

func TestSendMessageToReachableUser(t *testing.T) {
	svc, _ := newTestChatService(t, AutoReplyConfig{})
	ctx := context.Background()

	conv, err := svc.SendMessage(ctx, "current-user", "1", "hey Asuab")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(conv.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(conv.Messages))
	}
	if conv.TimerStarted == nil {
		t.Error("first send did not open a window")
	}

	// A delayed-mode user is reachable; the delay is advisory only
	if _, err := svc.SendMessage(ctx, "current-user", "2", "hi Sussie"); err != nil {
		t.Errorf("send to delayed-mode user: %v", err)
	}
}

func TestAutoReply(t *testing.T) {
	svc, _ := newTestChatService(t, AutoReplyConfig{
		UserID: "1",
		Text:   "k",
		Delay:  10 * time.Millisecond,
	})
	ctx := context.Background()

	if _, err := svc.SendMessage(ctx, "current-user", "1", "you there?"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		conv, err := svc.GetConversation(ctx, "1")
		if err != nil {
			t.Fatalf("GetConversation: %v", err)
		}
		if len(conv.Messages) == 2 {
			reply := conv.Messages[1]
			if reply.SenderID != "1" || reply.Text != "k" {
				t.Fatalf("reply = %+v", reply)
			}
			return
		}

		select {
		case <-deadline:
			t.Fatal("auto-reply never arrived")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestAutoReplyOnlyForConfiguredUser(t *testing.T) {
	svc, _ := newTestChatService(t, AutoReplyConfig{
		UserID: "1",
		Text:   "k",
		Delay:  10 * time.Millisecond,
	})
	ctx := context.Background()

	if _, err := svc.SendMessage(ctx, "current-user", "6", "hi John"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	conv, err := svc.GetConversation(ctx, "6")
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if len(conv.Messages) != 1 {
		t.Errorf("unexpected reply from non-configured user: %+v", conv.Messages)
	}
}

func TestRateAppliesApprovalDelta(t *testing.T) {
	svc, repo := newTestChatService(t, AutoReplyConfig{})
	ctx := context.Background()

	before, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if _, err := svc.SendMessage(ctx, "current-user", "1", "hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	delta, err := svc.Rate(ctx, "1", false, "No response / Ghosted")
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if delta != -15 {
		t.Errorf("delta = %d, want -15", delta)
	}

	after, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.ApprovalRating != before.ApprovalRating-15 {
		t.Errorf("approval = %d, want %d", after.ApprovalRating, before.ApprovalRating-15)
	}

	conv, err := svc.GetConversation(ctx, "1")
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if !conv.Rated || conv.RatingType != "bad" || conv.RatingReason != "No response / Ghosted" {
		t.Errorf("conversation rating state = %v/%q/%q", conv.Rated, conv.RatingType, conv.RatingReason)
	}
}

func TestRateUnknownConversationIsNoOp(t *testing.T) {
	svc, repo := newTestChatService(t, AutoReplyConfig{})
	ctx := context.Background()

	before, _ := repo.GetByID(ctx, "1")

	delta, err := svc.Rate(ctx, "1", false, "Spam messages")
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if delta != 0 {
		t.Errorf("delta = %d, want 0 for missing conversation", delta)
	}

	after, _ := repo.GetByID(ctx, "1")
	if after.ApprovalRating != before.ApprovalRating {
		t.Error("rating a missing conversation changed approval")
	}
}

func TestEnsureConversationUnknownUser(t *testing.T) {
	svc, _ := newTestChatService(t, AutoReplyConfig{})

	_, err := svc.EnsureConversation(context.Background(), "nobody")
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestWindowEndToEnd(t *testing.T) {
	repo := users.NewRepository(kvstore.NewMemoryStore())
	userService := users.NewService(repo, users.NewLocalUploadService(t.TempDir(), ""))
	reputationService := reputation.NewService(repo)
	store := NewStore(kvstore.NewMemoryStore(), testWindow)

	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	svc := NewService(store, userService, reputationService, hub, AutoReplyConfig{})
	ctx := context.Background()

	start := time.Now()
	if _, err := svc.SendMessage(ctx, "current-user", "9", "hi Sofia"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	status := store.Window("9", start)
	if status.State != WindowRunning {
		t.Fatalf("state = %s, want running", status.State)
	}

	// Past the deadline the window expires and prompts once
	status = store.Window("9", start.Add(testWindow+time.Second))
	if status.State != WindowExpiredUnrated || !status.PromptRating {
		t.Fatalf("at expiry: state=%s prompt=%v", status.State, status.PromptRating)
	}

	delta, err := svc.Rate(ctx, "9", false, "No response / Ghosted")
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if delta != -15 {
		t.Errorf("delta = %d, want -15", delta)
	}

	status = store.Window("9", start.Add(testWindow+time.Minute))
	if status.State != WindowRated || status.RemainingMS != 0 {
		t.Errorf("after rating: state=%s remaining=%d", status.State, status.RemainingMS)
	}
}
