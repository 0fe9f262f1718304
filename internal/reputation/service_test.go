// internal/reputation/service_test.go

package reputation

import (
	"context"
	"errors"
	"testing"

	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
	"github.com/aviato-app/aviato-backend/internal/users"
)

func TestRatingDelta(t *testing.T) {
	tests := []struct {
		name   string
		isGood bool
		reason string
		want   int
	}{
		{"good", true, "", 10},
		{"good ignores reason", true, "Spam messages", 10},
		{"ghosted", false, "No response / Ghosted", -15},
		{"rude", false, "Rude or disrespectful", -20},
		{"spam", false, "Spam messages", -25},
		{"inappropriate", false, "Inappropriate content", -30},
		{"one-word", false, "One-word answers", -10},
		{"unrecognized reason", false, "Just vibes", -10},
		{"empty reason", false, "", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatingDelta(tt.isGood, tt.reason); got != tt.want {
				t.Errorf("RatingDelta(%v, %q) = %d, want %d", tt.isGood, tt.reason, got, tt.want)
			}
		})
	}
}

func TestStarDelta(t *testing.T) {
	want := map[int]int{5: 10, 4: 5, 3: 0, 2: -5, 1: -10}
	for stars, delta := range want {
		if got := StarDelta(stars); got != delta {
			t.Errorf("StarDelta(%d) = %d, want %d", stars, got, delta)
		}
	}
}

func newTestService(t *testing.T) (Service, users.Repository) {
	t.Helper()
	repo := users.NewRepository(kvstore.NewMemoryStore())
	return NewService(repo), repo
}

func approvalOf(t *testing.T, repo users.Repository, id string) int {
	t.Helper()
	u, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID(%s): %v", id, err)
	}
	return u.ApprovalRating
}

func TestApplyRating(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	before := approvalOf(t, repo, "1")

	delta, err := svc.ApplyRating(ctx, "1", true, "")
	if err != nil {
		t.Fatalf("ApplyRating: %v", err)
	}
	if delta != 10 {
		t.Errorf("delta = %d, want 10", delta)
	}
	if got := approvalOf(t, repo, "1"); got != before+10 {
		t.Errorf("approval = %d, want %d", got, before+10)
	}

	delta, err = svc.ApplyRating(ctx, "1", false, "Spam messages")
	if err != nil {
		t.Fatalf("ApplyRating: %v", err)
	}
	if delta != -25 {
		t.Errorf("delta = %d, want -25", delta)
	}
	if got := approvalOf(t, repo, "1"); got != before+10-25 {
		t.Errorf("approval = %d, want %d", got, before+10-25)
	}
}

func TestApplyRatingUnknownTarget(t *testing.T) {
	svc, _ := newTestService(t)

	// Rating a vanished user degrades to a no-op, not an error
	delta, err := svc.ApplyRating(context.Background(), "nobody", false, "No response / Ghosted")
	if err != nil {
		t.Fatalf("ApplyRating unknown target: %v", err)
	}
	if delta != -15 {
		t.Errorf("delta = %d, want -15", delta)
	}
}

func TestSubmitReview(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	before := approvalOf(t, repo, "1")

	review, err := svc.SubmitReview(ctx, "1", "2", 5)
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if review.RaterID != "2" || review.Rating != 5 {
		t.Errorf("review = %+v", review)
	}
	if review.RaterName == "" {
		t.Error("review missing rater snapshot")
	}

	target, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if target.ReviewCount != 1 {
		t.Errorf("count = %d, want 1", target.ReviewCount)
	}
	if target.ReviewRating != 5.0 {
		t.Errorf("aggregate = %v, want 5.0", target.ReviewRating)
	}
	if target.ApprovalRating != before+10 {
		t.Errorf("approval = %d, want %d (five stars adds 10)", target.ApprovalRating, before+10)
	}
}

func TestSubmitReviewAggregate(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// 5, 4 and 3 stars from three distinct raters average to 4.0
	for rater, stars := range map[string]int{"2": 5, "3": 4, "4": 3} {
		if _, err := svc.SubmitReview(ctx, "1", rater, stars); err != nil {
			t.Fatalf("SubmitReview(%s, %d): %v", rater, stars, err)
		}
	}

	target, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if target.ReviewCount != 3 {
		t.Errorf("count = %d, want 3", target.ReviewCount)
	}
	if target.ReviewRating != 4.0 {
		t.Errorf("aggregate = %v, want 4.0", target.ReviewRating)
	}
}

func TestSubmitReviewRoundsToOneDecimal(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// 5 and 4 stars: mean 4.5 stays 4.5; adding a 5 gives 4.666... -> 4.7
	svc.SubmitReview(ctx, "1", "2", 5)
	svc.SubmitReview(ctx, "1", "3", 4)
	svc.SubmitReview(ctx, "1", "4", 5)

	target, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if target.ReviewRating != 4.7 {
		t.Errorf("aggregate = %v, want 4.7", target.ReviewRating)
	}
}

func TestSubmitReviewDuplicateRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SubmitReview(ctx, "1", "2", 4); err != nil {
		t.Fatalf("first review: %v", err)
	}

	_, err := svc.SubmitReview(ctx, "1", "2", 5)
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("second review err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestSubmitReviewInvalidStars(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, stars := range []int{0, -1, 6} {
		if _, err := svc.SubmitReview(ctx, "1", "2", stars); !errors.Is(err, ErrInvalidStars) {
			t.Errorf("SubmitReview stars=%d err = %v, want ErrInvalidStars", stars, err)
		}
	}
}

func TestSubmitReviewUnknownTarget(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SubmitReview(context.Background(), "nobody", "2", 4)
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
