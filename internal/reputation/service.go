// internal/reputation/service.go
// Approval-score and star-review ledger

package reputation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aviato-app/aviato-backend/internal/users"
)

var (
	ErrAlreadyReviewed = errors.New("you have already reviewed this user")
	ErrInvalidStars    = errors.New("rating must be between 1 and 5 stars")
)

type Service interface {
	// ApplyRating adds the rating delta to the target's approval score
	// and returns the applied delta. Unknown targets are a no-op.
	ApplyRating(ctx context.Context, targetID string, isGood bool, reason string) (int, error)

	// SubmitReview appends a one-time star review and recomputes the
	// target's review aggregate. A second review by the same rater for
	// the same target is rejected.
	SubmitReview(ctx context.Context, targetID, raterID string, stars int) (*users.Review, error)

	GetReviews(ctx context.Context, targetID string) ([]users.Review, error)
}

type service struct {
	repo users.Repository
}

func NewService(repo users.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ApplyRating(ctx context.Context, targetID string, isGood bool, reason string) (int, error) {
	delta := RatingDelta(isGood, reason)

	_, err := s.repo.Update(ctx, targetID, func(u *users.User) error {
		u.ApprovalRating += delta
		return nil
	})
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			// Rating an unknown user degrades to "nothing happened"
			return delta, nil
		}
		return 0, err
	}

	recordRating(isGood)
	return delta, nil
}

func (s *service) SubmitReview(ctx context.Context, targetID, raterID string, stars int) (*users.Review, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}

	rater, err := s.repo.GetByID(ctx, raterID)
	if err != nil {
		return nil, fmt.Errorf("rater lookup failed: %w", err)
	}

	review := users.Review{
		RaterID:         rater.ID,
		RaterName:       rater.Name,
		RaterProfilePic: rater.ProfilePic,
		Rating:          stars,
		Timestamp:       time.Now(),
	}

	_, err = s.repo.Update(ctx, targetID, func(u *users.User) error {
		for _, existing := range u.Reviews {
			if existing.RaterID == raterID {
				return ErrAlreadyReviewed
			}
		}

		u.Reviews = append(u.Reviews, review)

		// Recompute the aggregate from all reviews
		total := 0
		for _, r := range u.Reviews {
			total += r.Rating
		}
		mean := float64(total) / float64(len(u.Reviews))
		u.ReviewRating = math.Round(mean*10) / 10
		u.ReviewCount = len(u.Reviews)

		u.ApprovalRating += StarDelta(stars)
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordReview(stars)
	return &review, nil
}

func (s *service) GetReviews(ctx context.Context, targetID string) ([]users.Review, error) {
	user, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return user.Reviews, nil
}
