// internal/users/models.go

package users

import (
	"time"

	"github.com/aviato-app/aviato-backend/internal/availability"
)

// User represents a member of the app
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Location     string  `json:"location"`
	Vibe         string  `json:"vibe"`
	ProfilePic   string  `json:"profile_pic"`
	PasswordHash string  `json:"-"`

	// Interest tags; display order preserved, order irrelevant for matching
	Selections []string `json:"selections"`

	// Reputation. ApprovalRating is unbounded and may go negative.
	// ReviewRating and ReviewCount are derived from Reviews.
	ApprovalRating int      `json:"approval_rating"`
	ReviewRating   float64  `json:"review_rating"`
	ReviewCount    int      `json:"review_count"`
	Reviews        []Review `json:"reviews"`

	// Reachability; nil means the invisible/neutral default
	Availability *availability.Settings `json:"availability,omitempty"`
}

// Review is a one-time 1-5 star rating by one user of another.
// Rater name and picture are snapshots taken at submission time.
type Review struct {
	RaterID         string    `json:"rater_id"`
	RaterName       string    `json:"rater_name"`
	RaterProfilePic string    `json:"rater_profile_pic"`
	Rating          int       `json:"rating"`
	Timestamp       time.Time `json:"timestamp"`
}

// ProfilePatch carries an arbitrary-field profile update; nil fields
// are left untouched
type ProfilePatch struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ProfilePic *string `json:"profile_pic,omitempty" validate:"omitempty,url"`
	Location   *string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// MatchedUser is a user annotated with a compatibility percentage
type MatchedUser struct {
	*User
	MatchPercentage int `json:"match_percentage"`
}
