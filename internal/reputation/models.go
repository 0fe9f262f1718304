// internal/reputation/models.go

package reputation

// Approval delta applied for a positive chat rating
const GoodRatingDelta = 10

// DefaultPenalty applies when a negative rating carries no recognized reason
const DefaultPenalty = -10

// Recognized negative-rating reasons and their penalties
var Penalties = map[string]int{
	"No response / Ghosted": -15,
	"Rude or disrespectful": -20,
	"Spam messages":         -25,
	"Inappropriate content": -30,
	"One-word answers":      -10,
}

// Star-keyed approval deltas applied alongside a review
var starDeltas = map[int]int{
	5: 10,
	4: 5,
	3: 0,
	2: -5,
	1: -10,
}

// RatingDelta returns the approval change for a chat rating
func RatingDelta(isGood bool, reason string) int {
	if isGood {
		return GoodRatingDelta
	}
	if penalty, ok := Penalties[reason]; ok {
		return penalty
	}
	return DefaultPenalty
}

// StarDelta returns the approval change for a star review
func StarDelta(stars int) int {
	return starDeltas[stars]
}

// SubmitReviewRequest is the review submission payload
type SubmitReviewRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}
