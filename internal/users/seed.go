// internal/users/seed.go
// Seed members used when no persisted snapshot exists

package users

import (
	"time"

	"github.com/aviato-app/aviato-backend/internal/availability"
)

// Interests is the selectable interest catalog
var Interests = []string{
	"Metal Gear 1", "Metal Gear 2", "Metal Gear 3", "Metal Gear 4", "Metal Gear 5",
	"Zelda", "Mario", "Pokemon", "Final Fantasy", "Sonic",
	"Resident Evil", "Silent Hill", "Call of Duty", "FIFA", "GTA",
	"Coding", "Music", "Gaming", "Sports", "Travel",
	"Art", "Design", "Photography", "Reading", "Writing",
	"Coffee", "Nightlife", "Beach", "Hiking", "Cooking",
	"Fitness", "Yoga", "Dancing", "Singing", "Drawing",
	"Anime", "Movies", "TV Shows", "Cosplay", "Japanese Culture",
	"Fashion", "Food", "Wine", "Beer", "Technology",
}

// SeedUsers returns the default member roster. Used on first start and
// whenever the persisted snapshot is absent or unreadable.
func SeedUsers() []*User {
	capped := func(max, current int) *availability.Settings {
		s, _ := availability.NewCapped(max, current)
		return s
	}
	timed := func(hour, minute int) *availability.Settings {
		s, _ := availability.NewTimed(hour, minute)
		return s
	}

	return []*User{
		{
			ID: "1", Name: "Asuab", Location: "Los Angeles", Vibe: "Vibe coder",
			ProfilePic: "https://i.pravatar.cc/150?u=1",
			Selections: []string{"Metal Gear 1", "Metal Gear 2", "Zelda", "Mario", "Pokemon"},
			ApprovalRating: 54, ReviewRating: 4.5, ReviewCount: 12, Reviews: []Review{},
			Availability: availability.NewOnline(),
		},
		{
			ID: "2", Name: "Sussie", Location: "Miami", Vibe: "Vibe coder",
			ProfilePic: "https://i.pravatar.cc/150?u=2",
			Selections: []string{"Metal Gear 1", "Metal Gear 2", "Metal Gear 3", "Final Fantasy", "Sonic"},
			ApprovalRating: 89, ReviewRating: 4.8, ReviewCount: 25, Reviews: []Review{},
			Availability: availability.NewDelayed(120, nil),
		},
		{
			ID: "3", Name: "Katie", Location: "Charlotte", Vibe: "Gamer",
			ProfilePic: "https://i.pravatar.cc/150?u=3",
			Selections: []string{"Resident Evil", "Silent Hill", "Metal Gear 3", "Pokemon", "Zelda"},
			ApprovalRating: 99, ReviewRating: 4.9, ReviewCount: 45, Reviews: []Review{},
			Availability: capped(3, 3),
		},
		{
			ID: "4", Name: "Sadie", Location: "Sofia", Vibe: "Designer",
			ProfilePic: "https://i.pravatar.cc/150?u=4",
			Selections: []string{"Art", "Design", "Photography", "Travel", "Music"},
			ApprovalRating: 75, ReviewRating: 4.3, ReviewCount: 18, Reviews: []Review{},
			Availability: availability.NewScheduled(time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)),
		},
		{
			ID: "5", Name: "Billie", Location: "Kiev", Vibe: "Developer",
			ProfilePic: "https://i.pravatar.cc/150?u=5",
			Selections: []string{"Coding", "Music", "Gaming", "Sports", "Travel"},
			ApprovalRating: 10, ReviewRating: 2.1, ReviewCount: 8, Reviews: []Review{},
			Availability: availability.NewLocked(),
		},
		{
			ID: "6", Name: "John", Location: "New York", Vibe: "Photographer",
			ProfilePic: "https://i.pravatar.cc/150?u=6",
			Selections: []string{"Photography", "Art", "Travel", "Music", "Design"},
			ApprovalRating: 120, ReviewRating: 4.9, ReviewCount: 67, Reviews: []Review{},
			Availability: availability.NewOnline(),
		},
		{
			ID: "7", Name: "Emma", Location: "London", Vibe: "Writer",
			ProfilePic: "https://i.pravatar.cc/150?u=7",
			Selections: []string{"Writing", "Reading", "Coffee", "Music", "Travel"},
			ApprovalRating: 85, ReviewRating: 4.6, ReviewCount: 32, Reviews: []Review{},
			Availability: timed(21, 0),
		},
		{
			ID: "8", Name: "Marcus", Location: "Berlin", Vibe: "DJ",
			ProfilePic: "https://i.pravatar.cc/150?u=8",
			Selections: []string{"Music", "DJing", "Nightlife", "Travel", "Art"},
			ApprovalRating: 45, ReviewRating: 3.2, ReviewCount: 15, Reviews: []Review{},
			Availability: availability.NewPaused(),
		},
		{
			ID: "9", Name: "Sofia", Location: "Tokyo", Vibe: "Anime Fan",
			ProfilePic: "https://i.pravatar.cc/150?u=9",
			Selections: []string{"Anime", "Gaming", "Cosplay", "Art", "Japanese Culture"},
			ApprovalRating: 95, ReviewRating: 4.7, ReviewCount: 28, Reviews: []Review{},
			Availability: availability.NewDelayed(45, nil),
		},
		{
			ID: "10", Name: "David", Location: "Sydney", Vibe: "Surfer",
			ProfilePic: "https://i.pravatar.cc/150?u=10",
			Selections: []string{"Surfing", "Beach", "Travel", "Photography", "Nature"},
			ApprovalRating: -15, ReviewRating: 1.8, ReviewCount: 22, Reviews: []Review{},
			Availability: availability.NewScheduled(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)),
		},
	}
}
