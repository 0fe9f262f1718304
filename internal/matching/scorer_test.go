// internal/matching/scorer_test.go

package matching

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		query     []string
		candidate []string
		want      int
	}{
		{
			name:      "full overlap",
			query:     []string{"Hiking", "Coffee", "Jazz", "Yoga", "Travel"},
			candidate: []string{"Hiking", "Coffee", "Jazz", "Yoga", "Travel"},
			want:      100,
		},
		{
			name:      "partial overlap",
			query:     []string{"Hiking", "Coffee", "Jazz"},
			candidate: []string{"Coffee", "Jazz", "Wine"},
			want:      40,
		},
		{
			name:      "single shared tag",
			query:     []string{"Hiking"},
			candidate: []string{"Hiking", "Coffee"},
			want:      20,
		},
		{
			name:      "no overlap",
			query:     []string{"Hiking", "Coffee"},
			candidate: []string{"Wine", "Jazz"},
			want:      0,
		},
		{
			name:      "empty query",
			query:     nil,
			candidate: []string{"Hiking"},
			want:      0,
		},
		{
			name:      "empty candidate",
			query:     []string{"Hiking"},
			candidate: nil,
			want:      0,
		},
		{
			name:      "both empty",
			query:     nil,
			candidate: nil,
			want:      0,
		},
		{
			name:      "duplicates counted once",
			query:     []string{"Hiking", "Hiking", "Hiking"},
			candidate: []string{"Hiking"},
			want:      20,
		},
		{
			name:      "query smaller than denominator cannot reach 100",
			query:     []string{"Hiking", "Coffee"},
			candidate: []string{"Hiking", "Coffee"},
			want:      40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, tt.candidate); got != tt.want {
				t.Errorf("Score(%v, %v) = %d, want %d", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := []string{"Hiking", "Coffee", "Jazz", "Wine"}
	b := []string{"Coffee", "Wine", "Yoga"}

	if Score(a, b) != Score(b, a) {
		t.Errorf("Score not symmetric: %d vs %d", Score(a, b), Score(b, a))
	}
}
