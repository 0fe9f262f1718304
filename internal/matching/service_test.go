// internal/matching/service_test.go

package matching

import (
	"context"
	"errors"
	"testing"

	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
	"github.com/aviato-app/aviato-backend/internal/users"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	repo := users.NewRepository(kvstore.NewMemoryStore())
	return NewService(repo, 5)
}

func TestSelectionsLifecycle(t *testing.T) {
	svc := newTestService(t)
	const uid = "current-user"

	if got := svc.GetSelections(uid); len(got) != 0 {
		t.Fatalf("fresh session has selections: %v", got)
	}

	sel, err := svc.AddSelection(uid, "Hiking")
	if err != nil {
		t.Fatalf("AddSelection: %v", err)
	}
	if len(sel) != 1 || sel[0] != "Hiking" {
		t.Errorf("selections = %v", sel)
	}

	// Adding an existing item is ignored
	sel, err = svc.AddSelection(uid, "Hiking")
	if err != nil {
		t.Fatalf("duplicate AddSelection: %v", err)
	}
	if len(sel) != 1 {
		t.Errorf("duplicate add changed selections: %v", sel)
	}

	sel = svc.RemoveSelection(uid, "Hiking")
	if len(sel) != 0 {
		t.Errorf("selections after remove = %v", sel)
	}
}

func TestSelectionsCap(t *testing.T) {
	svc := newTestService(t)
	const uid = "current-user"

	full := []string{"a", "b", "c", "d", "e"}
	if _, err := svc.SetSelections(uid, full); err != nil {
		t.Fatalf("SetSelections at cap: %v", err)
	}

	if _, err := svc.AddSelection(uid, "f"); !errors.Is(err, ErrTooManySelections) {
		t.Errorf("AddSelection over cap err = %v, want ErrTooManySelections", err)
	}

	if _, err := svc.SetSelections(uid, append(full, "f")); !errors.Is(err, ErrTooManySelections) {
		t.Errorf("SetSelections over cap err = %v, want ErrTooManySelections", err)
	}

	svc.ClearSelections(uid)
	if got := svc.GetSelections(uid); len(got) != 0 {
		t.Errorf("selections after clear = %v", got)
	}
}

func TestFindMatchesRanksDescending(t *testing.T) {
	svc := newTestService(t)
	const uid = "current-user"

	if _, err := svc.SetSelections(uid, []string{"Hiking", "Coffee", "Live music", "Art galleries", "Cooking"}); err != nil {
		t.Fatalf("SetSelections: %v", err)
	}

	matches, err := svc.FindMatches(context.Background(), uid)
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no candidates returned")
	}

	for i := 1; i < len(matches); i++ {
		if matches[i].MatchPercentage > matches[i-1].MatchPercentage {
			t.Errorf("matches not sorted at %d: %d%% after %d%%",
				i, matches[i].MatchPercentage, matches[i-1].MatchPercentage)
		}
	}
}

func TestFindMatchesEmptySelections(t *testing.T) {
	svc := newTestService(t)

	matches, err := svc.FindMatches(context.Background(), "current-user")
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}

	for _, m := range matches {
		if m.MatchPercentage != 0 {
			t.Errorf("user %s scored %d%% with no selections", m.ID, m.MatchPercentage)
		}
	}
}
