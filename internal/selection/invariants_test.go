package selection

import (
	"math/rand/v2"
	"testing"

	"typeahead/internal/domain"
)

var queries = []string{"", "a", "ap", "an", "ch", "e", "zz", "berry", "appel", "rr"}

func widePool() []domain.Item {
	return []domain.Item{
		domain.MustItem("apple", "", "Apple", "Red fruit"),
		domain.MustItem("banana", "", "Banana", "", "yellow"),
		domain.MustItem("cherry", "", "Cherry", "Red fruit"),
		domain.MustItem("blackberry", "", "Blackberry", ""),
		domain.MustItem("grape", "", "Grape", "", "vine"),
		domain.MustItem("pineapple", "", "Pineapple", ""),
		domain.MustItem("raspberry", "", "Raspberry", ""),
	}
}

// step applies one random event. It reports whether the event was given the pool,
// since only those events can bring a highlight back in line after a pool swap.
func step(r *rand.Rand, s State, pool []domain.Item) (State, bool) {
	sawPool := true
	switch r.IntN(8) {
	case 0:
		s, _ = s.TextChanged(queries[r.IntN(len(queries))])
		sawPool = false
	case 1:
		s, _ = s.KeyPressed(KeyArrowUp, pool)
	case 2:
		s, _ = s.KeyPressed(KeyArrowDown, pool)
	case 3:
		s, _ = s.KeyPressed(KeyEnter, pool)
	case 4:
		s, _ = s.KeyPressed(KeyBackspace, pool)
	case 5:
		s, _ = s.ItemPicked(pool[r.IntN(len(pool))].ID(), pool)
	case 6:
		if r.IntN(2) == 0 {
			s, _ = s.Focus()
		} else {
			s, _ = s.Blur()
		}
		sawPool = false
	case 7:
		s, _ = s.RemoveItem(pool[r.IntN(len(pool))].ID())
		sawPool = false
	}
	return s, sawPool
}

func checkInvariants(t *testing.T, s State, pool []domain.Item, checkHighlight bool) {
	t.Helper()
	opts := s.Options()

	if s.SelectedCount() > opts.MaxItems {
		t.Fatalf("selected %d items, max is %d", s.SelectedCount(), opts.MaxItems)
	}

	seen := map[string]bool{}
	for _, id := range s.SelectedIDs() {
		if seen[id] {
			t.Fatalf("duplicate selected id %q in %v", id, s.SelectedIDs())
		}
		seen[id] = true
	}

	box := s.Box(pool)
	if len(box) > opts.BoxLength {
		t.Fatalf("box has %d rows, limit is %d", len(box), opts.BoxLength)
	}
	for _, it := range box {
		if seen[it.ID()] {
			t.Fatalf("box offers selected item %q", it.ID())
		}
	}

	if !checkHighlight {
		return
	}
	floor := opts.HighlightReset.floor()
	if s.Highlight() < floor {
		t.Fatalf("highlight %d below floor %d", s.Highlight(), floor)
	}
	if s.Highlight() > floor && s.Highlight() >= len(box) {
		t.Fatalf("highlight %d outside box of %d rows", s.Highlight(), len(box))
	}
}

func TestInvariantsHoldOverRandomEvents(t *testing.T) {
	variants := []struct {
		name string
		opts func() Options
	}{
		{"Defaults", func() Options { return testOptions(3, 4) }},
		{"SingleSlot", func() Options { return testOptions(1, 2) }},
		{"HighlightFirst", func() Options {
			o := testOptions(2, 3)
			o.HighlightReset = HighlightFirst
			return o
		}},
		{"InlineQuery", func() Options {
			o := testOptions(4, 5)
			o.CommitBox = CommitBoxEmpty
			o.BackspaceRemove = RemoveInIdleOnly
			o.SwallowEnterAfterCommit = false
			return o
		}},
	}

	full := widePool()
	small := full[2:5]
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 25; seed++ {
				r := rand.New(rand.NewPCG(seed, seed*7919))
				s, err := New(v.opts(), nil, full)
				if err != nil {
					t.Fatalf("New returned error: %v", err)
				}
				for i := 0; i < 300; i++ {
					pool := full
					if (i/50)%2 == 1 {
						pool = small
					}
					var sawPool bool
					s, sawPool = step(r, s, pool)
					checkInvariants(t, s, pool, sawPool)
				}
			}
		})
	}
}

func TestBlurIdempotentOverRandomStates(t *testing.T) {
	pool := widePool()
	r := rand.New(rand.NewPCG(42, 99))
	s, err := New(testOptions(3, 4), nil, pool)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for i := 0; i < 500; i++ {
		s, _ = step(r, s, pool)
		once, _ := s.Blur()
		twice, _ := once.Blur()
		if !once.Equal(twice) {
			t.Fatalf("blur not idempotent after %d events", i)
		}
	}
}
