// Package reaction models the like and favorite toggles shown on an artwork.
//
// Both follow one pattern: the toggle flips locally before the request is
// sent, flips back if the request fails, and takes the server's numbers when
// it succeeds.
package reaction

import "context"

// Toggle is the state of one per-artwork toggle. Count is the shared counter
// (likes); it stays zero for toggles without one, such as favorites.
type Toggle struct {
	Active bool
	Count  int
}

// Apply flips the toggle and returns the state it replaced.
func (t *Toggle) Apply() Toggle {
	prev := *t
	t.Active = !t.Active
	if t.Active {
		t.Count++
	} else if t.Count > 0 {
		t.Count--
	}
	return prev
}

// Rollback restores the state returned by Apply.
func (t *Toggle) Rollback(prev Toggle) {
	*t = prev
}

// Commit replaces the locally computed count with the one the server returned.
func (t *Toggle) Commit(count int) {
	if count < 0 {
		count = 0
	}
	t.Count = count
}

// Run applies the toggle, calls send with the new active state and either
// commits the returned count or rolls back. send returns the server count;
// callers without a counter return the current t.Count.
func (t *Toggle) Run(ctx context.Context, send func(ctx context.Context, active bool) (int, error)) error {
	prev := t.Apply()
	count, err := send(ctx, t.Active)
	if err != nil {
		t.Rollback(prev)
		return err
	}
	t.Commit(count)
	return nil
}
