package listing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/artshowcase/showcase/internal/model"
)

// FetchFunc loads the server-filtered collection for f.
type FetchFunc func(ctx context.Context, f Filter) ([]model.Artwork, error)

// Controller keeps the state of one listing screen across user edits.
//
// Search and category edits restart a debounce window; only the last edit in
// the window fetches. Each fetch gets a sequence number and cancels the one
// before it, and a response whose number is not the latest is dropped, so a
// slow early request can never overwrite a newer result.
type Controller struct {
	fetch    FetchFunc
	opts     Options
	onChange func(View)
	baseCtx  context.Context

	mu      sync.Mutex
	state   State
	items   []model.Artwork
	loading bool
	err     error
	timer   *time.Timer
	gen     uint64 // bumped by every schedule; stale timers compare against it
	seq     uint64 // bumped by every fetch; stale responses compare against it
	cancel  context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
}

// NewController starts a controller and schedules the initial fetch.
// onChange (may be nil) is called with a fresh View after every change; it
// runs on the goroutine that caused the change and must not call back into
// the controller's setters synchronously.
func NewController(ctx context.Context, fetch FetchFunc, opts Options, onChange func(View)) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	c := &Controller{
		fetch:    fetch,
		opts:     opts,
		onChange: onChange,
		baseCtx:  ctx,
		state:    NewState(),
		loading:  true,
	}

	c.mu.Lock()
	c.scheduleLocked()
	c.mu.Unlock()

	return c
}

// View returns the current refined view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	v := Refine(c.items, c.state, c.opts)
	v.Loading = c.loading
	v.Err = c.err
	return v
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SetSearch(q string) {
	c.update(func(s *State) bool { return s.SetSearch(q) })
}

func (c *Controller) SetCategory(cat model.Category) {
	c.update(func(s *State) bool { return s.SetCategory(cat) })
}

func (c *Controller) ClearFilters() {
	c.update(func(s *State) bool { return s.ClearFilters() })
}

func (c *Controller) SetSort(k SortKey) {
	c.update(func(s *State) bool {
		s.SetSort(k)
		return false
	})
}

// SetPage moves to page n, bounded by the pages currently available.
func (c *Controller) SetPage(n int) {
	c.update(func(s *State) bool {
		pages := TotalPages(len(c.items), c.opts.PageSize)
		s.SetPage(ClampPage(n, pages))
		return false
	})
}

func (c *Controller) NextPage() {
	c.update(func(s *State) bool {
		pages := TotalPages(len(c.items), c.opts.PageSize)
		s.SetPage(ClampPage(s.Page+1, pages))
		return false
	})
}

func (c *Controller) PrevPage() {
	c.update(func(s *State) bool {
		s.SetPage(s.Page - 1)
		return false
	})
}

// Refresh fetches immediately with the current filter, skipping the
// debounce window. Used after a mutation such as an update or delete.
func (c *Controller) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go c.run(gen)
}

// Close stops pending timers, cancels the in-flight fetch and waits for it.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.wg.Wait()
}

// update applies fn under the lock; fn reports whether a fetch is due.
func (c *Controller) update(fn func(s *State) bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if fn(&c.state) {
		c.scheduleLocked()
	}
	v := c.viewLocked()
	c.mu.Unlock()

	c.notify(v)
}

func (c *Controller) scheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.opts.Debounce, func() { c.run(gen) })
}

func (c *Controller) run(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	ctx, cancel := context.WithCancel(c.baseCtx)
	c.cancel = cancel
	c.loading = true
	filter := c.state.Filter()
	c.wg.Add(1)
	v := c.viewLocked()
	c.mu.Unlock()

	defer c.wg.Done()
	defer cancel()

	c.notify(v)

	items, err := c.fetch(ctx, filter)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		slog.Debug("listing discarded stale response", "seq", seq, "latest", c.seq)
		return
	}
	c.loading = false
	c.cancel = nil
	if err != nil {
		// Keep what was shown before.
		if !errors.Is(err, context.Canceled) {
			slog.Warn("listing fetch failed", "error", err, "search", filter.Search, "category", filter.Category)
		}
		c.err = err
	} else {
		c.items = items
		c.err = nil
	}
	v = c.viewLocked()
	c.mu.Unlock()

	c.notify(v)
}

func (c *Controller) notify(v View) {
	if c.onChange != nil {
		c.onChange(v)
	}
}
