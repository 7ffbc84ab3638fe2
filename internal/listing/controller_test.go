package listing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/model"
)

type fakeBackend struct {
	mu    sync.Mutex
	calls []Filter
	fn    func(ctx context.Context, f Filter) ([]model.Artwork, error)
}

func (b *fakeBackend) fetch(ctx context.Context, f Filter) ([]model.Artwork, error) {
	b.mu.Lock()
	b.calls = append(b.calls, f)
	fn := b.fn
	b.mu.Unlock()

	if fn != nil {
		return fn(ctx, f)
	}
	return []model.Artwork{{ID: "1", Title: f.Search}}, nil
}

func (b *fakeBackend) Calls() []Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Filter(nil), b.calls...)
}

func testOptions() Options {
	o := ExploreOptions
	o.Debounce = 60 * time.Millisecond
	return o
}

func TestController_InitialFetchAfterDebounce(t *testing.T) {
	b := &fakeBackend{}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()

	assert.True(t, c.View().Loading)
	assert.False(t, c.View().Empty(), "loading is not the empty state")

	require.Eventually(t, func() bool { return !c.View().Loading }, time.Second, 5*time.Millisecond)
	assert.Len(t, b.Calls(), 1)
	assert.Equal(t, 1, c.View().Total)
}

func TestController_RapidSearchEditsFetchOnce(t *testing.T) {
	b := &fakeBackend{}
	c := NewController(context.Background(), b.fetch, ExploreOptions, nil)
	defer c.Close()

	require.Eventually(t, func() bool { return len(b.Calls()) == 1 }, 2*time.Second, 5*time.Millisecond)

	for _, q := range []string{"s", "su", "sun", "suns", "sunse"} {
		c.SetSearch(q)
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(b.Calls()) == 2 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(2 * DefaultDebounce)

	calls := b.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "sunse", calls[1].Search)
}

func TestController_SortAndPageDoNotFetch(t *testing.T) {
	items := make([]model.Artwork, 30)
	for i := range items {
		items[i] = model.Artwork{ID: string(rune('a' + i)), Likes: i}
	}
	b := &fakeBackend{fn: func(context.Context, Filter) ([]model.Artwork, error) { return items, nil }}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()

	require.Eventually(t, func() bool { return !c.View().Loading }, time.Second, 5*time.Millisecond)

	c.SetPage(3)
	assert.Equal(t, 3, c.View().Page)
	c.NextPage()
	assert.Equal(t, 3, c.View().Page, "next page is bounded by the last page")

	c.SetSort(SortLikes)
	assert.Equal(t, 1, c.View().Page)
	assert.Equal(t, 29, c.View().Items[0].Likes)

	c.PrevPage()
	assert.Equal(t, 1, c.View().Page)

	time.Sleep(3 * testOptions().Debounce)
	assert.Len(t, b.Calls(), 1)
}

func TestController_CategoryChangeResetsPage(t *testing.T) {
	items := make([]model.Artwork, 30)
	for i := range items {
		items[i] = model.Artwork{ID: string(rune('a' + i))}
	}
	b := &fakeBackend{fn: func(context.Context, Filter) ([]model.Artwork, error) { return items, nil }}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()

	require.Eventually(t, func() bool { return !c.View().Loading }, time.Second, 5*time.Millisecond)

	c.SetPage(2)
	c.SetCategory(model.CategoryPainting)
	assert.Equal(t, 1, c.State().Page)

	c.SetCategory(model.CategoryAll)
	assert.Equal(t, 1, c.State().Page)

	require.Eventually(t, func() bool { return len(b.Calls()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, model.CategoryAll, b.Calls()[1].Category)
}

func TestController_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	b := &fakeBackend{}
	b.fn = func(ctx context.Context, f Filter) ([]model.Artwork, error) {
		if f.Search == "slow" {
			<-release
			return []model.Artwork{{ID: "stale", Title: "stale"}}, nil
		}
		return []model.Artwork{{ID: "fresh", Title: f.Search}}, nil
	}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()
	require.Eventually(t, func() bool { return len(b.Calls()) == 1 }, time.Second, 5*time.Millisecond)

	c.SetSearch("slow")
	require.Eventually(t, func() bool { return len(b.Calls()) == 2 }, time.Second, 5*time.Millisecond)

	c.SetSearch("fast")
	require.Eventually(t, func() bool {
		v := c.View()
		return !v.Loading && v.Total == 1 && v.Items[0].Title == "fast"
	}, time.Second, 5*time.Millisecond)

	close(release)
	time.Sleep(50 * time.Millisecond)

	v := c.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, "fast", v.Items[0].Title)
}

func TestController_SupersededFetchIsCancelled(t *testing.T) {
	cancelled := make(chan struct{}, 1)
	b := &fakeBackend{}
	b.fn = func(ctx context.Context, f Filter) ([]model.Artwork, error) {
		if f.Search == "slow" {
			<-ctx.Done()
			cancelled <- struct{}{}
			return nil, ctx.Err()
		}
		return nil, nil
	}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()
	require.Eventually(t, func() bool { return len(b.Calls()) == 1 }, time.Second, 5*time.Millisecond)

	c.SetSearch("slow")
	require.Eventually(t, func() bool { return len(b.Calls()) == 2 }, time.Second, 5*time.Millisecond)
	c.SetSearch("other")

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight fetch was not cancelled")
	}
	require.Eventually(t, func() bool { return !c.View().Loading }, time.Second, 5*time.Millisecond)
	assert.NoError(t, c.View().Err)
}

func TestController_ErrorKeepsPreviousItems(t *testing.T) {
	var fail bool
	var mu sync.Mutex
	b := &fakeBackend{fn: func(context.Context, Filter) ([]model.Artwork, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return nil, errors.New("backend down")
		}
		return []model.Artwork{{ID: "1"}}, nil
	}}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()
	require.Eventually(t, func() bool { return !c.View().Loading }, time.Second, 5*time.Millisecond)

	mu.Lock()
	fail = true
	mu.Unlock()
	c.Refresh()

	require.Eventually(t, func() bool { return c.View().Err != nil }, time.Second, 5*time.Millisecond)
	v := c.View()
	assert.False(t, v.Loading)
	assert.Equal(t, 1, v.Total)
}

func TestController_EmptyResultShowsEmptyStateAndClears(t *testing.T) {
	b := &fakeBackend{fn: func(_ context.Context, f Filter) ([]model.Artwork, error) {
		if f.Search != "" {
			return nil, nil
		}
		return []model.Artwork{{ID: "1"}}, nil
	}}
	c := NewController(context.Background(), b.fetch, testOptions(), nil)
	defer c.Close()

	c.SetSearch("nothing matches")
	require.Eventually(t, func() bool { return c.View().Empty() }, time.Second, 5*time.Millisecond)
	assert.False(t, c.View().ShowPagination())

	c.ClearFilters()
	require.Eventually(t, func() bool { return c.View().Total == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, NewState(), c.State())
}

func TestController_OnChangeAndClose(t *testing.T) {
	var mu sync.Mutex
	var views []View
	b := &fakeBackend{}
	c := NewController(context.Background(), b.fetch, testOptions(), func(v View) {
		mu.Lock()
		views = append(views, v)
		mu.Unlock()
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(views) >= 2 && !views[len(views)-1].Loading
	}, time.Second, 5*time.Millisecond)

	c.Close()
	c.SetSearch("after close")
	time.Sleep(3 * testOptions().Debounce)
	assert.Len(t, b.Calls(), 1)
}
