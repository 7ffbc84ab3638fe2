package reaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_ApplyRollback(t *testing.T) {
	tg := Toggle{Active: false, Count: 4}

	prev := tg.Apply()
	assert.Equal(t, Toggle{Active: true, Count: 5}, tg)

	tg.Rollback(prev)
	assert.Equal(t, Toggle{Active: false, Count: 4}, tg)
}

func TestToggle_UnapplyNeverNegative(t *testing.T) {
	tg := Toggle{Active: true, Count: 0}
	tg.Apply()
	assert.Equal(t, Toggle{Active: false, Count: 0}, tg)
}

func TestToggle_LikeTrustsServerCount(t *testing.T) {
	tg := Toggle{Active: false, Count: 3}

	var sent bool
	err := tg.Run(context.Background(), func(_ context.Context, active bool) (int, error) {
		sent = active
		// Someone else liked it in the meantime.
		return 10, nil
	})
	require.NoError(t, err)

	assert.True(t, sent)
	assert.True(t, tg.Active)
	assert.Equal(t, 10, tg.Count)
}

func TestToggle_FailureRollsBack(t *testing.T) {
	tg := Toggle{Active: true, Count: 7}
	boom := errors.New("boom")

	err := tg.Run(context.Background(), func(context.Context, bool) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Toggle{Active: true, Count: 7}, tg)
}

func TestToggle_CommitClampsNegative(t *testing.T) {
	tg := Toggle{Active: true, Count: 1}
	tg.Commit(-2)
	assert.Equal(t, 0, tg.Count)
}
