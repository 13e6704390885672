package reviews

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/bookshop-go/apperror"
	"github.com/user/bookshop-go/catalog"
)

func TestUpsertOverwrites(t *testing.T) {
	svc := NewService(catalog.NewStore())

	reviews, err := svc.Upsert("1", "alice", "great")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "great"}, reviews)

	reviews, err = svc.Upsert("1", "alice", "even better")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "even better"}, reviews)
}

func TestUpsertEmptyReview(t *testing.T) {
	svc := NewService(catalog.NewStore())

	_, err := svc.Upsert("1", "alice", "")
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestUpsertUnknownBook(t *testing.T) {
	svc := NewService(catalog.NewStore())

	_, err := svc.Upsert("unknown-isbn", "alice", "x")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteLifecycle(t *testing.T) {
	store := catalog.NewStore()
	svc := NewService(store)

	// Deleting a review bob never wrote is an error.
	err := svc.Delete("1", "bob")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Upsert("1", "bob", "ok")
	require.NoError(t, err)

	require.NoError(t, svc.Delete("1", "bob"))

	reviews, ok := store.Reviews("1")
	require.True(t, ok)
	assert.NotContains(t, reviews, "bob")

	// The slot is absent again, so a second delete fails.
	err = svc.Delete("1", "bob")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteUnknownBook(t *testing.T) {
	svc := NewService(catalog.NewStore())

	err := svc.Delete("unknown-isbn", "alice")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestConcurrentUpsertsByDistinctUsers(t *testing.T) {
	store := catalog.NewStore()
	svc := NewService(store)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Upsert("8", fmt.Sprintf("user-%d", i), "loved it")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	reviews, ok := store.Reviews("8")
	require.True(t, ok)
	assert.Len(t, reviews, n)
}

func TestConcurrentUpsertAndDeleteSameSlot(t *testing.T) {
	store := catalog.NewStore()
	svc := NewService(store)

	_, err := svc.Upsert("9", "alice", "initial")
	require.NoError(t, err)

	// One writer and one deleter race on the same slot; the final state must
	// be either present with the new text or absent, never torn.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = svc.Upsert("9", "alice", "updated")
	}()
	go func() {
		defer wg.Done()
		_ = svc.Delete("9", "alice")
	}()
	wg.Wait()

	reviews, ok := store.Reviews("9")
	require.True(t, ok)
	if text, present := reviews["alice"]; present {
		assert.Equal(t, "updated", text)
	} else {
		assert.Empty(t, reviews)
	}
}

func TestDeletedMessage(t *testing.T) {
	assert.Equal(t, "Review for ISBN 7 deleted", DeletedMessage("7"))
}
