//go:build unit

package lock_test

import (
	"context"
	"testing"
	"time"

	"pharmashift/internal/infra/lock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocker(t *testing.T) (*lock.RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return lock.NewRedisLocker(client, time.Second), mr
}

func TestRedisLocker_Exclusive(t *testing.T) {
	ctx := context.Background()
	locker, _ := newLocker(t)

	release, ok, err := locker.TryLock(ctx, "shift-claim:1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.TryLock(ctx, "shift-claim:1")
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	_, ok, err = locker.TryLock(ctx, "shift-claim:2")
	require.NoError(t, err)
	assert.True(t, ok, "other keys are independent")

	release()

	_, ok, err = locker.TryLock(ctx, "shift-claim:1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_ExpiredLockIsNotReleasedByOldHolder(t *testing.T) {
	ctx := context.Background()
	locker, mr := newLocker(t)

	staleRelease, ok, err := locker.TryLock(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = locker.TryLock(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	staleRelease()

	_, ok, err = locker.TryLock(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "stale release must not drop the new holder's lock")
}

func TestRedisLocker_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	locker := lock.NewRedisLocker(client, time.Second)
	mr.Close()

	_, ok, err := locker.TryLock(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNoopLocker(t *testing.T) {
	release, ok, err := lock.NoopLocker{}.TryLock(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	release()
}
