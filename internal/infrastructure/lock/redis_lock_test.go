package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLocker(t *testing.T, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, time.Minute, wait, zap.NewNop()), mr
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	locker, mr := newTestLocker(t, 50*time.Millisecond)

	release, err := locker.Lock(context.Background(), "match:pair:1:2")
	require.NoError(t, err)
	require.True(t, mr.Exists("match:pair:1:2"))

	release()
	require.False(t, mr.Exists("match:pair:1:2"))
}

func TestRedisLocker_HeldLockTimesOut(t *testing.T) {
	locker, _ := newTestLocker(t, 30*time.Millisecond)

	release, err := locker.Lock(context.Background(), "match:pair:1:2")
	require.NoError(t, err)
	defer release()

	_, err = locker.Lock(context.Background(), "match:pair:1:2")
	require.ErrorIs(t, err, ErrLockNotAcquired)
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	locker, _ := newTestLocker(t, 2*time.Second)

	release, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		release()
	}()

	release2, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)
	release2()
}

func TestRedisLocker_ReleaseKeepsForeignToken(t *testing.T) {
	locker, mr := newTestLocker(t, 10*time.Millisecond)

	release, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	// Lock expired and was taken by someone else
	require.NoError(t, mr.Set("k", "other-token"))
	release()

	got, err := mr.Get("k")
	require.NoError(t, err)
	require.Equal(t, "other-token", got)
}

func TestNoopLocker(t *testing.T) {
	release, err := NoopLocker{}.Lock(context.Background(), "k")
	require.NoError(t, err)
	release()
}
