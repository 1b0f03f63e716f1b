package lock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/lock"
)

func newLocker(t *testing.T) (*lock.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	l := lock.New(client, time.Second)
	l.Backoff = 5 * time.Millisecond
	return l, mr
}

func TestWithLockSerialisesHolders(t *testing.T) {
	locker, _ := newLocker(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var (
		mu      sync.Mutex
		order   []string
		wg      sync.WaitGroup
		entered = make(chan struct{})
		release = make(chan struct{})
	)
	record := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = locker.WithLock(ctx, "invoice:1", func(context.Context) error {
			record("first")
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered
	go func() {
		defer wg.Done()
		_ = locker.WithLock(ctx, "invoice:1", func(context.Context) error {
			record("second")
			return nil
		})
	}()
	time.Sleep(30 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, []string{"first", "second"}, order)
}

func TestWithLockReleasesOnError(t *testing.T) {
	locker, mr := newLocker(t)
	boom := errors.New("boom")

	err := locker.WithLock(context.Background(), "invoice:2", func(context.Context) error { return boom })
	require.ErrorIs(t, err, boom)
	require.False(t, mr.Exists("lock:invoice:2"))
}

func TestWithLockHonoursContext(t *testing.T) {
	locker, mr := newLocker(t)
	require.NoError(t, mr.Set("lock:invoice:3", "someone-else"))

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	err := locker.WithLock(ctx, "invoice:3", func(context.Context) error { return nil })
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNilLockerRunsInline(t *testing.T) {
	var locker *lock.Locker
	called := false
	require.NoError(t, locker.WithLock(context.Background(), "k", func(context.Context) error {
		called = true
		return nil
	}))
	require.True(t, called)
}
