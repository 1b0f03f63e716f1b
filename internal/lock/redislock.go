package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Second

var releaseScript = redis.NewScript(`if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
end
return 0`)

// Locker serialises work on a key across API replicas with SET NX.
type Locker struct {
	Client  redis.Cmdable
	Prefix  string
	TTL     time.Duration
	Backoff time.Duration
}

// New returns a Locker whose keys live under "lock:".
func New(client redis.Cmdable, ttl time.Duration) *Locker {
	return &Locker{Client: client, Prefix: "lock:", TTL: ttl}
}

// WithLock runs fn while holding key. It waits until the key is free or ctx is done.
// The lock is released when fn returns, whatever its outcome.
func (l *Locker) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("lock: callback not provided")
	}
	if l == nil || l.Client == nil {
		return fn(ctx)
	}
	ttl := l.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	backoff := l.Backoff
	if backoff <= 0 {
		backoff = 25 * time.Millisecond
	}
	full := l.Prefix + key
	token := uuid.NewString()

	for {
		ok, err := l.Client.SetNX(ctx, full, token, ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			break
		}
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	defer func() {
		_ = releaseScript.Run(context.WithoutCancel(ctx), l.Client, []string{full}, token).Err()
	}()
	return fn(ctx)
}
