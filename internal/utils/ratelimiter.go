package utils

import (
	"context"
	"sync"
	"time"
)

// RateLimiter ホスト別にリクエスト間隔を空ける
type RateLimiter struct {
	interval time.Duration
	mu       sync.Mutex
	next     map[string]time.Time
}

// NewRateLimiter 新しいレートリミッターを作成（rps<=0 なら待機しない）
func NewRateLimiter(rps int) *RateLimiter {
	var interval time.Duration
	if rps > 0 {
		interval = time.Second / time.Duration(rps)
	}
	return &RateLimiter{
		interval: interval,
		next:     make(map[string]time.Time),
	}
}

// reserve 次に実行してよい時刻を予約して返す
func (rl *RateLimiter) reserve(host string) time.Time {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	at := rl.next[host]
	if at.Before(now) {
		at = now
	}
	rl.next[host] = at.Add(rl.interval)
	return at
}

// Wait ホストの順番が来るまで待つ
func (rl *RateLimiter) Wait(ctx context.Context, host string) error {
	if rl == nil || rl.interval <= 0 {
		return ctx.Err()
	}

	delay := time.Until(rl.reserve(host))
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do 順番を待ってからfnを実行
func (rl *RateLimiter) Do(ctx context.Context, host string, fn func() error) error {
	if err := rl.Wait(ctx, host); err != nil {
		return err
	}
	return fn()
}
