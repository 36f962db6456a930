package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`runs when free`, func(t *testing.T) {
		ran := false
		success, err := WithDelay(context.Background(), "p-1", time.Second, func() error {
			ran = true
			return nil
		})
		require.Nil(t, err)
		require.True(t, success)
		require.True(t, ran)
	})

	t.Run(`serializes same key`, func(t *testing.T) {
		var inFlight, maxInFlight int32
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = WithDelay(context.Background(), "p-2", 2*time.Second, func() error {
					current := atomic.AddInt32(&inFlight, 1)
					for {
						observed := atomic.LoadInt32(&maxInFlight)
						if current <= observed || atomic.CompareAndSwapInt32(&maxInFlight, observed, current) {
							break
						}
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&inFlight, -1)
					return nil
				})
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
	})

	t.Run(`gives up after wait`, func(t *testing.T) {
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "p-3", time.Second, func() error {
				<-release
				return nil
			})
		}()
		time.Sleep(20 * time.Millisecond)
		success, err := WithDelay(context.Background(), "p-3", 100*time.Millisecond, func() error {
			return nil
		})
		close(release)
		require.Nil(t, err)
		require.False(t, success)
	})
}
