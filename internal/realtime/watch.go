package realtime

import (
	"context"
)

// RefreshFunc re-derives a view from a fresh snapshot.
type RefreshFunc func(ctx context.Context) error

// Watch keeps one live view current. It refreshes once immediately and then
// once per received trigger, until ctx is done or refresh fails. The
// subscription is always released before Watch returns.
func Watch(ctx context.Context, hub Subscriber, name string, refresh RefreshFunc) error {
	sub := hub.Subscribe(name)
	defer sub.Unsubscribe()

	if err := refresh(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := refresh(ctx); err != nil {
				return err
			}
		}
	}
}
