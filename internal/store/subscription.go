package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Subscription is an active Pub/Sub subscription to draw events.
// Caller must call Close() when done to clean up resources.
type Subscription struct {
	events <-chan *Draw
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of recorded draws.
// The channel is closed when the subscription is closed or the context is cancelled.
func (s *Subscription) Events() <-chan *Draw {
	return s.events
}

// Errors returns the channel of subscription errors.
// Malformed messages are reported here and skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Implements io.Closer.
// Safe to call multiple times.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// SubscribeDraws subscribes to draws recorded in this namespace.
// Context cancellation also stops the subscription.
//
// Delivery is at-most-once: draws recorded while nobody is subscribed, or
// while the subscriber lags, are not replayed. Use ListDraws for history.
func (c *Client) SubscribeDraws(ctx context.Context) (*Subscription, error) {
	pubsub := c.rdb.Subscribe(ctx, DrawEventsChannel(c.namespace))

	// Wait for the SUBSCRIBE confirmation so no draw published after this
	// call returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to draw events: %w", err)
	}

	eventsChan := make(chan *Draw, 10)
	errorsChan := make(chan error, 10)
	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var draw Draw
				if err := json.Unmarshal([]byte(msg.Payload), &draw); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal draw event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case eventsChan <- &draw:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{
		events: eventsChan,
		errors: errorsChan,
		cancel: cancelFunc,
	}, nil
}
