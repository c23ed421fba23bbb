package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrUpstream covers push service failures, including missing VAPID
// credentials: delivery cannot be attempted without them.
var ErrUpstream = errors.New("push: upstream delivery failed")

// Sender delivers one task to the subscription's push service.
type Sender interface {
	Send(ctx context.Context, task Task) error
}

// WebPushSender delivers Web Push notifications, encrypting each payload
// for the subscription and signing the VAPID token with the application
// server's key pair.
type WebPushSender struct {
	subscriber string
	publicKey  string
	privateKey string
	client     *http.Client
}

// NewWebPushSender builds a sender with the given VAPID contact address
// and key pair. Keys may be empty; Send then fails with ErrUpstream per
// attempt instead of the constructor failing, so the worker can start
// before keys are provisioned.
func NewWebPushSender(subscriber, publicKey, privateKey string) *WebPushSender {
	return &WebPushSender{
		subscriber: subscriber,
		publicKey:  publicKey,
		privateKey: privateKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebPushSender) Send(ctx context.Context, task Task) error {
	if s.publicKey == "" || s.privateKey == "" {
		return fmt.Errorf("%w: VAPID keys not configured", ErrUpstream)
	}
	if task.Subscription.Endpoint == "" {
		return fmt.Errorf("%w: subscription has no endpoint", ErrUpstream)
	}

	payload, err := json.Marshal(map[string]string{"message": task.Message})
	if err != nil {
		return err
	}

	sub := &webpush.Subscription{
		Endpoint: task.Subscription.Endpoint,
		Keys: webpush.Keys{
			Auth:   task.Subscription.Keys["auth"],
			P256dh: task.Subscription.Keys["p256dh"],
		},
	}
	resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             86400,
		HTTPClient:      s.client,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: push service returned %d", ErrUpstream, resp.StatusCode)
	}
	return nil
}
