// Package notify delivers the toast-style messages the storefront shows after
// cart, session and booking actions. Delivery is fire-and-forget: a failing
// sink is logged and never fails the action that triggered it.
package notify

import (
	"context"
	"log"
)

type Kind string

const (
	CartItemAdded    Kind = "cart.item_added"
	CartItemRemoved  Kind = "cart.item_removed"
	CartCleared      Kind = "cart.cleared"
	SessionLoggedIn  Kind = "session.logged_in"
	SessionLoggedOut Kind = "session.logged_out"
	BookingConfirmed Kind = "booking.confirmed"
	BookingUpdated   Kind = "booking.updated"
	BookingDeleted   Kind = "booking.deleted"
)

type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Publisher is satisfied by *rabbitmq.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n Notification) {
	log.Printf("[Notify] %s: %s", n.Kind, n.Message)
}

// BrokerNotifier publishes each notification with its kind as routing key.
type BrokerNotifier struct {
	pub Publisher
}

func NewBrokerNotifier(pub Publisher) *BrokerNotifier {
	return &BrokerNotifier{pub: pub}
}

func (b *BrokerNotifier) Notify(ctx context.Context, n Notification) {
	if err := b.pub.Publish(ctx, string(n.Kind), n); err != nil {
		log.Printf("[Notify] publish %s failed: %v", n.Kind, err)
	}
}

type multi []Notifier

func (m multi) Notify(ctx context.Context, n Notification) {
	for _, nt := range m {
		nt.Notify(ctx, n)
	}
}

// Multi fans a notification out to every non-nil notifier.
func Multi(notifiers ...Notifier) Notifier {
	var out multi
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Discard drops everything. Handy in tests.
var Discard Notifier = multi(nil)
