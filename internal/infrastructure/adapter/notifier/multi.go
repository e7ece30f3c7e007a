package notifier

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
)

// Multi fans one event out to several notifiers. Every notifier is tried;
// the failures are joined.
type Multi []notification.Notifier

var _ notification.Notifier = Multi(nil)

// NotifyPaymentSuccess implements notification.Notifier
func (m Multi) NotifyPaymentSuccess(ctx context.Context, event notification.PaymentSuccess) error {
	var errList []error
	for _, n := range m {
		if err := n.NotifyPaymentSuccess(ctx, event); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// Noop drops every event
type Noop struct{}

// NotifyPaymentSuccess implements notification.Notifier
func (Noop) NotifyPaymentSuccess(context.Context, notification.PaymentSuccess) error { return nil }
