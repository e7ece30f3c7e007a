package notifier

import (
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
)

// envelope is the wire shape published on a user channel
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func encodePaymentSuccess(event notification.PaymentSuccess) ([]byte, []byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, fmt.Errorf("encode payment-success: %w", err)
	}
	payload, err := json.Marshal(envelope{Event: notification.EventPaymentSuccess, Data: data})
	if err != nil {
		return nil, nil, fmt.Errorf("encode envelope: %w", err)
	}
	return data, payload, nil
}

func decodeEnvelope(channel, payload string) (notification.Message, error) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return notification.Message{}, err
	}
	return notification.Message{Channel: channel, Event: env.Event, Data: env.Data}, nil
}
