package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/model"
)

// ChangeRecorder persists one change event.
type ChangeRecorder interface {
	Record(ctx context.Context, ev model.ChangeEvent) error
}

// DecodeChangeEvent accepts an in-process event or a JSON message body.
func DecodeChangeEvent(payload any) (model.ChangeEvent, error) {
	switch v := payload.(type) {
	case model.ChangeEvent:
		return v, nil
	case *model.ChangeEvent:
		return *v, nil
	case []byte:
		var ev model.ChangeEvent
		if err := json.Unmarshal(v, &ev); err != nil {
			return model.ChangeEvent{}, fmt.Errorf("invalid change event: %w", err)
		}
		return ev, nil
	}
	return model.ChangeEvent{}, fmt.Errorf("unexpected payload type %T", payload)
}

// StartActivitySubscriber feeds change events on topic into recorder.
// Malformed payloads are logged and dropped rather than retried.
func StartActivitySubscriber(ctx context.Context, q Queue, topic string, recorder ChangeRecorder, logger *zap.Logger) error {
	err := q.Subscribe(topic, func(payload any) error {
		ev, err := DecodeChangeEvent(payload)
		if err != nil {
			logger.Warn("Dropping change event", zap.Error(err))
			return nil
		}
		if err := recorder.Record(ctx, ev); err != nil {
			return fmt.Errorf("record %s event %s: %w", ev.Action, ev.EventID, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to start subscriber for %s: %w", topic, err)
	}
	return nil
}
