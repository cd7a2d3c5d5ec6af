package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	f.requeue = append(f.requeue, requeue)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

func delivery(t *testing.T, ack *fakeAcknowledger, body []byte) amqp091.Delivery {
	t.Helper()
	return amqp091.Delivery{Acknowledger: ack, DeliveryTag: 7, Body: body}
}

func TestHandleDelivery(t *testing.T) {
	event := FeedbackSubmittedMessage{
		FeedbackID:   11,
		ClassID:      3,
		ClassTitle:   "Intro to Go",
		TrainerEmail: "trainer@x.com",
		Rating:       5,
		CreatedAt:    time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       []byte
		handlerErr error
		wantAck    bool
		wantNack   bool
		wantCalled bool
	}{
		{
			name:       "success acks",
			body:       body,
			wantAck:    true,
			wantCalled: true,
		},
		{
			name:       "handler error requeues",
			body:       body,
			handlerErr: errors.New("smtp down"),
			wantNack:   true,
			wantCalled: true,
		},
		{
			name:    "malformed message is dropped",
			body:    []byte("{not json"),
			wantAck: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			called := false
			handler := func(ctx context.Context, msg FeedbackSubmittedMessage) error {
				called = true
				assert.Equal(t, event, msg)
				return tt.handlerErr
			}

			handleDelivery(context.Background(), handler, delivery(t, ack, tt.body))

			assert.Equal(t, tt.wantCalled, called)
			if tt.wantAck {
				assert.Equal(t, []uint64{7}, ack.acked)
			} else {
				assert.Empty(t, ack.acked)
			}
			if tt.wantNack {
				assert.Equal(t, []uint64{7}, ack.nacked)
				assert.Equal(t, []bool{true}, ack.requeue)
			} else {
				assert.Empty(t, ack.nacked)
			}
		})
	}
}
