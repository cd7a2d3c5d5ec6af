package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/rabbitmq/amqp091-go"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
)

// Handler processes one feedback event. A returned error requeues the message.
type Handler func(ctx context.Context, msg FeedbackSubmittedMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
}

func NewConsumer(host string, port int, user, password string, handler Handler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

// Start consumes until ctx is done or the channel closes. It returns once
// the consume loop is running.
func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		feedbackQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				handleDelivery(ctx, c.handler, msg)
			}
		}
	}()

	return nil
}

func handleDelivery(ctx context.Context, handler Handler, msg amqp091.Delivery) {
	var event FeedbackSubmittedMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] err unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := handler(ctx, event); err != nil {
		logger.Error("[Consumer] err handle feedback event",
			zap.Uint64("feedback_id", event.FeedbackID),
			zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] feedback event handled", zap.Uint64("feedback_id", event.FeedbackID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
