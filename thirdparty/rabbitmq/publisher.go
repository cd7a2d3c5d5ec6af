package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	feedbackExchange   = "feedback_exchange"
	feedbackQueue      = "feedback_submitted_queue"
	feedbackRoutingKey = "feedback.submitted"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type FeedbackSubmittedMessage struct {
	FeedbackID     uint64    `json:"feedback_id"`
	ClassID        uint64    `json:"class_id"`
	ClassTitle     string    `json:"class_title"`
	TrainerName    string    `json:"trainer_name"`
	TrainerEmail   string    `json:"trainer_email"`
	Rating         int       `json:"rating"`
	WouldRecommend bool      `json:"would_recommend"`
	CreatedAt      time.Time `json:"created_at"`
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		feedbackExchange, // name
		"direct",         // type
		true,             // durable
		false,            // auto-delete
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		feedbackQueue, // name
		true,          // durable
		false,         // auto-delete
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		feedbackQueue,      // queue name
		feedbackRoutingKey, // routing key
		feedbackExchange,   // exchange
		false,              // no-wait
		nil,                // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishFeedbackSubmitted(ctx context.Context, msg FeedbackSubmittedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		feedbackExchange,   // exchange
		feedbackRoutingKey, // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
