package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const retryHeader = "x-retry-count"

// AMQPQueue publishes to and consumes from durable RabbitMQ queues named
// after the topic.
type AMQPQueue struct {
	conn       *amqp.Connection
	mu         sync.Mutex
	ch         *amqp.Channel
	declared   map[string]bool
	logger     *zap.Logger
	MaxRetries int
}

func NewAMQPQueue(url string, logger *zap.Logger) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &AMQPQueue{
		conn:       conn,
		ch:         ch,
		declared:   make(map[string]bool),
		logger:     logger,
		MaxRetries: 3,
	}, nil
}

func declareQueue(ch *amqp.Channel, topic string) error {
	_, err := ch.QueueDeclare(
		topic, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", topic, err)
	}
	return nil
}

// Publish encodes payload as JSON. A []byte payload is sent as is.
func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, ok := payload.([]byte)
	if !ok {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}
	return q.publish(topic, body, amqp.Table{retryHeader: int32(0)})
}

func (q *AMQPQueue) publish(topic string, body []byte, headers amqp.Table) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.declared[topic] {
		if err := declareQueue(q.ch, topic); err != nil {
			return err
		}
		q.declared[topic] = true
	}
	return q.ch.Publish("", topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Headers:      headers,
		Body:         body,
	})
}

// Subscribe consumes on a dedicated channel. The handler receives the raw
// message body. Failed deliveries are republished with an incremented retry
// header until MaxRetries, then dropped.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := declareQueue(ch, topic); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for d := range msgs {
			q.settle(topic, d, d.Body, d.Headers, handler, q.requeue)
		}
		q.logger.Info("Consumer stopped", zap.String("topic", topic))
	}()
	return nil
}

// Acknowledger is the part of amqp.Delivery the retry logic needs.
type Acknowledger interface {
	Ack(multiple bool) error
}

func (q *AMQPQueue) requeue(topic string, body []byte, retries int) error {
	return q.publish(topic, body, amqp.Table{retryHeader: int32(retries)})
}

func (q *AMQPQueue) settle(
	topic string,
	ack Acknowledger,
	body []byte,
	headers amqp.Table,
	handler func(payload any) error,
	requeue func(topic string, body []byte, retries int) error,
) {
	err := handler(body)
	if err == nil {
		_ = ack.Ack(false)
		return
	}

	retries := RetryCount(headers)
	if retries >= q.MaxRetries {
		q.logger.Error("Message permanently failed", zap.String("topic", topic), zap.Int("retries", retries), zap.Error(err))
		_ = ack.Ack(false)
		return
	}

	q.logger.Warn("Message failed, requeueing", zap.String("topic", topic), zap.Int("retries", retries), zap.Error(err))
	if perr := requeue(topic, body, retries+1); perr != nil {
		q.logger.Error("Failed to requeue message", zap.Error(perr))
	}
	_ = ack.Ack(false)
}

// RetryCount reads the retry header, which may arrive as any integer width.
func RetryCount(headers amqp.Table) int {
	switch v := headers[retryHeader].(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	_ = q.ch.Close()
	return q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)
