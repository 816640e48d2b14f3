// Package publisher announces completed pipeline runs on RabbitMQ so
// downstream consumers can react to fresh dining data.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"dining_sync/internal/domain"
)

const EventRefreshed = "dining.refreshed"

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "rabbitmq"),
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// RefreshedMessage is published once per successful run.
type RefreshedMessage struct {
	Event      string            `json:"event"`
	RunID      string            `json:"runId"`
	CacheTag   string            `json:"cacheTag"`
	Inserted   int               `json:"inserted"`
	Published  int               `json:"published"`
	Skipped    int               `json:"skipped"`
	Overrides  []domain.Override `json:"overrides,omitempty"`
	DurationMS int64             `json:"durationMs"`
	Timestamp  time.Time         `json:"timestamp"`
}

func NewRefreshedMessage(stats *domain.SyncStats) RefreshedMessage {
	return RefreshedMessage{
		Event:      EventRefreshed,
		RunID:      stats.RunID,
		CacheTag:   stats.CacheTag,
		Inserted:   stats.Inserted,
		Published:  stats.Published,
		Skipped:    len(stats.StaticSkipped),
		Overrides:  stats.Overrides,
		DurationMS: stats.Duration.Milliseconds(),
		Timestamp:  time.Now().UTC(),
	}
}

func (r *RabbitMQ) PublishRefreshed(ctx context.Context, stats *domain.SyncStats) error {
	body, err := json.Marshal(NewRefreshedMessage(stats))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    stats.RunID,
			Type:         EventRefreshed,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published refresh event", "run_id", stats.RunID, "cache_tag", stats.CacheTag)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
