package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

const publishTimeout = 5 * time.Second

var (
	// ErrConnect ошибка подключения к брокеру
	ErrConnect = errors.New("events.amqp: failed to connect")

	// ErrPublish ошибка публикации события
	ErrPublish = errors.New("events.amqp: failed to publish event")
)

// Channel подмножество *amqp091.Channel
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Forwarder пересылает события шины в topic exchange RabbitMQ, routing key = тип события
type Forwarder struct {
	ch       Channel
	conn     *amqp091.Connection
	exchange string
	logger   Logger
}

// Dial подключается к брокеру и объявляет exchange
func Dial(url, exchange string, logger Logger) (*Forwarder, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	f, err := NewForwarder(ch, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	f.conn = conn

	return f, nil
}

// NewForwarder объявляет durable topic exchange на готовом канале
func NewForwarder(ch Channel, exchange string, logger Logger) (*Forwarder, error) {
	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Forwarder{
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Forward публикует одно событие как persistent JSON сообщение
func (f *Forwarder) Forward(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = f.ch.PublishWithContext(ctx, f.exchange, event.Type, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    fmt.Sprintf("%d", event.ID),
		Timestamp:    event.CreatedAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s id=%d: %v", ErrPublish, event.Type, event.ID, err)
	}

	return nil
}

// Run пересылает события до закрытия канала или отмены ctx.
// Ошибка публикации логируется и не останавливает цикл
func (f *Forwarder) Run(ctx context.Context, events <-chan domain.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := f.Forward(ctx, event); err != nil {
				f.logger.Warn("Forwarder: %v", err)
			}
		}
	}
}

// Close закрывает канал и соединение
func (f *Forwarder) Close() error {
	err := f.ch.Close()
	if f.conn != nil {
		if cerr := f.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
