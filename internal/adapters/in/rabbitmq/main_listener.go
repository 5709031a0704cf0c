package rabbitmq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/in"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// CacheInvalidationListener сбрасывает кэш справочников по событиям об их изменении
type CacheInvalidationListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.ReferenceCacheUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewCacheInvalidationListener(useCase in.ReferenceCacheUseCase, cfg *config.Config, logger out.LoggerPort) (*CacheInvalidationListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &CacheInvalidationListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *CacheInvalidationListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.Bind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go l.consume(ctx, msgs)

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue":    queue.Name,
		"bind":     l.cfg.RabbitMQ.Bind,
		"exchange": l.cfg.RabbitMQ.Exchange,
	})
	return nil
}

func (l *CacheInvalidationListener) consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				l.logger.Warn("rabbitmq.queue.closed", out.LogFields{})
				return
			}

			if err := handleMessage(ctx, l.useCase, msg.RoutingKey, msg.Body); err != nil {
				l.logger.Error("rabbitmq.message.failed", out.LogFields{
					"routingKey": msg.RoutingKey,
					"error":      err.Error(),
				})
				// Битое сообщение повторно не обработать
				msg.Nack(false, !errors.Is(err, errMalformedMessage))
				continue
			}
			msg.Ack(false)
		}
	}
}

func (l *CacheInvalidationListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
