package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	amqplib "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/repository"
)

const resultQueue = "judge_results"

var _ repository.VerdictPublisher = (*Publisher)(nil)

// Publisher delivers job verdicts to the results queue.
type Publisher struct {
	channel *amqplib.Channel
	logger  *zap.Logger
}

// NewPublisher declares the results queue on the given channel.
func NewPublisher(channel *amqplib.Channel, logger *zap.Logger) (*Publisher, error) {
	_, err := channel.QueueDeclare(
		resultQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqplib.Table{"x-queue-type": "quorum"},
	)
	if err != nil {
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	return &Publisher{channel: channel, logger: logger}, nil
}

// Publish sends one verdict with persistent delivery mode.
func (p *Publisher) Publish(ctx context.Context, verdict *domain.JobVerdict) error {
	body, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("marshal verdict: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",          // default exchange
		resultQueue, // routing key
		false,       // mandatory
		false,       // immediate
		amqplib.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqplib.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Verdict publish failed",
			zap.String("job_id", verdict.JobID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", domain.ErrPublishFailed, err)
	}

	return nil
}
