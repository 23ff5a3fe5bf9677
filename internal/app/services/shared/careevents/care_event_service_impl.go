package careevents

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// careEventService publishes entity life cycle events to a durable
// RabbitMQ queue consumed by the external alerting subsystem.
type careEventService struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewCareEventService(conn *amqp.Connection, logger *zap.Logger, queueName string) (contracts.CareEventService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	// Publisher confirms so a lost event is at least logged.
	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &careEventService{
		ch:        ch,
		queueName: queueName,
		log:       logger,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *careEventService) Publish(ctx context.Context, event *models.CareEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deliveryTag := s.ch.GetNextPublishSeqNo()

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	if err := s.awaitConfirmation(ctx, deliveryTag); err != nil {
		return err
	}

	s.log.Info("careEventService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.String(constvars.LoggingEntityKey, event.Entity),
		zap.String(constvars.LoggingEventActionKey, event.Action),
		zap.String(constvars.LoggingMemberIDKey, event.MemberID),
	)
	return nil
}

// awaitConfirmation waits for the broker to confirm the publish carrying
// deliveryTag. A confirmation left behind by an earlier publish whose
// context expired before the broker answered carries an older tag and is
// drained, so it can never satisfy a later publish.
func (s *careEventService) awaitConfirmation(ctx context.Context, deliveryTag uint64) error {
	for {
		select {
		case confirmation := <-s.confirms:
			if confirmation.DeliveryTag < deliveryTag {
				continue
			}
			if !confirmation.Ack {
				return exceptions.ErrRabbitMQPublishMessage(nil, s.queueName)
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
