package events

import (
	"context"
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/pkg/circuit_breaker"
)

type Type string

const (
	LoanCheckedOut Type = "loan.checked_out"
	LoanCheckedIn  Type = "loan.checked_in"
	FinesUpdated   Type = "fines.updated"
	FinesPaid      Type = "fines.paid"
)

// Event is a circulation fact published after the transaction that produced it committed.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	CardID     string    `json:"cardId,omitempty"`
	ISBN       string    `json:"isbn,omitempty"`
	LoanID     int64     `json:"loanId,omitempty"`
	DueDate    string    `json:"dueDate,omitempty"`
	Inserted   int       `json:"inserted,omitempty"`
	Updated    int       `json:"updated,omitempty"`
	Rows       int64     `json:"rows,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger

	mu      sync.Mutex
	entropy io.Reader
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("publisher"),
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

func (p *kafkaPublisher) newID(t time.Time) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), p.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if ev.ID == "" {
		id, err := p.newID(ev.OccurredAt)
		if err != nil {
			return errors.Wrap(err, "event id")
		}
		ev.ID = id
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(ev.Type)},
		},
	}
	if ev.CardID != "" {
		msg.Key = sarama.StringEncoder(ev.CardID)
	}

	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", ev.Type)
	}
	p.log.Debug("event published", zap.String("type", string(ev.Type)), zap.String("id", ev.ID))
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
