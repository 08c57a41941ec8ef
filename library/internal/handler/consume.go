package handler

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/model"
)

type updateFines func(ctx context.Context) (model.UpdateFinesResult, error)

// Consumer runs the fines sweep for every command read from the fines update topic.
type Consumer struct {
	updateFinesHandler updateFines
	log                *zap.Logger
	timeout            time.Duration
}

func NewConsumer(updateFines updateFines, log *zap.Logger) *Consumer {
	return &Consumer{
		updateFinesHandler: updateFines,
		log:                log.Named("consumer"),
		timeout:            time.Minute,
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				// left unmarked; a later marked offset skips it, the next sweep covers its loans
				consumer.log.Error("update fines", zap.Error(err), zap.Int64("offset", message.Offset))
				continue
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var cmd model.FinesUpdateCommand
	if len(message.Value) > 0 {
		if err := jsoniter.Unmarshal(message.Value, &cmd); err != nil {
			consumer.log.Warn("skip malformed command", zap.Error(err), zap.ByteString("value", message.Value))
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, consumer.timeout)
	defer cancel()

	res, err := consumer.updateFinesHandler(ctx)
	if err != nil {
		return err
	}
	consumer.log.Info("fines updated by command",
		zap.String("requestedBy", cmd.RequestedBy),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Time("timestamp", message.Timestamp))
	return nil
}
