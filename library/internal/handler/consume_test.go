package handler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/model"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	var calls int
	consumer := NewConsumer(func(ctx context.Context) (model.UpdateFinesResult, error) {
		calls++
		return model.UpdateFinesResult{Inserted: 1}, nil
	}, zap.NewNop())

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`{"requestedBy":"cron"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`not json`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, consumer.ConsumeClaim(session, claim))

	require.Equal(t, 2, calls)
	require.Equal(t, []int64{1, 2, 3}, session.marked)
}

func TestConsumer_FailedSweepIsNotMarked(t *testing.T) {
	t.Parallel()
	consumer := NewConsumer(func(ctx context.Context) (model.UpdateFinesResult, error) {
		return model.UpdateFinesResult{}, errors.New("db down")
	}, zap.NewNop())

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 7, Value: []byte(`{}`)}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Empty(t, session.marked)
}

func TestConsumer_StopsWithSession(t *testing.T) {
	t.Parallel()
	consumer := NewConsumer(func(ctx context.Context) (model.UpdateFinesResult, error) {
		return model.UpdateFinesResult{}, nil
	}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	require.NoError(t, consumer.ConsumeClaim(session, claim))
}
