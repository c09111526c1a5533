package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	r "github.com/fjod/go_pos/internal/repository"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	m           sync.Mutex
	events      []*r.OutboxEvent
	fetchErr    error
	markErr     error
	processedID []int64
}

func (m *mockRepository) SaveOrder(context.Context, *r.Order) error { return nil }

func (m *mockRepository) GetOrder(context.Context, string) (*r.Order, error) {
	return nil, r.ErrOrderNotFound
}

func (m *mockRepository) GetUnprocessedEvents(context.Context, int) ([]*r.OutboxEvent, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	out := m.events
	m.events = nil
	return out, nil
}

func (m *mockRepository) MarkEventAsProcessed(_ context.Context, id int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.markErr != nil {
		return m.markErr
	}
	m.processedID = append(m.processedID, id)
	return nil
}

func (m *mockRepository) RunMigrations(string) error { return nil }
func (m *mockRepository) Close() error               { return nil }

type mockWriter struct {
	m        sync.Mutex
	messages []kafkaGo.Message
	err      error
	closed   bool
}

func (w *mockWriter) Close() error {
	w.m.Lock()
	defer w.m.Unlock()
	w.closed = true
	return nil
}

func (w *mockWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	w.m.Lock()
	defer w.m.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func newTestPoller(repo r.RepoInterface, writer messageWriter) *OutboxPoller {
	return &OutboxPoller{eventTick: time.Millisecond, batchSize: 100, repo: repo, writer: writer}
}

func sampleEvent(id int64, orderID string) *r.OutboxEvent {
	return &r.OutboxEvent{
		ID:          id,
		AggregateID: orderID,
		EventType:   r.EventOrderFinalized,
		Payload:     []byte(`{"order_id":"` + orderID + `"}`),
		CreatedAt:   time.Now(),
	}
}

func TestProcessUnpublishedEvents_PublishesAndMarks(t *testing.T) {
	repo := &mockRepository{events: []*r.OutboxEvent{sampleEvent(1, "ord-1"), sampleEvent(2, "ord-2")}}
	writer := &mockWriter{}
	poller := newTestPoller(repo, writer)

	poller.processUnpublishedEvents(context.Background())

	require.Len(t, writer.messages, 2)
	assert.Equal(t, []byte("ord-1"), writer.messages[0].Key)
	assert.JSONEq(t, `{"order_id":"ord-1"}`, string(writer.messages[0].Value))
	require.Len(t, writer.messages[0].Headers, 1)
	assert.Equal(t, "event_type", writer.messages[0].Headers[0].Key)
	assert.Equal(t, []byte(r.EventOrderFinalized), writer.messages[0].Headers[0].Value)

	assert.Equal(t, []int64{1, 2}, repo.processedID)
}

func TestProcessUnpublishedEvents_PublishFailureLeavesEventUnmarked(t *testing.T) {
	repo := &mockRepository{events: []*r.OutboxEvent{sampleEvent(1, "ord-1")}}
	writer := &mockWriter{err: errors.New("broker unreachable")}
	poller := newTestPoller(repo, writer)

	poller.processUnpublishedEvents(context.Background())

	assert.Empty(t, repo.processedID)
}

func TestProcessUnpublishedEvents_FetchFailureIsQuiet(t *testing.T) {
	repo := &mockRepository{fetchErr: errors.New("db closed")}
	writer := &mockWriter{}
	poller := newTestPoller(repo, writer)

	poller.processUnpublishedEvents(context.Background())

	assert.Empty(t, writer.messages)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	repo := &mockRepository{events: []*r.OutboxEvent{sampleEvent(1, "ord-1")}}
	writer := &mockWriter{}
	poller := newTestPoller(repo, writer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	// let at least one tick fire
	require.Eventually(t, func() bool {
		writer.m.Lock()
		defer writer.m.Unlock()
		return len(writer.messages) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}

func TestClose_ReleasesWriter(t *testing.T) {
	writer := &mockWriter{}
	poller := newTestPoller(&mockRepository{}, writer)

	require.NoError(t, poller.Close())

	writer.m.Lock()
	defer writer.m.Unlock()
	assert.True(t, writer.closed)
}
