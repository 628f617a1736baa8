package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeOutboxRepo struct {
	pending   []*usecase.OutboxEvent
	processed []int64
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	f.pending = append(f.pending, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	if len(f.pending) == 0 {
		return nil, nil
	}
	n := limit
	if n > len(f.pending) {
		n = len(f.pending)
	}
	batch := f.pending[:n]
	f.pending = f.pending[n:]
	return batch, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	f.processed = append(f.processed, id)
	return nil
}

type fakeProducer struct {
	written []*usecase.WriteRawMessageReq
	err     error
}

func (f *fakeProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, req)
	return nil
}

func TestProcessBatch_DrainsAndMarksProcessed(t *testing.T) {
	repo := &fakeOutboxRepo{
		pending: []*usecase.OutboxEvent{
			{ID: 1, UserID: 42, Payload: []byte(`{"event_type":"cart.item_added"}`)},
			{ID: 2, UserID: 42, Payload: []byte(`{"event_type":"cart.cleared"}`)},
		},
	}
	producer := &fakeProducer{}
	w := NewOutboxWorker(repo, nopLogger{}, producer, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)

	require.Len(t, producer.written, 2)
	assert.Equal(t, int64(42), producer.written[0].UserID)
	assert.Equal(t, []int64{1, 2}, repo.processed)

	hasMore, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore)
}

func TestProcessBatch_FailedEventStaysUnprocessed(t *testing.T) {
	repo := &fakeOutboxRepo{
		pending: []*usecase.OutboxEvent{{ID: 1, UserID: 42}},
	}
	producer := &fakeProducer{err: errors.New("broker not available")}
	w := NewOutboxWorker(repo, nopLogger{}, producer, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)

	assert.Empty(t, repo.processed)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("read: i/o timeout")))
	assert.False(t, isRetryableError(errors.New("message too large")))
	assert.False(t, isRetryableError(nil))
}
