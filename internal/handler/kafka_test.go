package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func paymentMessage(value string) kafka.Message {
	return kafka.Message{Topic: "payment-events", Key: []byte("pi_1"), Value: []byte(value)}
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		dlqErr       error
		mockBehavior func(f *mocks.MockPaymentFinalizer)
		wantDLQ      bool
		wantCommit   bool
	}{
		{
			name:  "succeeded event finalizes",
			value: `{"event_id":"evt_1","type":"payment_intent.succeeded","payment_intent_id":"pi_1","status":"succeeded"}`,
			mockBehavior: func(f *mocks.MockPaymentFinalizer) {
				f.EXPECT().Finalize(mock.Anything, "pi_1").Return(service.FinalizeResult{OrderID: "o-1"}, nil).Once()
			},
			wantCommit: true,
		},
		{
			name:  "replay is not an error",
			value: `{"event_id":"evt_1","type":"payment_intent.succeeded","payment_intent_id":"pi_1"}`,
			mockBehavior: func(f *mocks.MockPaymentFinalizer) {
				f.EXPECT().Finalize(mock.Anything, "pi_1").Return(service.FinalizeResult{OrderID: "o-1", Replayed: true}, nil).Once()
			},
			wantCommit: true,
		},
		{
			name:       "other event types are skipped",
			value:      `{"event_id":"evt_2","type":"payment_intent.created","payment_intent_id":"pi_1"}`,
			wantCommit: true,
		},
		{
			name:       "malformed event goes to DLQ",
			value:      `{"event_id":`,
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:       "event without intent goes to DLQ",
			value:      `{"event_id":"evt_3","type":"payment_intent.succeeded"}`,
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:  "finalize failure goes to DLQ",
			value: `{"event_id":"evt_1","type":"payment_intent.succeeded","payment_intent_id":"pi_1"}`,
			mockBehavior: func(f *mocks.MockPaymentFinalizer) {
				f.EXPECT().Finalize(mock.Anything, "pi_1").Return(service.FinalizeResult{}, entities.ErrAmountMismatch).Once()
			},
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:   "message stays uncommitted when DLQ fails",
			value:  `{"event_id":`,
			dlqErr: errors.New("broker down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			finalizer := mocks.NewMockPaymentFinalizer(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(finalizer)
			}

			reader := &fakeReader{msgs: []kafka.Message{paymentMessage(tc.value)}}
			dlq := &fakeWriter{err: tc.dlqErr}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := newKafkaHandler(logger, reader, dlq, "checkout-service", finalizer)

			h.Consume(context.Background())

			if tc.wantDLQ {
				if assert.Len(t, dlq.msgs, 1) {
					assert.Equal(t, "payment-events-dlq", dlq.msgs[0].Topic)
					assert.Equal(t, tc.value, string(dlq.msgs[0].Value))
				}
			} else {
				assert.Empty(t, dlq.msgs)
			}
			if tc.wantCommit {
				assert.Len(t, reader.committed, 1)
			} else {
				assert.Empty(t, reader.committed)
			}
		})
	}
}
