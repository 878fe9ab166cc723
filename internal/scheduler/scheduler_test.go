//go:build unit

package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"
	"fulfillment-core/tests/common/builder"
	"fulfillment-core/tests/mock"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	transactions *mock.MockTransactionStore
	jobs         *mock.MockQueueStore
	locks        *mock.MockLockStore
	clock        *clock.MockClock
	scheduler    *Scheduler
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactions = mock.NewMockTransactionStore(s.ctrl)
	s.jobs = mock.NewMockQueueStore(s.ctrl)
	s.locks = mock.NewMockLockStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.scheduler = New(s.transactions, s.jobs, s.locks, s.clock, logger, cfg.Reconcile, cfg.Queue)
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestSweepEnqueuesDispatchJobs() {
	first := builder.NewTransactionBuilder().Build()
	second := builder.NewTransactionBuilder().Build()
	cfg := config.NewTestConfig()

	s.transactions.EXPECT().ListDispatchable(gomock.Any(), cfg.Reconcile.AttemptCeiling, cfg.Reconcile.BatchSize).
		Return([]*transaction.Transaction{first, second}, nil)
	s.transactions.EXPECT().ListStalled(gomock.Any(), cfg.Reconcile.AttemptCeiling, cfg.Reconcile.BatchSize).
		Return(nil, nil)

	var enqueued []*queue.Job
	s.jobs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j *queue.Job) error {
			enqueued = append(enqueued, j)
			return nil
		}).Times(2)

	s.scheduler.sweep()

	s.Require().Len(enqueued, 2)
	for i, j := range enqueued {
		s.Equal(queue.KindDispatchTransaction, j.Kind)
		s.Equal(s.clock.Now(), j.RunAt)
		s.Equal(cfg.Queue.MaxAttempts, j.MaxAttempts)
		s.Require().NotNil(j.TransactionID)
		if i == 0 {
			s.Equal(first.ID, *j.TransactionID)
		} else {
			s.Equal(second.ID, *j.TransactionID)
		}
	}
}

func (s *SchedulerTestSuite) TestSweepWithNothingToDoIsQuiet() {
	s.transactions.EXPECT().ListDispatchable(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.transactions.EXPECT().ListStalled(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	s.scheduler.sweep()
}

func (s *SchedulerTestSuite) TestSweepContinuesAfterEnqueueFailure() {
	first := builder.NewTransactionBuilder().Build()
	second := builder.NewTransactionBuilder().Build()

	s.transactions.EXPECT().ListDispatchable(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*transaction.Transaction{first, second}, nil)
	s.transactions.EXPECT().ListStalled(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	s.jobs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errs.New("queue full"))
	s.jobs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j *queue.Job) error {
			s.Require().NotNil(j.TransactionID)
			s.Equal(second.ID, *j.TransactionID)
			return nil
		})

	s.scheduler.sweep()
}

// Stalled rows are reported even on a sweep that found nothing to enqueue;
// that is exactly when they accumulate.
func (s *SchedulerTestSuite) TestSweepReportsStalledTransactions() {
	stalled := builder.NewTransactionBuilder().Build()
	stalled.Attempts = 3

	s.transactions.EXPECT().ListDispatchable(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.transactions.EXPECT().ListStalled(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*transaction.Transaction{stalled}, nil)

	s.scheduler.sweep()
}

func (s *SchedulerTestSuite) TestSweepQueryFailureSkipsEnqueue() {
	s.transactions.EXPECT().ListDispatchable(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.New("connection refused"))

	s.scheduler.sweep()
}

func (s *SchedulerTestSuite) TestPurgeLocksRemovesExpired() {
	s.locks.EXPECT().PurgeExpired(gomock.Any()).Return(int64(3), nil)

	s.scheduler.purgeLocks()
}
