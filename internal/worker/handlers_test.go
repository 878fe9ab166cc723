//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/gateway"
	"fulfillment-core/internal/infra/notify"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"
	"fulfillment-core/internal/usecase"
	"fulfillment-core/internal/worker"
	"fulfillment-core/tests/common/builder"
	"fulfillment-core/tests/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type HandlersTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	transactions *mock.MockTransactionStore
	orders       *mock.MockOrderStore
	locks        *mock.MockLockStore
	jobs         *mock.MockQueueStore
	txLogs       *mock.MockTransactionLogStore
	gateway      *mock.MockPaymentGateway
	provider     *mock.MockProviderClient
	publisher    *mock.MockEventPublisher
	handlers     *worker.Handlers
}

func (s *HandlersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactions = mock.NewMockTransactionStore(s.ctrl)
	s.orders = mock.NewMockOrderStore(s.ctrl)
	s.locks = mock.NewMockLockStore(s.ctrl)
	s.jobs = mock.NewMockQueueStore(s.ctrl)
	s.txLogs = mock.NewMockTransactionLogStore(s.ctrl)
	s.gateway = mock.NewMockPaymentGateway(s.ctrl)
	s.provider = mock.NewMockProviderClient(s.ctrl)
	s.publisher = mock.NewMockEventPublisher(s.ctrl)

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	reconciler := usecase.NewReconciler(
		s.transactions, s.orders, s.locks, s.jobs, s.txLogs,
		s.provider, clk, testLogger(), cfg.Reconcile, cfg.Provider,
	)
	s.handlers = worker.NewHandlers(s.transactions, s.gateway, reconciler, s.publisher, testLogger())
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

func (s *HandlersTestSuite) TestPollWithNoTransactionIsDone() {
	s.gateway.EXPECT().GetPayment(gomock.Any(), "12345678").
		Return(&gateway.Payment{ID: "12345678", Status: "pending", ExternalReference: "order-abc"}, nil)
	s.transactions.EXPECT().FindByPaymentRef(gomock.Any(), "12345678").Return(nil, notFound())
	s.transactions.EXPECT().FindByPaymentRef(gomock.Any(), "order-abc").Return(nil, notFound())
	s.transactions.EXPECT().FindByMetadataPaymentID(gomock.Any(), "12345678").Return(nil, notFound())

	job := &queue.Job{ID: uuid.New(), Kind: queue.KindPollPaymentStatus, Payload: []byte(`{"payment_id":"12345678"}`)}
	s.NoError(s.handlers.PollPaymentStatus(context.Background(), job))
}

func (s *HandlersTestSuite) TestPollFindsTransactionByCheckoutMetadata() {
	tx := builder.NewTransactionBuilder().WithPaymentStatus(transaction.PaymentPending).Build()

	s.gateway.EXPECT().GetPayment(gomock.Any(), "12345678").
		Return(&gateway.Payment{ID: "12345678", Status: "in_process"}, nil)
	s.transactions.EXPECT().FindByPaymentRef(gomock.Any(), "12345678").Return(nil, notFound())
	s.transactions.EXPECT().FindByMetadataPaymentID(gomock.Any(), "12345678").Return(tx, nil)
	s.transactions.EXPECT().UpdateFromGateway(gomock.Any(), tx.ID, "12345678", transaction.PaymentPending, "", "").Return(nil)

	job := &queue.Job{ID: uuid.New(), Kind: queue.KindPollPaymentStatus, Payload: []byte(`{"payment_id":"12345678"}`)}
	s.NoError(s.handlers.PollPaymentStatus(context.Background(), job))
}

func (s *HandlersTestSuite) TestPollUpdatesStatusWithoutReconcilingPending() {
	tx := builder.NewTransactionBuilder().WithPaymentStatus(transaction.PaymentPending).Build()

	s.gateway.EXPECT().GetPayment(gomock.Any(), "12345678").
		Return(&gateway.Payment{ID: "12345678", Status: "in_process"}, nil)
	s.transactions.EXPECT().FindByPaymentRef(gomock.Any(), "12345678").Return(tx, nil)
	s.transactions.EXPECT().UpdateFromGateway(gomock.Any(), tx.ID, "12345678", transaction.PaymentPending, "", "").Return(nil)

	job := &queue.Job{ID: uuid.New(), Kind: queue.KindPollPaymentStatus, Payload: []byte(`{"payment_id":"12345678"}`)}
	s.NoError(s.handlers.PollPaymentStatus(context.Background(), job))
}

func (s *HandlersTestSuite) TestPollGatewayErrorPropagates() {
	s.gateway.EXPECT().GetPayment(gomock.Any(), "12345678").
		Return(nil, errs.Mark(errs.New("503"), errs.ErrGatewayUnavailable))

	job := &queue.Job{ID: uuid.New(), Kind: queue.KindPollPaymentStatus, Payload: []byte(`{"payment_id":"12345678"}`)}
	s.Error(s.handlers.PollPaymentStatus(context.Background(), job))
}

func (s *HandlersTestSuite) TestDispatchJobRequiresTransactionID() {
	job := &queue.Job{ID: uuid.New(), Kind: queue.KindDispatchTransaction, Payload: []byte(`{}`)}
	s.Error(s.handlers.DispatchTransaction(context.Background(), job))
}

func (s *HandlersTestSuite) TestNotifyPublishesEvent() {
	txID := uuid.New()
	job := &queue.Job{
		ID:      uuid.New(),
		Kind:    queue.KindNotifyDownstream,
		Payload: []byte(`{"transaction_id":"` + txID.String() + `","outcome":"dispatched"}`),
	}

	var published notify.Event
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e notify.Event) error {
			published = e
			return nil
		})

	s.NoError(s.handlers.NotifyDownstream(context.Background(), job))
	s.Equal(txID.String(), published.TransactionID)
	s.Equal("dispatched", published.Outcome)
	s.NotEmpty(published.OccurredAt)
}

func (s *HandlersTestSuite) TestNotifyRejectsMalformedTransactionID() {
	job := &queue.Job{
		ID:      uuid.New(),
		Kind:    queue.KindNotifyDownstream,
		Payload: []byte(`{"transaction_id":"not-a-uuid","outcome":"dispatched"}`),
	}
	s.Error(s.handlers.NotifyDownstream(context.Background(), job))
}
