package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/metrics"
	"zistino-dispatch/internal/service/orders"
	testlog "zistino-dispatch/internal/testutil"
)

func f(v float64) *float64 { return &v }

func located(id, status string) orders.Event {
	return orders.Event{
		OrderID:   id,
		Status:    status,
		Address:   "Valiasr St 12",
		Phone:     "+989121234567",
		Latitude:  f(35.7010),
		Longitude: f(51.4010),
		CreatedAt: time.Date(2025, 3, 14, 10, 20, 0, 0, time.UTC),
	}
}

func TestProcessor_Created_AssignsOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	p := orders.NewProcessor(d, nil)

	d.EXPECT().
		Assign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o domain.Order) (domain.AssignResult, error) {
			require.Equal(t, "order-1", o.ID)
			require.Equal(t, "Valiasr St 12", o.Address)
			require.InDelta(t, 35.7010, *o.Latitude, 1e-9)
			return domain.AssignResult{}, nil
		})

	require.NoError(t, p.Handle(context.Background(), located("order-1", "  CREATED  ")))
}

func TestProcessor_Created_RecoverableOutcomesAreAcked(t *testing.T) {
	t.Parallel()

	for _, outcome := range []error{apperr.ErrNoZone, apperr.ErrNoDriver, apperr.ErrConflict, apperr.ErrInvalid} {
		ctrl := gomock.NewController(t)
		d := NewMockDeliveryPort(ctrl)
		d.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(domain.AssignResult{}, outcome)

		err := orders.NewProcessor(d, nil).Handle(context.Background(), located("order-1", "created"))
		require.NoError(t, err, outcome.Error())
	}
}

func TestProcessor_Created_InfrastructureErrorReturned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	wantErr := errors.New("db down")
	d.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(domain.AssignResult{}, wantErr)

	err := orders.NewProcessor(d, nil).Handle(context.Background(), located("order-1", "created"))
	require.ErrorIs(t, err, wantErr)
}

func TestProcessor_Created_FetchesMissingLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	src := NewMockOrderSource(ctrl)
	p := orders.NewProcessor(d, nil).WithOrderSource(src)

	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	src.EXPECT().GetByID(gomock.Any(), "order-7").Return(&domain.Order{
		ID:           "order-7",
		Address:      "Enghelab Sq",
		Phone:        "+989120000000",
		Latitude:     f(35.70),
		Longitude:    f(51.39),
		DeliveryDate: &date,
	}, nil)
	d.EXPECT().
		Assign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o domain.Order) (domain.AssignResult, error) {
			require.Equal(t, "order-7", o.ID)
			require.Equal(t, "Enghelab Sq", o.Address)
			require.Equal(t, "+989121111111", o.Phone, "event fields win over fetched ones")
			require.InDelta(t, 35.70, *o.Latitude, 1e-9)
			require.Equal(t, &date, o.DeliveryDate)
			return domain.AssignResult{}, nil
		})

	err := p.Handle(context.Background(), orders.Event{OrderID: "order-7", Status: "created", Phone: "+989121111111"})
	require.NoError(t, err)
}

func TestProcessor_Created_SkipsLookupWhenLocated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	src := NewMockOrderSource(ctrl)
	p := orders.NewProcessor(d, nil).WithOrderSource(src)

	d.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(domain.AssignResult{}, nil)
	require.NoError(t, p.Handle(context.Background(), located("order-1", "created")))
}

func TestProcessor_Created_LookupFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	src := NewMockOrderSource(ctrl)
	rec := testlog.New()
	p := orders.NewProcessor(d, rec.Logger()).WithOrderSource(src)

	wantErr := errors.New("orders service unavailable")
	src.EXPECT().GetByID(gomock.Any(), "order-8").Return(nil, wantErr)
	err := p.Handle(context.Background(), orders.Event{OrderID: "order-8", Status: "created"})
	require.ErrorIs(t, err, wantErr)

	src.EXPECT().GetByID(gomock.Any(), "order-9").Return(nil, nil)
	err = p.Handle(context.Background(), orders.Event{OrderID: "order-9", Status: "created"})
	require.NoError(t, err)
	require.True(t, rec.Has("order not found in orders service"))
}

func TestProcessor_CanceledAndDeleted_CancelDelivery(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"canceled", "cancelled", "deleted"} {
		ctrl := gomock.NewController(t)
		d := NewMockDeliveryPort(ctrl)
		d.EXPECT().
			UpdateStatus(gomock.Any(), "order-2", domain.DeliveryCancelled).
			Return(domain.StatusResult{}, nil)

		err := orders.NewProcessor(d, nil).Handle(context.Background(), orders.Event{OrderID: "order-2", Status: status})
		require.NoError(t, err, status)
	}
}

func TestProcessor_Completed_CompletesDelivery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	d.EXPECT().
		UpdateStatus(gomock.Any(), "order-3", domain.DeliveryCompleted).
		Return(domain.StatusResult{}, nil)

	err := orders.NewProcessor(d, nil).Handle(context.Background(), orders.Event{OrderID: "order-3", Status: "completed"})
	require.NoError(t, err)
}

func TestProcessor_StatusChange_Outcomes(t *testing.T) {
	t.Parallel()

	for _, outcome := range []error{apperr.ErrNotFound, apperr.ErrConflict} {
		ctrl := gomock.NewController(t)
		d := NewMockDeliveryPort(ctrl)
		d.EXPECT().UpdateStatus(gomock.Any(), "order-4", gomock.Any()).Return(domain.StatusResult{}, outcome)

		err := orders.NewProcessor(d, nil).Handle(context.Background(), orders.Event{OrderID: "order-4", Status: "completed"})
		require.NoError(t, err, outcome.Error())
	}

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	wantErr := errors.New("tx failed")
	d.EXPECT().UpdateStatus(gomock.Any(), "order-4", gomock.Any()).Return(domain.StatusResult{}, wantErr)

	err := orders.NewProcessor(d, nil).Handle(context.Background(), orders.Event{OrderID: "order-4", Status: "deleted"})
	require.ErrorIs(t, err, wantErr)
}

func TestProcessor_UnknownStatusIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)

	require.NoError(t, orders.NewProcessor(d, nil).Handle(context.Background(), orders.Event{OrderID: "o", Status: "cooking"}))
}

func TestProcessor_CountsEventsByAction(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewMockDeliveryPort(ctrl)
	d.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(domain.AssignResult{}, nil).Times(2)
	d.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.StatusResult{}, nil)

	events := metrics.NewOrderEventsTotal()
	p := orders.NewProcessor(d, nil).WithEventCounter(events)

	ctx := context.Background()
	require.NoError(t, p.Handle(ctx, located("a", "created")))
	require.NoError(t, p.Handle(ctx, located("b", "created")))
	require.NoError(t, p.Handle(ctx, located("a", "deleted")))
	require.NoError(t, p.Handle(ctx, located("c", "pending")))

	require.InDelta(t, 2, testutil.ToFloat64(events.WithLabelValues("assign")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(events.WithLabelValues("cancel")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(events.WithLabelValues("ignore")), 0)
}
