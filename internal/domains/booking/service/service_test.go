package service_test

import (
	"carehub/config"
	otelMocks "carehub/infras/otel/mocks"
	"carehub/internal/domains/booking/event"
	"carehub/internal/domains/booking/mocks"
	"carehub/internal/domains/booking/model"
	"carehub/internal/domains/booking/model/dto"
	"carehub/internal/domains/booking/service"
	nannyDto "carehub/internal/domains/nanny/model/dto"
	nannyService "carehub/internal/domains/nanny/service"
	nannyMocks "carehub/internal/domains/nanny/service/mocks"
	cacheMocks "carehub/shared/cache/mocks"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/failure"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bookingID     = "0b7f2a9e-5d1c-4c43-8f57-2a6a3c9d0001"
	parentUserID  = "0b7f2a9e-5d1c-4c43-8f57-2a6a3c9d0002"
	nannyUserID   = "0b7f2a9e-5d1c-4c43-8f57-2a6a3c9d0003"
	nannyID       = "0b7f2a9e-5d1c-4c43-8f57-2a6a3c9d0004"
	strangerID    = "0b7f2a9e-5d1c-4c43-8f57-2a6a3c9d0005"
	otherParentID = "0b7f2a9e-5d1c-4c43-8f57-2a6a3c9d0006"
)

type fixture struct {
	repo      *mocks.MockBooking
	publisher *mocks.MockPublisher
	nanny     *nannyMocks.MockNanny
	cache     *cacheMocks.MockRedisCache
	cfg       *config.Config
	svc       service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      mocks.NewMockBooking(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		nanny:     nannyMocks.NewMockNanny(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		cfg:       &config.Config{},
	}

	f.cfg.Cache.TTL = 3600
	f.svc = service.New(f.repo, f.nanny, f.publisher, f.cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f *fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

func (f *fixture) publishAny() {
	f.publisher.EXPECT().StatusChanged(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func asParent(id string) context.Context {
	return as(id, constant.RoleParent)
}

func asNanny() context.Context {
	return as(nannyUserID, constant.RoleNanny)
}

func as(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func futureStart() time.Time {
	return time.Now().Add(72 * time.Hour).Truncate(time.Hour)
}

func booking(status model.Status) model.Booking {
	start := futureStart()

	return model.Booking{
		ID:               bookingID,
		ParentID:         parentUserID,
		NannyID:          nannyID,
		NannyUserID:      nannyUserID,
		StartTime:        start,
		EndTime:          start.Add(3 * time.Hour),
		NumberOfDays:     2,
		ServiceType:      model.ServiceTypePartTime,
		NumberOfChildren: 1,
		Status:           status,
		TotalPrice:       120,
		PaymentStatus:    model.PaymentStatusPending,
	}
}

func createRequest() dto.CreateBookingRequest {
	start := futureStart()

	return dto.CreateBookingRequest{
		NannyID:          nannyID,
		StartTime:        start,
		EndTime:          start.Add(3 * time.Hour),
		NumberOfDays:     2,
		NumberOfChildren: 2,
		ChildrenAges:     []int64{3, 6},
		Location: dto.Location{
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
		},
		ServiceType: string(model.ServiceTypePartTime),
	}
}

func rateOf(hourlyRate float64) nannyDto.HourlyRateResponse {
	return nannyDto.HourlyRateResponse{NannyID: nannyID, UserID: nannyUserID, HourlyRate: hourlyRate}
}

func assertFailure(t *testing.T, err error, code int, msg string) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, code, failure.GetCode(err))

	if msg != "" {
		assert.Equal(t, msg, err.Error())
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       func() dto.CreateBookingRequest
		enforce   bool
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "nanny cannot create",
			ctx:  asNanny(),
			req:  createRequest,
			setupMock: func(_ *fixture) {
			},
			wantCode: http.StatusForbidden,
			wantMsg:  service.MsgOnlyParentsCreate,
		},
		{
			name: "missing location",
			ctx:  asParent(parentUserID),
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.Location = dto.Location{}

				return req
			},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing children ages",
			ctx:  asParent(parentUserID),
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.ChildrenAges = nil

				return req
			},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "childrenAges is required",
		},
		{
			name: "unknown service type",
			ctx:  asParent(parentUserID),
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.ServiceType = "overnight"

				return req
			},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   service.MsgInvalidServiceType,
		},
		{
			name: "unknown nanny aborts before any write",
			ctx:  asParent(parentUserID),
			req:  createRequest,
			setupMock: func(f *fixture) {
				f.nanny.EXPECT().
					GetHourlyRate(gomock.Any(), nannyID).
					Return(nannyDto.HourlyRateResponse{}, failure.NotFound(nannyService.MsgNannyNotFound))
			},
			wantCode: http.StatusNotFound,
			wantMsg:  nannyService.MsgNannyNotFound,
		},
		{
			name: "rate lookup failure aborts before any write",
			ctx:  asParent(parentUserID),
			req:  createRequest,
			setupMock: func(f *fixture) {
				f.nanny.EXPECT().
					GetHourlyRate(gomock.Any(), nannyID).
					Return(nannyDto.HourlyRateResponse{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "end before start",
			ctx:  asParent(parentUserID),
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.EndTime = req.StartTime.Add(-time.Hour)

				return req
			},
			setupMock: func(f *fixture) {
				f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  model.MsgEndBeforeStart,
		},
		{
			name: "start in the past",
			ctx:  asParent(parentUserID),
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.StartTime = time.Now().Add(-2 * time.Hour)
				req.EndTime = time.Now().Add(time.Hour)

				return req
			},
			setupMock: func(f *fixture) {
				f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  model.MsgStartInPast,
		},
		{
			name: "children ages mismatch when enforced",
			ctx:  asParent(parentUserID),
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.ChildrenAges = []int64{3}

				return req
			},
			enforce: true,
			setupMock: func(f *fixture) {
				f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  model.MsgChildrenAges,
		},
		{
			name: "insert failure",
			ctx:  asParent(parentUserID),
			req:  createRequest,
			setupMock: func(f *fixture) {
				f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cfg.App.Booking.EnforceChildrenAges = tt.enforce
			tt.setupMock(f)

			_, err := f.svc.Create(tt.ctx, tt.req())

			assertFailure(t, err, tt.wantCode, tt.wantMsg)
		})
	}
}

func TestBookingService_Create_ChildrenAgesNotEnforcedByDefault(t *testing.T) {
	f := newFixture(t)
	store := newBookingStore(f.repo)
	f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)

	req := createRequest()
	req.ChildrenAges = []int64{3}

	res, err := f.svc.Create(asParent(parentUserID), req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, res.ChildrenAges)
	assert.Equal(t, 1, store.writeCount())
}

func TestBookingService_Create_DefaultsToOneDay(t *testing.T) {
	f := newFixture(t)
	newBookingStore(f.repo)
	f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(18), nil)

	req := createRequest()
	req.NumberOfDays = 0

	res, err := f.svc.Create(asParent(parentUserID), req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, res.NumberOfDays)
	assert.InDelta(t, 54, res.TotalPrice, 0.001)
}

func TestBookingService_Create_EmptyChildrenAges(t *testing.T) {
	f := newFixture(t)
	store := newBookingStore(f.repo)
	f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)

	req := createRequest()
	req.ChildrenAges = []int64{}

	res, err := f.svc.Create(asParent(parentUserID), req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Empty(t, res.ChildrenAges)
	assert.Equal(t, 1, store.writeCount())
}

// The replica lags the primary, so Create and every transition read their own writes from the primary.
func TestBookingService_ReadsOwnWritesFromPrimary(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)

	var written model.Booking

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			written = booking

			return nil
		})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().
		GetPrimary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
			return written, nil
		}).
		Times(3)
	f.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), model.StatusPending, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (bool, error) {
			written = apply(written, fields)

			return true, nil
		})

	created, err := f.svc.Create(asParent(parentUserID), createRequest())
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusPending), created.Status)

	confirmed, err := f.svc.Confirm(asNanny(), created.ID, dto.ConfirmBookingRequest{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusConfirmed), confirmed.Status)
}

// Scenario A then B: the nanny confirms and the price stays as computed at creation.
func TestBookingService_CreateThenConfirm(t *testing.T) {
	f := newFixture(t)
	store := newBookingStore(f.repo)
	f.nanny.EXPECT().GetHourlyRate(gomock.Any(), nannyID).Return(rateOf(20), nil)

	created, err := f.svc.Create(asParent(parentUserID), createRequest())
	require.NoError(t, err)

	assert.InDelta(t, 120, created.TotalPrice, 0.001)
	assert.Equal(t, string(model.StatusPending), created.Status)
	assert.Equal(t, string(model.PaymentStatusPending), created.PaymentStatus)
	assert.Equal(t, parentUserID, created.Parent.ID)
	assert.Equal(t, nannyUserID, created.Nanny.ID)

	f.publisher.EXPECT().
		StatusChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt event.StatusChanged) error {
			assert.Equal(t, created.ID, evt.BookingID)
			assert.Equal(t, "pending", evt.From)
			assert.Equal(t, "confirmed", evt.To)
			assert.Equal(t, "confirm", evt.Operation)
			assert.Equal(t, nannyUserID, evt.ActorID)

			return nil
		})

	confirmed, err := f.svc.Confirm(asNanny(), created.ID, dto.ConfirmBookingRequest{Message: "See you then"})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusConfirmed), confirmed.Status)
	require.NotNil(t, confirmed.NannyMessage)
	assert.Equal(t, "See you then", *confirmed.NannyMessage)
	assert.InDelta(t, 120, confirmed.TotalPrice, 0.001)
	assert.InDelta(t, 120, store.get(created.ID).TotalPrice, 0.001)
}

// Scenario C: a stranger cannot cancel and nothing is written.
func TestBookingService_Cancel_ByStranger(t *testing.T) {
	f := newFixture(t)
	store := newBookingStore(f.repo, booking(model.StatusPending))

	_, err := f.svc.Cancel(asParent(strangerID), bookingID, dto.CancelBookingRequest{CancellationReason: "mine now"})

	assertFailure(t, err, http.StatusForbidden, "Not authorized to cancel this booking")
	assert.Equal(t, model.StatusPending, store.get(bookingID).Status)
	assert.Zero(t, store.writeCount())
}

// Scenario D.
func TestBookingService_Complete_Pending(t *testing.T) {
	f := newFixture(t)
	store := newBookingStore(f.repo, booking(model.StatusPending))

	_, err := f.svc.Complete(asNanny(), bookingID, dto.CompleteBookingRequest{CompletionNotes: "done"})

	assertFailure(t, err, http.StatusBadRequest, "Cannot mark as completed a booking with status: pending")
	assert.Zero(t, store.writeCount())
}

// Scenario E: a cancelled booking cannot be confirmed afterwards.
func TestBookingService_CancelConfirmedThenConfirm(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	store := newBookingStore(f.repo, booking(model.StatusConfirmed))

	cancelled, err := f.svc.Cancel(asParent(parentUserID), bookingID, dto.CancelBookingRequest{CancellationReason: "Schedule conflict"})
	require.NoError(t, err)

	assert.Equal(t, string(model.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "Schedule conflict", *cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledBy)
	assert.Equal(t, "parent", *cancelled.CancelledBy)

	_, err = f.svc.Confirm(asNanny(), bookingID, dto.ConfirmBookingRequest{})

	time.Sleep(10 * time.Millisecond)

	assertFailure(t, err, http.StatusBadRequest, "Cannot confirm a booking with status: cancelled")
	assert.Equal(t, 1, store.writeCount())
}

func TestBookingService_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		seed       model.Status
		run        func(svc service.Booking) (dto.BookingResponse, error)
		wantStatus model.Status
		wantCode   int
		wantMsg    string
		check      func(t *testing.T, stored model.Booking)
	}{
		{
			name: "nanny declines pending",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Decline(asNanny(), bookingID, dto.DeclineBookingRequest{Message: "Not available"})
			},
			wantStatus: model.StatusCancelled,
			check: func(t *testing.T, stored model.Booking) {
				t.Helper()
				require.NotNil(t, stored.CancelledBy)
				assert.Equal(t, model.CancelledByNanny, *stored.CancelledBy)
				assert.Equal(t, "Not available", *stored.CancellationReason)
			},
		},
		{
			name: "decline without reason",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Decline(asNanny(), bookingID, dto.DeclineBookingRequest{Message: "  "})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  service.MsgDeclineReasonNeeded,
		},
		{
			name: "decline reason too long",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Decline(asNanny(), bookingID, dto.DeclineBookingRequest{Message: strings.Repeat("x", 1001)})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "message must be less than or equal to 1000",
		},
		{
			name: "cancellation reason too long",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Cancel(asParent(parentUserID), bookingID, dto.CancelBookingRequest{
					CancellationReason: strings.Repeat("x", 50000),
				})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "cancellationReason must be less than or equal to 1000",
		},
		{
			name: "confirm message too long",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Confirm(asNanny(), bookingID, dto.ConfirmBookingRequest{Message: strings.Repeat("x", 1001)})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "message must be less than or equal to 1000",
		},
		{
			name: "completion notes too long",
			seed: model.StatusConfirmed,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Complete(asNanny(), bookingID, dto.CompleteBookingRequest{CompletionNotes: strings.Repeat("x", 2001)})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "completionNotes must be less than or equal to 2000",
		},
		{
			name: "decline confirmed",
			seed: model.StatusConfirmed,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Decline(asNanny(), bookingID, dto.DeclineBookingRequest{Message: "Sick"})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Cannot decline a booking with status: confirmed",
		},
		{
			name: "parent cancels pending",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Cancel(asParent(parentUserID), bookingID, dto.CancelBookingRequest{})
			},
			wantStatus: model.StatusCancelled,
			check: func(t *testing.T, stored model.Booking) {
				t.Helper()
				assert.Nil(t, stored.CancellationReason)
				assert.Equal(t, model.CancelledByParent, *stored.CancelledBy)
			},
		},
		{
			name: "cancel completed",
			seed: model.StatusCompleted,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Cancel(asParent(parentUserID), bookingID, dto.CancelBookingRequest{})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Cannot cancel a booking with status: completed",
		},
		{
			name: "nanny cannot cancel",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Cancel(asNanny(), bookingID, dto.CancelBookingRequest{})
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "Not authorized to cancel this booking",
		},
		{
			name: "parent cannot confirm",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Confirm(asParent(parentUserID), bookingID, dto.ConfirmBookingRequest{})
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "Not authorized to confirm this booking",
		},
		{
			name: "authorization is checked before status",
			seed: model.StatusCompleted,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Complete(asParent(otherParentID), bookingID, dto.CompleteBookingRequest{})
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "Not authorized to complete this booking",
		},
		{
			name: "nanny completes confirmed",
			seed: model.StatusConfirmed,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Complete(asNanny(), bookingID, dto.CompleteBookingRequest{CompletionNotes: "Great kids"})
			},
			wantStatus: model.StatusCompleted,
			check: func(t *testing.T, stored model.Booking) {
				t.Helper()
				assert.Equal(t, "Great kids", *stored.CompletionNotes)
				assert.Equal(t, nannyUserID, stored.ModifiedBy)
			},
		},
		{
			name: "complete completed",
			seed: model.StatusCompleted,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Complete(asNanny(), bookingID, dto.CompleteBookingRequest{})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Cannot mark as completed a booking with status: completed",
		},
		{
			name: "malformed id",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Confirm(asNanny(), "42", dto.ConfirmBookingRequest{})
			},
			wantCode: http.StatusNotFound,
			wantMsg:  service.MsgBookingNotFound,
		},
		{
			name: "unknown id",
			seed: model.StatusPending,
			run: func(svc service.Booking) (dto.BookingResponse, error) {
				return svc.Confirm(asNanny(), otherParentID, dto.ConfirmBookingRequest{})
			},
			wantCode: http.StatusNotFound,
			wantMsg:  service.MsgBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.publishAny()
			store := newBookingStore(f.repo, booking(tt.seed))

			res, err := tt.run(f.svc)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)
				assert.Equal(t, tt.seed, store.get(bookingID).Status)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(tt.wantStatus), res.Status)

			stored := store.get(bookingID)
			assert.Equal(t, tt.wantStatus, stored.Status)
			assert.InDelta(t, 120, stored.TotalPrice, 0.001)

			if tt.check != nil {
				tt.check(t, stored)
			}
		})
	}
}

func TestBookingService_Transition_LosesRace(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil),
		f.repo.EXPECT().UpdateStatus(gomock.Any(), bookingID, model.StatusPending, gomock.Any()).Return(false, nil),
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(booking(model.StatusCancelled), nil),
	)

	_, err := f.svc.Confirm(asNanny(), bookingID, dto.ConfirmBookingRequest{Message: "On my way"})

	assertFailure(t, err, http.StatusBadRequest, "Cannot confirm a booking with status: cancelled")
}

func TestBookingService_Transition_ConcurrentWritersOneWins(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	store := newBookingStore(f.repo, booking(model.StatusPending))

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		_, errs[0] = f.svc.Decline(asNanny(), bookingID, dto.DeclineBookingRequest{Message: "Changed plans"})
	}()

	go func() {
		defer wg.Done()

		_, errs[1] = f.svc.Confirm(asNanny(), bookingID, dto.ConfirmBookingRequest{})
	}()

	wg.Wait()
	time.Sleep(10 * time.Millisecond)

	failed := 0

	for _, err := range errs {
		if err != nil {
			failed++

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		}
	}

	stored := store.get(bookingID)

	switch stored.Status {
	case model.StatusCancelled:
		assert.Equal(t, 1, failed)
	case model.StatusConfirmed:
		assert.Equal(t, 1, failed)
	default:
		t.Fatalf("unexpected status %s", stored.Status)
	}

	assert.Equal(t, 1, store.writeCount())
}

func TestBookingService_Transition_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	newBookingStore(f.repo, booking(model.StatusPending))
	f.publisher.EXPECT().StatusChanged(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := f.svc.Confirm(asNanny(), bookingID, dto.ConfirmBookingRequest{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusConfirmed), res.Status)
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "parent reads own booking",
			ctx:  asParent(parentUserID),
			id:   bookingID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				newBookingStore(f.repo, booking(model.StatusPending))
			},
		},
		{
			name: "nanny reads own booking",
			ctx:  asNanny(),
			id:   bookingID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				newBookingStore(f.repo, booking(model.StatusPending))
			},
		},
		{
			name: "stranger is rejected",
			ctx:  asParent(strangerID),
			id:   bookingID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				newBookingStore(f.repo, booking(model.StatusPending))
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "Not authorized to view this booking",
		},
		{
			name: "stranger is rejected on a cache hit",
			ctx:  asParent(strangerID),
			id:   bookingID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "booking:get:"+bookingID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Booking) = booking(model.StatusPending)

						return nil
					})
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "Not authorized to view this booking",
		},
		{
			name:      "malformed id",
			ctx:       asParent(parentUserID),
			id:        "abc",
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusNotFound,
			wantMsg:   service.MsgBookingNotFound,
		},
		{
			name: "unknown id",
			ctx:  asParent(parentUserID),
			id:   strangerID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				newBookingStore(f.repo)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  service.MsgBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(tt.ctx, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, bookingID, res.ID)
		})
	}
}

func TestBookingService_Get_CachesOnlyTerminalBookings(t *testing.T) {
	tests := []struct {
		status    model.Status
		wantSaved bool
	}{
		{status: model.StatusPending, wantSaved: false},
		{status: model.StatusConfirmed, wantSaved: false},
		{status: model.StatusCancelled, wantSaved: true},
		{status: model.StatusCompleted, wantSaved: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockBooking(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			cfg := &config.Config{}
			svc := service.New(repo, nannyMocks.NewMockNanny(ctrl), mocks.NewMockPublisher(ctrl), cfg, cache, otelMocks.NewOtel())

			saved := make(chan string, 1)

			cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			cache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
					saved <- key

					return nil
				}).
				AnyTimes()
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(tt.status), nil)

			res, err := svc.Get(asParent(parentUserID), bookingID)
			require.NoError(t, err)
			assert.Equal(t, string(tt.status), res.Status)

			select {
			case key := <-saved:
				assert.True(t, tt.wantSaved, "unexpected cache save")
				assert.Equal(t, "booking:get:"+bookingID, key)
			case <-time.After(50 * time.Millisecond):
				assert.False(t, tt.wantSaved, "booking was not cached")
			}
		})
	}
}

func TestBookingService_GetParentBookings(t *testing.T) {
	t.Run("lists the caller's bookings newest first", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, parentUserID, args[model.FieldParentID])
				assert.Equal(t, "confirmed", args[model.FieldStatus])

				return 1, nil
			})
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, "bookings.created_at", params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.Booking{booking(model.StatusConfirmed)}, nil
			})

		res, err := f.svc.GetParentBookings(asParent(parentUserID), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListBookingsRequest{Status: "confirmed"})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("nanny is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetParentBookings(asNanny(), gDto.QueryParams{}, dto.ListBookingsRequest{})

		assertFailure(t, err, http.StatusForbidden, service.MsgOnlyParentsAccess)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetParentBookings(asParent(parentUserID), gDto.QueryParams{}, dto.ListBookingsRequest{Status: "declined"})

		assertFailure(t, err, http.StatusBadRequest, "")
	})
}

func TestBookingService_GetNannyBookings(t *testing.T) {
	t.Run("lists bookings of the caller's profile", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()
		f.nanny.EXPECT().GetByUserID(gomock.Any(), nannyUserID).Return(nannyDto.NannyResponse{ID: nannyID, UserID: nannyUserID}, nil)
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, nannyID, args[model.FieldNannyID])

				return 0, nil
			})
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{}, nil)

		res, err := f.svc.GetNannyBookings(asNanny(), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListBookingsRequest{})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Empty(t, res.Bookings)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("no nanny profile", func(t *testing.T) {
		f := newFixture(t)
		f.nanny.EXPECT().
			GetByUserID(gomock.Any(), nannyUserID).
			Return(nannyDto.NannyResponse{}, failure.NotFound(nannyService.MsgProfileNotFound))

		_, err := f.svc.GetNannyBookings(asNanny(), gDto.QueryParams{}, dto.ListBookingsRequest{})

		assertFailure(t, err, http.StatusNotFound, nannyService.MsgProfileNotFound)
	})

	t.Run("parent is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetNannyBookings(asParent(parentUserID), gDto.QueryParams{}, dto.ListBookingsRequest{})

		assertFailure(t, err, http.StatusForbidden, service.MsgOnlyNanniesAccess)
	})
}
