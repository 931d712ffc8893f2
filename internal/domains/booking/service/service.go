package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"carehub/config"
	"carehub/infras/otel"
	"carehub/internal/domains/booking/event"
	"carehub/internal/domains/booking/model"
	"carehub/internal/domains/booking/model/dto"
	"carehub/internal/domains/booking/repository"
	nannyService "carehub/internal/domains/nanny/service"
	"carehub/shared"
	"carehub/shared/cache"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/failure"
	gModel "carehub/shared/model"
	"carehub/shared/timezone"
	"carehub/shared/validator"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking       = "booking:get"
	cacheGetParentBooking = "booking:parent"
	cacheGetNannyBooking  = "booking:nanny"

	MsgBookingNotFound     = "No such booking"
	MsgOnlyParentsCreate   = "Only parents can create bookings"
	MsgOnlyParentsAccess   = "Only parents can access this resource"
	MsgOnlyNanniesAccess   = "Only nannies can access this resource"
	MsgInvalidServiceType  = "Service type must be either part-time or full-time"
	MsgDeclineReasonNeeded = "Please provide a reason for declining"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetParentBookings(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (dto.GetBookingsResponse, error)
	GetNannyBookings(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Decline(ctx context.Context, id string, req dto.DeclineBookingRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string, req dto.CompleteBookingRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	nanny     nannyService.Nanny
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	nanny nannyService.Nanny,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		nanny:     nanny,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func actorFrom(ctx context.Context) model.Actor {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return model.Actor{UserID: userID, Role: role}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := actorFrom(ctx)

	if !model.Can(actor, model.OperationCreate, model.Booking{}) {
		return res, failure.Forbidden(MsgOnlyParentsCreate) // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if !model.ServiceType(req.ServiceType).Valid() {
		return res, failure.BadRequestFromString(MsgInvalidServiceType) // nolint:wrapcheck
	}

	rate, err := s.nanny.GetHourlyRate(ctx, req.NannyID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = model.ValidateSchedule(req.StartTime, req.EndTime, timezone.Now()); err != nil {
		return res, err
	}

	if s.cfg.App.Booking.EnforceChildrenAges {
		if err = model.ValidateChildrenAges(req.NumberOfChildren, req.ChildrenAges); err != nil {
			return res, err
		}
	}

	price := model.ComputePrice(rate.HourlyRate, req.StartTime, req.EndTime, req.Days())
	booking := req.ToModel(actor.UserID, rate.UserID, price)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().
		Str("booking_id", booking.ID).
		Str("nanny_id", booking.NannyID).
		Str("actor", actor.UserID).
		Float64("total_price", booking.TotalPrice).
		Msg("booking created")

	s.invalidateLists(ctx)

	created, err := s.loadPrimary(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound(MsgBookingNotFound) // nolint:wrapcheck
	}

	actor := actorFrom(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	var booking model.Booking

	if err = s.cache.Get(ctx, cacheKey, &booking); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")
	} else {
		if booking, err = s.load(ctx, id); err != nil {
			return res, err
		}

		// Only terminal bookings are cached, they can no longer change.
		if booking.Status.IsTerminal() {
			go func() {
				c := context.WithoutCancel(ctx)

				if err := s.cache.Save(c, cacheKey, booking, s.cfg.Cache.TTL); err != nil {
					log.Error().Err(err).Msg("failed to save booking to cache")
				}
			}()
		}
	}

	if !model.Can(actor, model.OperationView, booking) {
		return res, model.Forbidden(model.OperationView) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetParentBookings(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetParentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := actorFrom(ctx)
	if actor.UserID == constant.Empty || actor.Role != constant.RoleParent {
		return res, failure.Forbidden(MsgOnlyParentsAccess) // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	return s.list(ctx, cacheGetParentBooking, params, req.ToFilterGroup(model.FieldParentID, actor.UserID))
}

func (s *serviceImpl) GetNannyBookings(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNannyBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := actorFrom(ctx)
	if actor.UserID == constant.Empty || actor.Role != constant.RoleNanny {
		return res, failure.Forbidden(MsgOnlyNanniesAccess) // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	profile, err := s.nanny.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.list(ctx, cacheGetNannyBooking, params, req.ToFilterGroup(model.FieldNannyID, profile.ID))
}

// list pages bookings newest first.
func (s *serviceImpl) list(ctx context.Context, prefix string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	params.SortBy = model.Column(model.FieldCreatedAt)
	params.SortDir = gDto.SortDirDesc

	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.BookingResponse, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return dto.BookingResponse{}, err //nolint:wrapcheck
	}

	fields := map[string]any{model.FieldCancelledBy: string(model.CancelledByParent)}

	if req.CancellationReason != constant.Empty {
		fields[model.FieldCancellationReason] = req.CancellationReason
	}

	return s.transition(ctx, model.OperationCancel, id, fields)
}

func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return dto.BookingResponse{}, err //nolint:wrapcheck
	}

	fields := map[string]any{}

	if req.Message != constant.Empty {
		fields[model.FieldNannyMessage] = req.Message
	}

	return s.transition(ctx, model.OperationConfirm, id, fields)
}

// Decline ends a pending booking on the nanny's side, recorded as a nanny cancellation.
func (s *serviceImpl) Decline(ctx context.Context, id string, req dto.DeclineBookingRequest) (dto.BookingResponse, error) {
	if strings.TrimSpace(req.Message) == constant.Empty {
		return dto.BookingResponse{}, failure.BadRequestFromString(MsgDeclineReasonNeeded) // nolint:wrapcheck
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return dto.BookingResponse{}, err //nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldCancellationReason: req.Message,
		model.FieldCancelledBy:        string(model.CancelledByNanny),
	}

	return s.transition(ctx, model.OperationDecline, id, fields)
}

func (s *serviceImpl) Complete(ctx context.Context, id string, req dto.CompleteBookingRequest) (dto.BookingResponse, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return dto.BookingResponse{}, err //nolint:wrapcheck
	}

	fields := map[string]any{}

	if req.CompletionNotes != constant.Empty {
		fields[model.FieldCompletionNotes] = req.CompletionNotes
	}

	return s.transition(ctx, model.OperationComplete, id, fields)
}

// transition is the only writer of booking status. The update is conditioned on the status
// that was read, so of two racing transitions at most one is applied.
func (s *serviceImpl) transition(ctx context.Context, op model.Operation, id string, fields map[string]any) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.operation", string(op))

	if !shared.IsValidID(id) {
		return res, failure.NotFound(MsgBookingNotFound) // nolint:wrapcheck
	}

	actor := actorFrom(ctx)

	booking, err := s.loadPrimary(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.Can(actor, op, booking) {
		return res, model.Forbidden(op) // nolint:wrapcheck
	}

	rule, _ := model.TransitionFor(op)
	if !rule.Allows(booking.Status) {
		return res, model.InvalidTransition(op, booking.Status) // nolint:wrapcheck
	}

	from := booking.Status

	fields[model.FieldStatus] = string(rule.To)
	gModel.Touch(fields, actor.UserID)

	applied, err := s.repo.UpdateStatus(ctx, id, from, fields)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !applied {
		current, err := s.loadPrimary(ctx, id)
		if err != nil {
			return res, err
		}

		log.Warn().
			Str("booking_id", id).
			Str("from", string(from)).
			Str("current", string(current.Status)).
			Str("actor", actor.UserID).
			Msg("booking transition lost a concurrent update")

		return res, model.InvalidTransition(op, current.Status) // nolint:wrapcheck
	}

	log.Info().
		Str("booking_id", id).
		Str("from", string(from)).
		Str("to", string(rule.To)).
		Str("actor", actor.UserID).
		Msg("booking " + string(op))

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	s.invalidateLists(ctx)

	updated, err := s.loadPrimary(ctx, id)
	if err != nil {
		return res, err
	}

	if err := s.publisher.StatusChanged(ctx, event.NewStatusChanged(op, from, updated, actor.UserID)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to publish booking event")
	}

	res.FromModel(updated)

	return res, nil
}

// load reads a booking from the replica, bypassing the cache.
func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	return s.found(s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)))
}

// loadPrimary reads a booking from the primary. Every read that precedes or follows a write uses it.
func (s *serviceImpl) loadPrimary(ctx context.Context, id string) (model.Booking, error) {
	return s.found(s.repo.GetPrimary(ctx, shared.FilterByID(id, model.FieldID, model.TableName)))
}

func (s *serviceImpl) found(booking model.Booking, err error) (model.Booking, error) {
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(MsgBookingNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetParentBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetNannyBooking)
	}()
}
