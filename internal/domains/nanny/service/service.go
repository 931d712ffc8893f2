package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"carehub/config"
	"carehub/infras/otel"
	"carehub/infras/s3"
	bookingModel "carehub/internal/domains/booking/model"
	bookingRepo "carehub/internal/domains/booking/repository"
	"carehub/internal/domains/nanny/model"
	"carehub/internal/domains/nanny/model/dto"
	"carehub/internal/domains/nanny/repository"
	"carehub/shared"
	"carehub/shared/cache"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/failure"
	gRepo "carehub/shared/repository"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetNanny     = "nanny:get"
	cacheGetAllNanny  = "nanny:get_all"
	cacheCountNanny   = "nanny:count"
	cacheGetRate      = "nanny:rate"
	cacheGetReviews   = "nanny:reviews"
	cacheCountReviews = "nanny:reviews_count"

	MsgNannyNotFound     = "Nanny not found"
	MsgProfileNotFound   = "Nanny profile not found"
	MsgProfileExists     = "Nanny profile already exists for this user"
	MsgAlreadyReviewed   = "You have already reviewed this nanny"
	MsgOnlyParentsReview = "Only parents can review nannies"
	MsgImageNotInGallery = "Image not found in gallery"
	MsgEmptyUpdate       = "update request cannot be empty"
)

var nannySortColumns = []string{
	model.FieldAverageRating,
	model.FieldHourlyRate,
	model.FieldExperience,
	model.FieldCreatedAt,
}

type Nanny interface {
	Create(ctx context.Context, req dto.CreateNannyRequest) (dto.NannyResponse, error)
	CreateDefault(ctx context.Context, userID, name string) error
	GetAll(ctx context.Context, params gDto.QueryParams, search dto.SearchNanniesRequest) (dto.GetNanniesResponse, error)
	Get(ctx context.Context, id string) (dto.NannyResponse, error)
	GetByUserID(ctx context.Context, userID string) (dto.NannyResponse, error)
	GetMe(ctx context.Context) (dto.NannyResponse, error)
	UpdateMe(ctx context.Context, req dto.UpdateNannyRequest) (dto.NannyResponse, error)
	GetHourlyRate(ctx context.Context, id string) (dto.HourlyRateResponse, error)
	UploadGalleryImage(ctx context.Context, fileHeader *multipart.FileHeader) (dto.NannyResponse, error)
	RemoveGalleryImage(ctx context.Context, url string) (dto.NannyResponse, error)
	AddReview(ctx context.Context, nannyID string, req dto.CreateReviewRequest) (dto.AddReviewResponse, error)
	GetReviews(ctx context.Context, nannyID string, params gDto.QueryParams) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo        repository.Nanny
	reviewRepo  repository.Review
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(
	repo repository.Nanny,
	reviewRepo repository.Review,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Nanny {
	return &serviceImpl{
		repo:        repo,
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNannyRequest) (res dto.NannyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check nanny profile")

		return res, fmt.Errorf("failed to check nanny profile: %w", err)
	}

	if exist {
		return res, failure.Conflict(MsgProfileExists) // nolint:wrapcheck
	}

	nanny := req.ToModel(userID)

	if err = s.insert(ctx, nanny); err != nil {
		return res, err
	}

	return s.Get(ctx, nanny.ID)
}

// CreateDefault gives a freshly registered nanny account a starter profile.
func (s *serviceImpl) CreateDefault(ctx context.Context, userID, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDefault")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req := dto.DefaultProfile(userID, name)

	return s.insert(ctx, req.ToModel(userID))
}

func (s *serviceImpl) insert(ctx context.Context, nanny model.Nanny) error {
	err := s.repo.Insert(ctx, nanny)
	if errors.Is(err, gRepo.ErrDuplicate) {
		return failure.Conflict(MsgProfileExists) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create nanny profile")

		return fmt.Errorf("failed to create nanny profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNanny)
		shared.InvalidateCaches(c, s.cache, cacheCountNanny)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, search dto.SearchNanniesRequest) (res dto.GetNanniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.AllowSort(model.FieldAverageRating, gDto.SortDirDesc, nannySortColumns...)
	params.SortBy = model.Column(params.SortBy)

	filter := search.ToFilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllNanny, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for nannies")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	nannies, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get nannies")

		return res, fmt.Errorf("failed to get nannies: %w", err)
	}

	res.FromModels(nannies, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save nannies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountNanny, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for nanny count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count nannies")

		return 0, fmt.Errorf("failed to count nannies: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save nanny count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.NannyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound(MsgNannyNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetNanny, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for nanny")

		return res, nil
	}

	nanny, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get nanny")

		return res, fmt.Errorf("failed to get nanny: %w", err)
	}

	if nanny.ID == constant.Empty {
		return res, failure.NotFound(MsgNannyNotFound) // nolint:wrapcheck
	}

	res.FromModel(nanny)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save nanny to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByUserID(ctx context.Context, userID string) (res dto.NannyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUserID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	nanny, err := s.getByUserID(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(nanny)

	return res, nil
}

func (s *serviceImpl) getByUserID(ctx context.Context, userID string) (model.Nanny, error) {
	if !shared.IsValidID(userID) {
		return model.Nanny{}, failure.NotFound(MsgProfileNotFound) // nolint:wrapcheck
	}

	nanny, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get nanny by user")

		return nanny, fmt.Errorf("failed to get nanny by user: %w", err)
	}

	if nanny.ID == constant.Empty {
		return nanny, failure.NotFound(MsgProfileNotFound) // nolint:wrapcheck
	}

	return nanny, nil
}

func (s *serviceImpl) GetMe(ctx context.Context) (dto.NannyResponse, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.GetByUserID(ctx, userID)
}

func (s *serviceImpl) UpdateMe(ctx context.Context, req dto.UpdateNannyRequest) (res dto.NannyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(MsgEmptyUpdate) // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	nanny, err := s.getByUserID(ctx, userID)
	if err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, req.ToFields(userID), shared.FilterByID(nanny.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update nanny profile")

		return res, fmt.Errorf("failed to update nanny profile: %w", err)
	}

	s.invalidate(ctx, nanny.ID)

	return s.Get(ctx, nanny.ID)
}

// GetHourlyRate is the rate lookup used to price new bookings.
func (s *serviceImpl) GetHourlyRate(ctx context.Context, id string) (res dto.HourlyRateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHourlyRate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound(MsgNannyNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRate, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for nanny rate")

		return res, nil
	}

	nanny, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName),
		model.FieldID, model.FieldUserID, model.FieldHourlyRate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get nanny rate")

		return res, fmt.Errorf("failed to get nanny rate: %w", err)
	}

	if nanny.ID == constant.Empty {
		return res, failure.NotFound(MsgNannyNotFound) // nolint:wrapcheck
	}

	res.FromModel(nanny)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save nanny rate to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UploadGalleryImage(ctx context.Context, fileHeader *multipart.FileHeader) (res dto.NannyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	nanny, err := s.getByUserID(ctx, userID)
	if err != nil {
		return res, err
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.GalleryDir+"/"+nanny.ID, fileHeader)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload gallery image")

		return res, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	if err = s.repo.AppendGalleryImage(ctx, nanny.ID, url, userID); err != nil {
		log.Error().Err(err).Msg("failed to append gallery image")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), url); delErr != nil {
			log.Error().Err(delErr).Str("url", url).Msg("failed to delete orphaned gallery image")
		}

		return res, fmt.Errorf("failed to append gallery image: %w", err)
	}

	s.invalidate(ctx, nanny.ID)

	return s.Get(ctx, nanny.ID)
}

func (s *serviceImpl) RemoveGalleryImage(ctx context.Context, url string) (res dto.NannyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	nanny, err := s.getByUserID(ctx, userID)
	if err != nil {
		return res, err
	}

	removed, err := s.repo.RemoveGalleryImage(ctx, nanny.ID, url, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to remove gallery image")

		return res, fmt.Errorf("failed to remove gallery image: %w", err)
	}

	if !removed {
		return res, failure.NotFound(MsgImageNotInGallery) // nolint:wrapcheck
	}

	if err := s.s3.DeleteFile(ctx, url); err != nil && !errors.Is(err, s3.ErrForeignURL) {
		log.Error().Err(err).Str("url", url).Msg("failed to delete gallery image from storage")
	}

	s.invalidate(ctx, nanny.ID)

	return s.Get(ctx, nanny.ID)
}

func (s *serviceImpl) AddReview(ctx context.Context, nannyID string, req dto.CreateReviewRequest) (res dto.AddReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddReview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleParent {
		return res, failure.Forbidden(MsgOnlyParentsReview) // nolint:wrapcheck
	}

	if err = s.ensureExists(ctx, nannyID); err != nil {
		return res, err
	}

	verified, err := s.bookingRepo.Exist(ctx, completedBookingFilter(userID, nannyID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed bookings")

		return res, fmt.Errorf("failed to check completed bookings: %w", err)
	}

	review := req.ToModel(nannyID, userID, verified)

	summary, err := s.reviewRepo.InsertWithRating(ctx, review)
	if errors.Is(err, gRepo.ErrDuplicate) {
		return res, failure.Conflict(MsgAlreadyReviewed) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to add review")

		return res, fmt.Errorf("failed to add review: %w", err)
	}

	s.invalidate(ctx, nannyID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetReviews, nannyID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheCountReviews, nannyID))
	}()

	res.Review.FromModel(review)
	res.AverageRating = summary.AverageRating
	res.ReviewCount = summary.ReviewCount

	return res, nil
}

func (s *serviceImpl) GetReviews(ctx context.Context, nannyID string, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReviews")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, nannyID); err != nil {
		return res, err
	}

	params.SortBy = model.ReviewColumn(constant.FieldCreatedAt)
	params.SortDir = gDto.SortDirDesc

	filter := shared.FilterByID(nannyID, model.ReviewFieldNannyID, model.ReviewTableName)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetReviews, nannyID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for nanny reviews")

		return res, nil
	}

	total, err := s.reviewRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	reviews, err := s.reviewRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save nanny reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, nannyID string) error {
	if !shared.IsValidID(nannyID) {
		return failure.NotFound(MsgNannyNotFound) // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(nannyID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check nanny")

		return fmt.Errorf("failed to check nanny: %w", err)
	}

	if !exist {
		return failure.NotFound(MsgNannyNotFound) // nolint:wrapcheck
	}

	return nil
}

// invalidate drops the single-profile entries synchronously so the caller reads its own write.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	for _, key := range []string{shared.BuildCacheKey(cacheGetNanny, id), shared.BuildCacheKey(cacheGetRate, id)} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to delete nanny from cache")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNanny)
		shared.InvalidateCaches(c, s.cache, cacheCountNanny)
	}()
}

func completedBookingFilter(parentID, nannyID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldParentID, Operator: gDto.FilterOperatorEq, Value: parentID},
			gDto.Filter{Field: bookingModel.FieldNannyID, Operator: gDto.FilterOperatorEq, Value: nannyID},
			gDto.Filter{Field: bookingModel.FieldStatus, Operator: gDto.FilterOperatorEq, Value: string(bookingModel.StatusCompleted)},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
