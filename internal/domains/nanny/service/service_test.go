package service_test

import (
	"carehub/config"
	"carehub/infras/otel/mocks"
	s3Mocks "carehub/infras/s3/mocks"
	bookingMocks "carehub/internal/domains/booking/mocks"
	nannyMocks "carehub/internal/domains/nanny/mocks"
	"carehub/internal/domains/nanny/model"
	"carehub/internal/domains/nanny/model/dto"
	"carehub/internal/domains/nanny/service"
	cacheMocks "carehub/shared/cache/mocks"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/failure"
	gRepo "carehub/shared/repository"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	nannyID     = "6f1c3a53-0c61-4b8e-9d4e-1c55f0a0b001"
	nannyUserID = "6f1c3a53-0c61-4b8e-9d4e-1c55f0a0b002"
	parentID    = "6f1c3a53-0c61-4b8e-9d4e-1c55f0a0b003"
)

var errDatabase = errors.New("database error")

type fixture struct {
	repo        *nannyMocks.MockNanny
	reviewRepo  *nannyMocks.MockReview
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
	svc         service.Nanny
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.GalleryDir = "nannies"

	f := &fixture{
		repo:        nannyMocks.NewMockNanny(ctrl),
		reviewRepo:  nannyMocks.NewMockReview(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, f.reviewRepo, f.bookingRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f *fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

func withUser(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func sampleNanny() model.Nanny {
	return model.Nanny{
		ID:         nannyID,
		UserID:     nannyUserID,
		Bio:        "Loves kids",
		Experience: 4,
		HourlyRate: 20,
		Name:       "Nina",
		Email:      "nina@example.com",
	}
}

func assertFailure(t *testing.T, err error, code int, msg string) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, code, failure.GetCode(err))

	if msg != "" {
		assert.Equal(t, msg, err.Error())
	}
}

func TestNannyService_GetHourlyRate(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(f *fixture)
		want      dto.HourlyRateResponse
		wantCode  int
		wantMsg   string
	}{
		{
			name: "rate found",
			id:   nannyID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldUserID, model.FieldHourlyRate).
					Return(sampleNanny(), nil)
			},
			want: dto.HourlyRateResponse{NannyID: nannyID, UserID: nannyUserID, HourlyRate: 20},
		},
		{
			name: "served from cache",
			id:   nannyID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "nanny:rate:"+nannyID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*dto.HourlyRateResponse) = dto.HourlyRateResponse{NannyID: nannyID, UserID: nannyUserID, HourlyRate: 25}

						return nil
					})
			},
			want: dto.HourlyRateResponse{NannyID: nannyID, UserID: nannyUserID, HourlyRate: 25},
		},
		{
			name:      "malformed id",
			id:        "not-a-uuid",
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusNotFound,
			wantMsg:   service.MsgNannyNotFound,
		},
		{
			name: "unknown nanny",
			id:   nannyID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Nanny{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  service.MsgNannyNotFound,
		},
		{
			name: "repository error",
			id:   nannyID,
			setupMock: func(f *fixture) {
				f.cacheMiss()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Nanny{}, errDatabase)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetHourlyRate(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestNannyService_GetByUserID(t *testing.T) {
	t.Run("profile found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleNanny(), nil)

		res, err := f.svc.GetByUserID(context.Background(), nannyUserID)

		require.NoError(t, err)
		assert.Equal(t, nannyID, res.ID)
		assert.Equal(t, "Nina", res.Name)
		assert.Empty(t, res.Gallery)
	})

	t.Run("no profile", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Nanny{}, nil)

		_, err := f.svc.GetByUserID(context.Background(), nannyUserID)

		assertFailure(t, err, http.StatusNotFound, service.MsgProfileNotFound)
	})
}

func TestNannyService_Create(t *testing.T) {
	req := dto.CreateNannyRequest{Bio: "Experienced nanny", Experience: 3, HourlyRate: 22}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "created",
			setupMock: func(f *fixture) {
				f.cacheMiss()
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, nanny model.Nanny) error {
						assert.Equal(t, nannyUserID, nanny.UserID)
						assert.InDelta(t, 22, nanny.HourlyRate, 0.001)
						assert.NotNil(t, nanny.Gallery)

						return nil
					})
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleNanny(), nil)
			},
		},
		{
			name: "profile already exists",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "lost race on unique user",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: nanny", gRepo.ErrDuplicate))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errDatabase)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(withUser(nannyUserID, constant.RoleNanny), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, "")

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNannyService_CreateDefault(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, nanny model.Nanny) error {
			assert.Equal(t, nannyUserID, nanny.UserID)
			assert.Equal(t, model.DefaultExperience, nanny.Experience)
			assert.InDelta(t, model.DefaultHourlyRate, nanny.HourlyRate, 0.001)
			assert.Contains(t, nanny.Bio, "Nina")

			return nil
		})

	err := f.svc.CreateDefault(context.Background(), nannyUserID, "Nina")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestNannyService_GetAll(t *testing.T) {
	tests := []struct {
		name        string
		params      gDto.QueryParams
		wantSortBy  string
		wantSortDir string
	}{
		{
			name:        "default ordering by rating",
			params:      gDto.QueryParams{Page: 1, Limit: 10},
			wantSortBy:  "nannies.average_rating",
			wantSortDir: gDto.SortDirDesc,
		},
		{
			name:        "allowed sort column",
			params:      gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldHourlyRate, SortDir: gDto.SortDirAsc},
			wantSortBy:  "nannies.hourly_rate",
			wantSortDir: gDto.SortDirAsc,
		},
		{
			name:        "unknown sort column falls back",
			params:      gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password"},
			wantSortBy:  "nannies.average_rating",
			wantSortDir: gDto.SortDirDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cacheMiss()
			f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
			f.repo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Nanny, error) {
					assert.Equal(t, tt.wantSortBy, params.SortBy)
					assert.Equal(t, tt.wantSortDir, params.SortDir)

					return []model.Nanny{sampleNanny()}, nil
				})

			res, err := f.svc.GetAll(context.Background(), tt.params, dto.SearchNanniesRequest{})

			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.Len(t, res.Nannies, 1)
			assert.Equal(t, 11, res.TotalData)
			assert.Equal(t, 2, res.TotalPage)
		})
	}
}

func TestNannyService_UpdateMe(t *testing.T) {
	rate := 30.0

	t.Run("empty update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateMe(withUser(nannyUserID, constant.RoleNanny), dto.UpdateNannyRequest{})

		assertFailure(t, err, http.StatusBadRequest, service.MsgEmptyUpdate)
	})

	t.Run("rate updated and caches dropped", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleNanny(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.InDelta(t, rate, fields[model.FieldHourlyRate], 0.001)
				assert.Equal(t, nannyUserID, fields[constant.FieldModifiedBy])

				return nil
			})

		updated := sampleNanny()
		updated.HourlyRate = rate
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := f.svc.UpdateMe(withUser(nannyUserID, constant.RoleNanny), dto.UpdateNannyRequest{HourlyRate: &rate})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.InDelta(t, rate, res.HourlyRate, 0.001)
	})

	t.Run("caller has no profile", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Nanny{}, nil)

		_, err := f.svc.UpdateMe(withUser(parentID, constant.RoleNanny), dto.UpdateNannyRequest{HourlyRate: &rate})

		assertFailure(t, err, http.StatusNotFound, service.MsgProfileNotFound)
	})
}

func TestNannyService_AddReview(t *testing.T) {
	req := dto.CreateReviewRequest{Rating: 5, Comment: "Wonderful"}

	tests := []struct {
		name      string
		ctx       context.Context
		nannyID   string
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
		want      dto.AddReviewResponse
	}{
		{
			name:    "verified review after a completed booking",
			ctx:     withUser(parentID, constant.RoleParent),
			nannyID: nannyID,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, parentID, args["parent_id"])
						assert.Equal(t, nannyID, args["nanny_id"])
						assert.Equal(t, "completed", args["status"])

						return true, nil
					})
				f.reviewRepo.EXPECT().
					InsertWithRating(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) (model.RatingSummary, error) {
						assert.True(t, review.Verified)
						assert.Equal(t, parentID, review.UserID)

						return model.RatingSummary{AverageRating: 4.5, ReviewCount: 2}, nil
					})
			},
			want: dto.AddReviewResponse{AverageRating: 4.5, ReviewCount: 2},
		},
		{
			name:    "unverified review",
			ctx:     withUser(parentID, constant.RoleParent),
			nannyID: nannyID,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.reviewRepo.EXPECT().
					InsertWithRating(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) (model.RatingSummary, error) {
						assert.False(t, review.Verified)

						return model.RatingSummary{AverageRating: 5, ReviewCount: 1}, nil
					})
			},
			want: dto.AddReviewResponse{AverageRating: 5, ReviewCount: 1},
		},
		{
			name:      "nanny cannot review",
			ctx:       withUser(nannyUserID, constant.RoleNanny),
			nannyID:   nannyID,
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusForbidden,
			wantMsg:   service.MsgOnlyParentsReview,
		},
		{
			name:    "unknown nanny",
			ctx:     withUser(parentID, constant.RoleParent),
			nannyID: nannyID,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  service.MsgNannyNotFound,
		},
		{
			name:    "second review by the same parent",
			ctx:     withUser(parentID, constant.RoleParent),
			nannyID: nannyID,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.reviewRepo.EXPECT().
					InsertWithRating(gomock.Any(), gomock.Any()).
					Return(model.RatingSummary{}, fmt.Errorf("%w (nanny_review)", gRepo.ErrDuplicate))
			},
			wantCode: http.StatusConflict,
			wantMsg:  service.MsgAlreadyReviewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.AddReview(tt.ctx, tt.nannyID, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want.AverageRating, res.AverageRating, 0.001)
			assert.Equal(t, tt.want.ReviewCount, res.ReviewCount)
			assert.Equal(t, 5, res.Review.Rating)
			assert.Equal(t, nannyID, res.Review.NannyID)
		})
	}
}

func TestNannyService_GetReviews(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.reviewRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.reviewRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Review, error) {
			assert.Equal(t, "nanny_reviews.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Review{{ID: "review-1", NannyID: nannyID, Rating: 4, UserName: "Pat"}}, nil
		})

	res, err := f.svc.GetReviews(context.Background(), nannyID, gDto.QueryParams{Page: 1, Limit: 10})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Reviews, 1)
	assert.Equal(t, "Pat", res.Reviews[0].UserName)
}

func TestNannyService_RemoveGalleryImage(t *testing.T) {
	const url = "https://cdn.example.com/nannies/one.jpg"

	t.Run("image not in gallery", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleNanny(), nil)
		f.repo.EXPECT().RemoveGalleryImage(gomock.Any(), nannyID, url, nannyUserID).Return(false, nil)

		_, err := f.svc.RemoveGalleryImage(withUser(nannyUserID, constant.RoleNanny), url)

		assertFailure(t, err, http.StatusNotFound, service.MsgImageNotInGallery)
	})

	t.Run("removed from gallery and storage", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleNanny(), nil).Times(2)
		f.repo.EXPECT().RemoveGalleryImage(gomock.Any(), nannyID, url, nannyUserID).Return(true, nil)
		f.s3.EXPECT().DeleteFile(gomock.Any(), url).Return(nil)

		_, err := f.svc.RemoveGalleryImage(withUser(nannyUserID, constant.RoleNanny), url)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
