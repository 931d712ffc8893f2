package repository

//go:generate go run go.uber.org/mock/mockgen -source=./review.go -destination=../mocks/review_mock.go -package=mocks

import (
	"carehub/infras/otel"
	"carehub/infras/postgres"
	"carehub/internal/domains/nanny/model"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	gRepo "carehub/shared/repository"
	"carehub/shared/timezone"
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	queryLockNanny       = `SELECT id FROM nannies WHERE id = $1 FOR UPDATE`
	queryRecomputeRating = `UPDATE nannies
		SET average_rating = summary.average_rating,
			review_count = summary.review_count,
			modified_at = $2
		FROM (
			SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0) AS average_rating, COUNT(*) AS review_count
			FROM nanny_reviews
			WHERE nanny_id = $1
		) AS summary
		WHERE nannies.id = $1
		RETURNING nannies.average_rating, nannies.review_count`
)

type Review interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertWithRating(ctx context.Context, review model.Review) (model.RatingSummary, error)
}

type reviewRepositoryImpl struct {
	gRepo.Repository[model.Review]
	otel otel.Otel
}

func NewReview(db *postgres.Connection, otel otel.Otel) Review {
	return &reviewRepositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.ReviewEntityName, model.ReviewTableName, model.ReviewFieldID, db, otel),
		otel:       otel,
	}
}

// InsertWithRating stores the review and refreshes the nanny's rating aggregate in one transaction.
func (r *reviewRepositoryImpl) InsertWithRating(ctx context.Context, review model.Review) (res model.RatingSummary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".nanny_review.InsertWithRating")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var lockedID string
		if err := tx.GetContext(ctx, &lockedID, queryLockNanny, review.NannyID); err != nil {
			return fmt.Errorf("failed to lock nanny: %w", err)
		}

		if err := r.InsertTx(ctx, tx, review); err != nil {
			return err
		}

		if err := tx.GetContext(ctx, &res, queryRecomputeRating, review.NannyID, timezone.Now()); err != nil {
			return fmt.Errorf("failed to recompute rating: %w", err)
		}

		return nil
	})

	return res, err
}
