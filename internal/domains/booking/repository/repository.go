package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"carehub/infras/otel"
	"carehub/infras/postgres"
	"carehub/internal/domains/booking/model"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	gRepo "carehub/shared/repository"
	"context"
	"fmt"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetPrimary(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, id string, from model.Status, fields map[string]any) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// UpdateStatus writes fields only while the booking still has status from.
// It returns false when another writer moved the booking first.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, from model.Status, fields map[string]any) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	scope.SetAttribute("booking.id", id)
	scope.SetAttribute("booking.from", string(from))

	affected, err := r.UpdateAffected(ctx, fields, StatusGuard(id, from))
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	return affected > 0, nil
}

// StatusGuard matches one booking by id and expected status.
func StatusGuard(id string, from model.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
			},
			gDto.Filter{
				ArgName:  model.ArgExpectedStatus,
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    string(from),
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
