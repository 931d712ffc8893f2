package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"carehub/infras/otel"
	"carehub/infras/postgres"
	"carehub/internal/domains/nanny/model"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/logger"
	gModel "carehub/shared/model"
	gRepo "carehub/shared/repository"
	"context"
	"fmt"
)

const (
	queryAppendGallery = `UPDATE nannies
		SET gallery = array_append(gallery, :url), modified_at = :modified_at, modified_by = :modified_by
		WHERE id = :id`
	queryRemoveGallery = `UPDATE nannies
		SET gallery = array_remove(gallery, :url), modified_at = :modified_at, modified_by = :modified_by
		WHERE id = :id AND :url = ANY(gallery)`
)

type Nanny interface {
	Insert(ctx context.Context, model model.Nanny) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Nanny, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Nanny, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	AppendGalleryImage(ctx context.Context, id, url, user string) error
	RemoveGalleryImage(ctx context.Context, id, url, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Nanny]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Nanny {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Nanny](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) AppendGalleryImage(ctx context.Context, id, url, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".nanny.AppendGalleryImage")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAppendGallery)

	_, err := r.db.Write.NamedExecContext(ctx, queryAppendGallery, galleryArgs(id, url, user))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to append gallery image: %w", err)
	}

	return nil
}

// RemoveGalleryImage reports false when the url was not part of the gallery.
func (r *repositoryImpl) RemoveGalleryImage(ctx context.Context, id, url, user string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".nanny.RemoveGalleryImage")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRemoveGallery)

	result, err := r.db.Write.NamedExecContext(ctx, queryRemoveGallery, galleryArgs(id, url, user))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to remove gallery image: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func galleryArgs(id, url, user string) map[string]any {
	return gModel.Touch(map[string]any{"id": id, "url": url}, user)
}
