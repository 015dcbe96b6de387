package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/errs"
	"github.com/rmagtibay/barangay-service/internal/repository"
)

// Crud is the one service implementation behind every registry entity.
// Per-entity behavior is reduced to the two column-mapping funcs.
type Crud[T, C, U any] struct {
	log        *zap.Logger
	repo       *repository.Registry[T]
	insertCols func(C) repository.Columns
	updateCols func(U) repository.Columns
}

func NewCrud[T, C, U any](
	repo *repository.Registry[T],
	log *zap.Logger,
	insertCols func(C) repository.Columns,
	updateCols func(U) repository.Columns,
) *Crud[T, C, U] {
	return &Crud[T, C, U]{
		log:        log,
		repo:       repo,
		insertCols: insertCols,
		updateCols: updateCols,
	}
}

func (s *Crud[T, C, U]) Create(ctx context.Context, req C) (T, error) {
	return s.repo.Create(ctx, s.insertCols(req))
}

func (s *Crud[T, C, U]) Get(ctx context.Context, uid string) (T, error) {
	return s.repo.Get(ctx, uid)
}

func (s *Crud[T, C, U]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Crud[T, C, U]) Update(ctx context.Context, uid string, req U) (T, error) {
	cols := s.updateCols(req)
	if len(cols) == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrValidation, "no fields to update")
	}
	return s.repo.Update(ctx, uid, cols)
}

func (s *Crud[T, C, U]) Delete(ctx context.Context, uid string) error {
	return s.repo.Delete(ctx, uid)
}
