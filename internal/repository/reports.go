package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/model"
)

type ReportsRepository interface {
	PurokCounts(ctx context.Context) ([]model.PurokCount, error)
}

type reportsRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewReportsRepository(db *sqlx.DB, log *zap.Logger) (*reportsRepository, error) {
	return &reportsRepository{
		db:  db,
		log: log.Named("repo.reports"),
	}, nil
}

func (r *reportsRepository) PurokCounts(ctx context.Context) ([]model.PurokCount, error) {
	q, args, err := qb.Select("purok", "count(*) as residents").
		From(ResidentsDef.Table).
		GroupBy("purok").
		OrderBy("purok").
		ToSql()
	if err != nil {
		return nil, err
	}
	counts := []model.PurokCount{}
	if err := r.db.SelectContext(ctx, &counts, q, args...); err != nil {
		return nil, err
	}
	return counts, nil
}
