package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/internal/repository"
)

type Reports struct {
	log  *zap.Logger
	repo repository.ReportsRepository
}

func NewReports(repo repository.ReportsRepository, log *zap.Logger) *Reports {
	return &Reports{
		log:  log,
		repo: repo,
	}
}

func (s *Reports) PurokCounts(ctx context.Context) ([]model.PurokCount, error) {
	return s.repo.PurokCounts(ctx)
}
