package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/internal/repository"
)

const auditListLimit = 200

type Audit struct {
	log  *zap.Logger
	repo repository.AuditRepository
}

func NewAudit(repo repository.AuditRepository, log *zap.Logger) *Audit {
	return &Audit{
		log:  log,
		repo: repo,
	}
}

func (s *Audit) Record(ctx context.Context, ev model.AuditEvent) error {
	return s.repo.Insert(ctx, ev)
}

func (s *Audit) List(ctx context.Context) ([]model.AuditEvent, error) {
	return s.repo.List(ctx, auditListLimit)
}
