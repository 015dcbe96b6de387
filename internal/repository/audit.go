package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/model"
)

type AuditRepository interface {
	Insert(ctx context.Context, ev model.AuditEvent) error
	List(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

const auditTableName = `audit_log`

type auditRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewAuditRepository(db *sqlx.DB, log *zap.Logger) (*auditRepository, error) {
	return &auditRepository{
		db:  db,
		log: log.Named("repo.audit"),
	}, nil
}

func (r *auditRepository) Insert(ctx context.Context, ev model.AuditEvent) error {
	q, args, err := qb.Insert(auditTableName).
		Columns("entity", "entity_uid", "action", "detail", "at").
		Values(ev.Entity, ev.EntityUid, ev.Action, ev.Detail, ev.At).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("Insert", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *auditRepository) List(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	q, args, err := qb.Select("id", "entity", "entity_uid", "action", "detail", "at").
		From(auditTableName).
		OrderBy("at desc, id desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := []model.AuditEvent{}
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
