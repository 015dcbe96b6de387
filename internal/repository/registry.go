package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/errs"
)

// Columns maps column names to values for inserts and partial updates.
type Columns map[string]any

// EntityDef describes a registry table: its name and uid column.
type EntityDef struct {
	Table string
	IDCol string
}

var (
	ResidentsDef         = EntityDef{Table: "residents", IDCol: "resident_uid"}
	FamiliesDef          = EntityDef{Table: "families", IDCol: "family_uid"}
	CertificatesDef      = EntityDef{Table: "certificates", IDCol: "certificate_uid"}
	MaintenanceDef       = EntityDef{Table: "maintenance_requests", IDCol: "maintenance_uid"}
	IncidentsDef         = EntityDef{Table: "incidents", IDCol: "incident_uid"}
	VulnerableSectorsDef = EntityDef{Table: "vulnerable_sectors", IDCol: "record_uid"}
	ResidentDocumentsDef = EntityDef{Table: "resident_documents", IDCol: "document_uid"}
)

// Registry is the one CRUD repository shared by every registry entity.
// IDs are assigned here and timestamps by the database, never by callers.
type Registry[T any] struct {
	db  *sqlx.DB
	log *zap.Logger
	def EntityDef
}

func NewRegistry[T any](db *sqlx.DB, log *zap.Logger, def EntityDef) *Registry[T] {
	return &Registry[T]{
		db:  db,
		log: log.Named("repo." + def.Table),
		def: def,
	}
}

func (r *Registry[T]) Create(ctx context.Context, cols Columns) (T, error) {
	var item T
	cols[r.def.IDCol] = uuid.New().String()

	q, args, err := qb.Insert(r.def.Table).
		SetMap(sq.Eq(cols)).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return item, err
	}
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		r.log.Error("Create", zap.String("q", q), zap.Any("args", args))
		return item, wrapPgError(err)
	}
	return item, nil
}

func (r *Registry[T]) Get(ctx context.Context, uid string) (T, error) {
	var item T
	q, args, err := qb.Select("*").
		From(r.def.Table).
		Where(sq.Eq{r.def.IDCol: uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return item, err
	}
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, errs.ErrNotFound
		}
		return item, err
	}
	return item, nil
}

// List returns the whole table. The registries are expected to stay in the
// low thousands of rows; revisit with pagination if that ceiling moves.
func (r *Registry[T]) List(ctx context.Context) ([]T, error) {
	q, args, err := qb.Select("*").
		From(r.def.Table).
		OrderBy("created_at desc, id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Registry[T]) Update(ctx context.Context, uid string, cols Columns) (T, error) {
	var item T
	cols["updated_at"] = time.Now().UTC()

	q, args, err := qb.Update(r.def.Table).
		SetMap(sq.Eq(cols)).
		Where(sq.Eq{r.def.IDCol: uid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return item, err
	}
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, errs.ErrNotFound
		}
		r.log.Error("Update", zap.String("q", q), zap.Any("args", args))
		return item, wrapPgError(err)
	}
	return item, nil
}

func (r *Registry[T]) Delete(ctx context.Context, uid string) error {
	q, args, err := qb.Delete(r.def.Table).
		Where(sq.Eq{r.def.IDCol: uid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return errors.Wrap(errs.ErrConflict, pgErr.Message)
	}
	return err
}
