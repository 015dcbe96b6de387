package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rmagtibay/barangay-service/internal/errs"
	"github.com/rmagtibay/barangay-service/internal/model"
)

type PropertyRepository interface {
	Create(ctx context.Context, p model.Property) (model.Property, error)
	Get(ctx context.Context, propertyUid string) (model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Update(ctx context.Context, propertyUid string, cols Columns) (model.Property, error)
	Delete(ctx context.Context, propertyUid string) error
	Borrow(ctx context.Context, propertyUid string, rec model.BorrowRecord) (model.Property, error)
	Return(ctx context.Context, propertyUid, borrowUid string) (model.Property, error)
}

const (
	propertiesTableName    = `properties`
	borrowRecordsTableName = `borrow_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type propertyRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewPropertyRepository(db *sqlx.DB, log *zap.Logger) (*propertyRepository, error) {
	return &propertyRepository{
		db:  db,
		log: log.Named("repo.properties"),
	}, nil
}

func (r *propertyRepository) Create(ctx context.Context, p model.Property) (model.Property, error) {
	q, args, err := qb.Insert(propertiesTableName).
		Columns("property_uid", "name", "category", "description", "location", "quantity", "available_quantity", "condition").
		Values(uuid.New(), p.Name, p.Category, p.Description, p.Location, p.Quantity, p.AvailableQuantity, p.Condition).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Property{}, err
	}

	var created model.Property
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("Create", zap.String("q", q), zap.Any("args", args))
		return model.Property{}, err
	}
	created.BorrowRecords = []model.BorrowRecord{}
	return created, nil
}

func (r *propertyRepository) Get(ctx context.Context, propertyUid string) (model.Property, error) {
	q, args, err := qb.Select("*").
		From(propertiesTableName).
		Where(sq.Eq{"property_uid": propertyUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Property{}, err
	}

	var p model.Property
	if err := r.db.GetContext(ctx, &p, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Property{}, errs.ErrNotFound
		}
		return model.Property{}, err
	}

	records, err := r.records(ctx, propertyUid)
	if err != nil {
		return model.Property{}, err
	}
	p.BorrowRecords = records
	return p, nil
}

func (r *propertyRepository) records(ctx context.Context, propertyUid string) ([]model.BorrowRecord, error) {
	q, args, err := qb.Select("*").
		From(borrowRecordsTableName).
		Where(sq.Eq{"property_uid": propertyUid}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	records := []model.BorrowRecord{}
	if err := r.db.SelectContext(ctx, &records, q, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]model.Property, error) {
	var (
		props   []model.Property
		records []model.BorrowRecord
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		q, args, err := qb.Select("*").From(propertiesTableName).OrderBy("id").ToSql()
		if err != nil {
			return err
		}
		return r.db.SelectContext(gctx, &props, q, args...)
	})
	gg.Go(func() error {
		q, args, err := qb.Select("*").From(borrowRecordsTableName).OrderBy("id").ToSql()
		if err != nil {
			return err
		}
		return r.db.SelectContext(gctx, &records, q, args...)
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	byProperty := make(map[string][]model.BorrowRecord, len(props))
	for _, rec := range records {
		byProperty[rec.PropertyUid] = append(byProperty[rec.PropertyUid], rec)
	}
	for i := range props {
		props[i].BorrowRecords = byProperty[props[i].PropertyUid]
		if props[i].BorrowRecords == nil {
			props[i].BorrowRecords = []model.BorrowRecord{}
		}
	}
	return props, nil
}

func (r *propertyRepository) Update(ctx context.Context, propertyUid string, cols Columns) (model.Property, error) {
	b := qb.Update(propertiesTableName).
		Set("date_updated", time.Now().UTC()).
		Where(sq.Eq{"property_uid": propertyUid})

	for col, v := range cols {
		if col == "quantity" {
			// Keep available_quantity in step with the stock edit and
			// refuse edits that would drop it below zero.
			b = b.Set("available_quantity", sq.Expr("available_quantity + ? - quantity", v)).
				Where(sq.Expr("available_quantity + ? - quantity >= 0", v))
		}
		b = b.Set(col, v)
	}

	q, args, err := b.Suffix("returning *").ToSql()
	if err != nil {
		return model.Property{}, err
	}

	var p model.Property
	if err := r.db.GetContext(ctx, &p, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.Get(ctx, propertyUid); getErr != nil {
				return model.Property{}, getErr
			}
			return model.Property{}, errors.Wrap(errs.ErrValidation, "quantity below units currently borrowed")
		}
		r.log.Error("Update", zap.String("q", q), zap.Any("args", args))
		return model.Property{}, err
	}

	records, err := r.records(ctx, propertyUid)
	if err != nil {
		return model.Property{}, err
	}
	p.BorrowRecords = records
	return p, nil
}

func (r *propertyRepository) Delete(ctx context.Context, propertyUid string) error {
	q, args, err := qb.Delete(propertiesTableName).
		Where(sq.Eq{"property_uid": propertyUid}).
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

// Borrow decrements available_quantity with a guarded conditional update and
// appends the borrow record in the same transaction. Two concurrent borrows
// can never jointly over-lend: the one that loses the conditional update
// fails with ErrInsufficientAvailability.
func (r *propertyRepository) Borrow(ctx context.Context, propertyUid string, rec model.BorrowRecord) (model.Property, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Property{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
update properties
    set available_quantity = available_quantity - $2,
        date_updated = now()
where property_uid = $1 and available_quantity >= $2`, propertyUid, rec.Quantity)
	if err != nil {
		return model.Property{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Property{}, err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`select exists (select 1 from properties where property_uid = $1)`, propertyUid).Scan(&exists); err != nil {
			return model.Property{}, err
		}
		if !exists {
			return model.Property{}, errs.ErrNotFound
		}
		return model.Property{}, errs.ErrInsufficientAvailability
	}

	q, args, err := qb.Insert(borrowRecordsTableName).
		Columns("borrow_uid", "property_uid", "borrowed_by", "quantity", "borrow_date", "return_date", "status").
		Values(uuid.New(), propertyUid, rec.BorrowedBy, rec.Quantity, rec.BorrowDate, rec.ReturnDate, model.StatusBorrowed).
		ToSql()
	if err != nil {
		return model.Property{}, err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("Borrow insert record", zap.String("q", q), zap.Any("args", args))
		return model.Property{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Property{}, err
	}
	return r.Get(ctx, propertyUid)
}

// Return flips the record borrowed -> returned exactly once; the conditional
// update on status makes a second return fail with ErrAlreadyReturned.
func (r *propertyRepository) Return(ctx context.Context, propertyUid, borrowUid string) (model.Property, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Property{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var qty int
	err = tx.QueryRowContext(ctx, `
update borrow_records
    set status = $3, actual_return_date = now()
where borrow_uid = $1 and property_uid = $2 and status = $4
returning quantity`, borrowUid, propertyUid, model.StatusReturned, model.StatusBorrowed).Scan(&qty)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return model.Property{}, err
		}
		var status model.BorrowStatus
		err := tx.QueryRowContext(ctx,
			`select status from borrow_records where borrow_uid = $1 and property_uid = $2`,
			borrowUid, propertyUid).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return model.Property{}, errs.ErrNotFound
		}
		if err != nil {
			return model.Property{}, err
		}
		return model.Property{}, errs.ErrAlreadyReturned
	}

	if _, err := tx.ExecContext(ctx, `
update properties
    set available_quantity = available_quantity + $2,
        date_updated = now()
where property_uid = $1`, propertyUid, qty); err != nil {
		return model.Property{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Property{}, err
	}
	return r.Get(ctx, propertyUid)
}
