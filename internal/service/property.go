package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/errs"
	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/internal/repository"
	"github.com/rmagtibay/barangay-service/pkg/kafka"
)

// Enqueuer publishes audit events; nil disables publishing.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// Property owns all mutation of availableQuantity and borrow records.
// No other code path writes those fields.
type Property struct {
	log  *zap.Logger
	repo repository.PropertyRepository
	enq  Enqueuer
}

func NewProperty(repo repository.PropertyRepository, enq Enqueuer, log *zap.Logger) *Property {
	return &Property{
		log:  log,
		repo: repo,
		enq:  enq,
	}
}

func (s *Property) Create(ctx context.Context, req model.CreatePropertyRequest) (model.Property, error) {
	if req.Quantity < 1 {
		return model.Property{}, errors.Wrap(errs.ErrValidation, "quantity must be at least 1")
	}
	p, err := s.repo.Create(ctx, model.Property{
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Location:          req.Location,
		Quantity:          req.Quantity,
		AvailableQuantity: req.Quantity,
		Condition:         req.Condition,
	})
	if err != nil {
		return model.Property{}, err
	}
	s.publish("created", p.PropertyUid, p.Name)
	return p, nil
}

func (s *Property) Get(ctx context.Context, propertyUid string) (model.Property, error) {
	return s.repo.Get(ctx, propertyUid)
}

func (s *Property) List(ctx context.Context) ([]model.Property, error) {
	return s.repo.List(ctx)
}

func (s *Property) Update(ctx context.Context, propertyUid string, req model.UpdatePropertyRequest) (model.Property, error) {
	cols := repository.Columns{}
	if req.Name != nil {
		cols["name"] = *req.Name
	}
	if req.Category != nil {
		cols["category"] = *req.Category
	}
	if req.Description != nil {
		cols["description"] = *req.Description
	}
	if req.Location != nil {
		cols["location"] = *req.Location
	}
	if req.Quantity != nil {
		cols["quantity"] = *req.Quantity
	}
	if req.Condition != nil {
		cols["condition"] = *req.Condition
	}
	if len(cols) == 0 {
		return model.Property{}, errors.Wrap(errs.ErrValidation, "no fields to update")
	}

	p, err := s.repo.Update(ctx, propertyUid, cols)
	if err != nil {
		return model.Property{}, err
	}
	s.publish("updated", propertyUid, "")
	return p, nil
}

func (s *Property) Delete(ctx context.Context, propertyUid string) error {
	if err := s.repo.Delete(ctx, propertyUid); err != nil {
		return err
	}
	s.publish("deleted", propertyUid, "")
	return nil
}

func (s *Property) Borrow(ctx context.Context, propertyUid string, req model.BorrowRequest) (model.Property, error) {
	if strings.TrimSpace(req.BorrowedBy) == "" {
		return model.Property{}, errors.Wrap(errs.ErrValidation, "borrowedBy is required")
	}
	if req.Quantity < 1 {
		return model.Property{}, errors.Wrap(errs.ErrValidation, "quantity must be at least 1")
	}
	if req.BorrowDate.IsZero() || req.ReturnDate.IsZero() {
		return model.Property{}, errors.Wrap(errs.ErrValidation, "borrowDate and returnDate are required")
	}
	if req.ReturnDate.Before(req.BorrowDate.Time) {
		return model.Property{}, errors.Wrap(errs.ErrValidation, "returnDate is before borrowDate")
	}

	p, err := s.repo.Borrow(ctx, propertyUid, model.BorrowRecord{
		BorrowedBy: req.BorrowedBy,
		Quantity:   req.Quantity,
		BorrowDate: req.BorrowDate.Time,
		ReturnDate: req.ReturnDate.Time,
	})
	if err != nil {
		return model.Property{}, err
	}
	s.publish("borrowed", propertyUid, fmt.Sprintf("%d unit(s) to %s", req.Quantity, req.BorrowedBy))
	return p, nil
}

func (s *Property) Return(ctx context.Context, propertyUid, borrowUid string) (model.Property, error) {
	p, err := s.repo.Return(ctx, propertyUid, borrowUid)
	if err != nil {
		return model.Property{}, err
	}
	s.publish("returned", propertyUid, borrowUid)
	return p, nil
}

// publish is best effort: a broker hiccup must not fail the request.
func (s *Property) publish(action, uid, detail string) {
	if s.enq == nil {
		return
	}
	ev := model.AuditEvent{
		Entity:    "property",
		EntityUid: uid,
		Action:    action,
		Detail:    detail,
		At:        time.Now().UTC(),
	}
	if err := s.enq.Enqueue(kafka.AuditTopic, ev); err != nil {
		s.log.Warn("audit enqueue", zap.String("action", action), zap.Error(err))
	}
}
