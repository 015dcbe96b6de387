package handler

import (
	"context"

	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type PropertyService interface {
	Create(ctx context.Context, req model.CreatePropertyRequest) (model.Property, error)
	Get(ctx context.Context, propertyUid string) (model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Update(ctx context.Context, propertyUid string, req model.UpdatePropertyRequest) (model.Property, error)
	Delete(ctx context.Context, propertyUid string) error
	Borrow(ctx context.Context, propertyUid string, req model.BorrowRequest) (model.Property, error)
	Return(ctx context.Context, propertyUid, borrowUid string) (model.Property, error)
}

type AuditService interface {
	Record(ctx context.Context, ev model.AuditEvent) error
	List(ctx context.Context) ([]model.AuditEvent, error)
}

type ReportsService interface {
	PurokCounts(ctx context.Context) ([]model.PurokCount, error)
}

var (
	_ PropertyService = (*service.Property)(nil)
	_ AuditService    = (*service.Audit)(nil)
	_ ReportsService  = (*service.Reports)(nil)

	_ CrudService[model.Resident, model.CreateResidentRequest, model.UpdateResidentRequest] = (*service.Crud[model.Resident, model.CreateResidentRequest, model.UpdateResidentRequest])(nil)
)
