package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/errs"
	"github.com/rmagtibay/barangay-service/internal/model"
	md "github.com/rmagtibay/barangay-service/pkg/middleware"
	"github.com/rmagtibay/barangay-service/pkg/validate"
)

// Registries groups the generic CRUD services for the registry entities.
type Registries struct {
	Residents         CrudService[model.Resident, model.CreateResidentRequest, model.UpdateResidentRequest]
	Families          CrudService[model.Family, model.CreateFamilyRequest, model.UpdateFamilyRequest]
	Certificates      CrudService[model.Certificate, model.CreateCertificateRequest, model.UpdateCertificateRequest]
	Maintenance       CrudService[model.MaintenanceRequest, model.CreateMaintenanceRequest, model.UpdateMaintenanceRequest]
	Incidents         CrudService[model.Incident, model.CreateIncidentRequest, model.UpdateIncidentRequest]
	VulnerableSectors CrudService[model.VulnerableSector, model.CreateVulnerableSectorRequest, model.UpdateVulnerableSectorRequest]
	ResidentDocuments CrudService[model.ResidentDocument, model.CreateResidentDocumentRequest, model.UpdateResidentDocumentRequest]
}

type Handler struct {
	propertySvc PropertyService
	auditSvc    AuditService
	reportsSvc  ReportsService
	regs        Registries
	log         *zap.Logger
}

func New(propertySvc PropertyService, auditSvc AuditService, reportsSvc ReportsService, regs Registries, log *zap.Logger) *Handler {
	return &Handler{
		propertySvc: propertySvc,
		auditSvc:    auditSvc,
		reportsSvc:  reportsSvc,
		regs:        regs,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/properties", h.ListProperties)
	api.POST("/properties", h.CreateProperty)
	api.GET("/properties/:propertyUid", h.GetProperty)
	api.PUT("/properties/:propertyUid", h.UpdateProperty)
	api.DELETE("/properties/:propertyUid", h.DeleteProperty)
	api.POST("/properties/:propertyUid/borrow", h.Borrow)
	api.POST("/properties/:propertyUid/return/:borrowUid", h.Return)

	RegisterCrud(api, "/residents", h.regs.Residents)
	RegisterCrud(api, "/families", h.regs.Families)
	RegisterCrud(api, "/certificates", h.regs.Certificates)
	RegisterCrud(api, "/maintenance-requests", h.regs.Maintenance)
	RegisterCrud(api, "/incidents", h.regs.Incidents)
	RegisterCrud(api, "/vulnerable-sectors", h.regs.VulnerableSectors)
	RegisterCrud(api, "/resident-documents", h.regs.ResidentDocuments)

	api.GET("/residents/stats/puroks", h.PurokStats)
	api.GET("/audit", h.ListAudit)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) PurokStats(c echo.Context) error {
	counts, err := h.reportsSvc.PurokCounts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) ListAudit(c echo.Context) error {
	events, err := h.auditSvc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInsufficientAvailability),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
