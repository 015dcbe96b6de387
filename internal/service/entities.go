package service

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/internal/repository"
)

// Per-entity wiring for the generic registry: each constructor binds the
// table descriptor and the request-to-columns mappings, nothing else.

func NewResidents(db *sqlx.DB, log *zap.Logger) *Crud[model.Resident, model.CreateResidentRequest, model.UpdateResidentRequest] {
	return NewCrud(
		repository.NewRegistry[model.Resident](db, log, repository.ResidentsDef),
		log,
		func(req model.CreateResidentRequest) repository.Columns {
			return repository.Columns{
				"first_name":     req.FirstName,
				"middle_name":    req.MiddleName,
				"last_name":      req.LastName,
				"birth_date":     req.BirthDate.Time,
				"gender":         req.Gender,
				"civil_status":   req.CivilStatus,
				"purok":          req.Purok,
				"contact_number": req.ContactNumber,
				"address":        req.Address,
			}
		},
		func(req model.UpdateResidentRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "first_name", req.FirstName)
			setString(cols, "middle_name", req.MiddleName)
			setString(cols, "last_name", req.LastName)
			setDate(cols, "birth_date", req.BirthDate)
			setString(cols, "gender", req.Gender)
			setString(cols, "civil_status", req.CivilStatus)
			setString(cols, "purok", req.Purok)
			setString(cols, "contact_number", req.ContactNumber)
			setString(cols, "address", req.Address)
			return cols
		},
	)
}

func NewFamilies(db *sqlx.DB, log *zap.Logger) *Crud[model.Family, model.CreateFamilyRequest, model.UpdateFamilyRequest] {
	return NewCrud(
		repository.NewRegistry[model.Family](db, log, repository.FamiliesDef),
		log,
		func(req model.CreateFamilyRequest) repository.Columns {
			return repository.Columns{
				"family_name":       req.FamilyName,
				"head_resident_uid": req.HeadResidentUid,
				"purok":             req.Purok,
				"address":           req.Address,
				"member_count":      req.MemberCount,
			}
		},
		func(req model.UpdateFamilyRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "family_name", req.FamilyName)
			setString(cols, "head_resident_uid", req.HeadResidentUid)
			setString(cols, "purok", req.Purok)
			setString(cols, "address", req.Address)
			if req.MemberCount != nil {
				cols["member_count"] = *req.MemberCount
			}
			return cols
		},
	)
}

func NewCertificates(db *sqlx.DB, log *zap.Logger) *Crud[model.Certificate, model.CreateCertificateRequest, model.UpdateCertificateRequest] {
	return NewCrud(
		repository.NewRegistry[model.Certificate](db, log, repository.CertificatesDef),
		log,
		func(req model.CreateCertificateRequest) repository.Columns {
			return repository.Columns{
				"resident_uid":     req.ResidentUid,
				"certificate_type": req.CertificateType,
				"purpose":          req.Purpose,
				"status":           model.CertificatePending,
			}
		},
		func(req model.UpdateCertificateRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "certificate_type", req.CertificateType)
			setString(cols, "purpose", req.Purpose)
			if req.Status != nil {
				cols["status"] = *req.Status
			}
			setDate(cols, "issued_date", req.IssuedDate)
			return cols
		},
	)
}

func NewMaintenance(db *sqlx.DB, log *zap.Logger) *Crud[model.MaintenanceRequest, model.CreateMaintenanceRequest, model.UpdateMaintenanceRequest] {
	return NewCrud(
		repository.NewRegistry[model.MaintenanceRequest](db, log, repository.MaintenanceDef),
		log,
		func(req model.CreateMaintenanceRequest) repository.Columns {
			return repository.Columns{
				"title":          req.Title,
				"description":    req.Description,
				"location":       req.Location,
				"priority":       req.Priority,
				"status":         "Scheduled",
				"scheduled_date": req.ScheduledDate.Time,
			}
		},
		func(req model.UpdateMaintenanceRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "title", req.Title)
			setString(cols, "description", req.Description)
			setString(cols, "location", req.Location)
			setString(cols, "priority", req.Priority)
			setString(cols, "status", req.Status)
			setDate(cols, "scheduled_date", req.ScheduledDate)
			return cols
		},
	)
}

func NewIncidents(db *sqlx.DB, log *zap.Logger) *Crud[model.Incident, model.CreateIncidentRequest, model.UpdateIncidentRequest] {
	return NewCrud(
		repository.NewRegistry[model.Incident](db, log, repository.IncidentsDef),
		log,
		func(req model.CreateIncidentRequest) repository.Columns {
			return repository.Columns{
				"reported_by":   req.ReportedBy,
				"description":   req.Description,
				"location":      req.Location,
				"status":        "Open",
				"incident_date": req.IncidentDate.Time,
			}
		},
		func(req model.UpdateIncidentRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "reported_by", req.ReportedBy)
			setString(cols, "description", req.Description)
			setString(cols, "location", req.Location)
			setString(cols, "status", req.Status)
			setDate(cols, "incident_date", req.IncidentDate)
			return cols
		},
	)
}

func NewVulnerableSectors(db *sqlx.DB, log *zap.Logger) *Crud[model.VulnerableSector, model.CreateVulnerableSectorRequest, model.UpdateVulnerableSectorRequest] {
	return NewCrud(
		repository.NewRegistry[model.VulnerableSector](db, log, repository.VulnerableSectorsDef),
		log,
		func(req model.CreateVulnerableSectorRequest) repository.Columns {
			return repository.Columns{
				"resident_uid": req.ResidentUid,
				"sector_type":  req.SectorType,
				"notes":        req.Notes,
			}
		},
		func(req model.UpdateVulnerableSectorRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "sector_type", req.SectorType)
			setString(cols, "notes", req.Notes)
			return cols
		},
	)
}

func NewResidentDocuments(db *sqlx.DB, log *zap.Logger) *Crud[model.ResidentDocument, model.CreateResidentDocumentRequest, model.UpdateResidentDocumentRequest] {
	return NewCrud(
		repository.NewRegistry[model.ResidentDocument](db, log, repository.ResidentDocumentsDef),
		log,
		func(req model.CreateResidentDocumentRequest) repository.Columns {
			return repository.Columns{
				"resident_uid":  req.ResidentUid,
				"document_type": req.DocumentType,
				"file_name":     req.FileName,
			}
		},
		func(req model.UpdateResidentDocumentRequest) repository.Columns {
			cols := repository.Columns{}
			setString(cols, "document_type", req.DocumentType)
			setString(cols, "file_name", req.FileName)
			return cols
		},
	)
}

func setString[S ~string](cols repository.Columns, col string, v *S) {
	if v != nil {
		cols[col] = *v
	}
}

func setDate(cols repository.Columns, col string, v *model.Date) {
	if v != nil {
		cols[col] = v.Time
	}
}
