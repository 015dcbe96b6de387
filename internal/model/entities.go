package model

import (
	"time"
)

type Resident struct {
	ID            int       `json:"-" db:"id"`
	ResidentUid   string    `json:"residentUid" db:"resident_uid"`
	FirstName     string    `json:"firstName" db:"first_name"`
	MiddleName    string    `json:"middleName" db:"middle_name"`
	LastName      string    `json:"lastName" db:"last_name"`
	BirthDate     time.Time `json:"birthDate" db:"birth_date"`
	Gender        string    `json:"gender" db:"gender"`
	CivilStatus   string    `json:"civilStatus" db:"civil_status"`
	Purok         string    `json:"purok" db:"purok"`
	ContactNumber string    `json:"contactNumber" db:"contact_number"`
	Address       string    `json:"address" db:"address"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateResidentRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	MiddleName    string `json:"middleName"`
	LastName      string `json:"lastName" validate:"required"`
	BirthDate     Date   `json:"birthDate" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	CivilStatus   string `json:"civilStatus" validate:"required"`
	Purok         string `json:"purok" validate:"required"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address" validate:"required"`
}

type UpdateResidentRequest struct {
	FirstName     *string `json:"firstName" validate:"omitempty,min=1"`
	MiddleName    *string `json:"middleName"`
	LastName      *string `json:"lastName" validate:"omitempty,min=1"`
	BirthDate     *Date   `json:"birthDate"`
	Gender        *string `json:"gender"`
	CivilStatus   *string `json:"civilStatus"`
	Purok         *string `json:"purok"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
}

type Family struct {
	ID             int       `json:"-" db:"id"`
	FamilyUid      string    `json:"familyUid" db:"family_uid"`
	FamilyName     string    `json:"familyName" db:"family_name"`
	HeadResidentUid string   `json:"headResidentUid" db:"head_resident_uid"`
	Purok          string    `json:"purok" db:"purok"`
	Address        string    `json:"address" db:"address"`
	MemberCount    int       `json:"memberCount" db:"member_count"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateFamilyRequest struct {
	FamilyName      string `json:"familyName" validate:"required"`
	HeadResidentUid string `json:"headResidentUid"`
	Purok           string `json:"purok" validate:"required"`
	Address         string `json:"address" validate:"required"`
	MemberCount     int    `json:"memberCount" validate:"min=0"`
}

type UpdateFamilyRequest struct {
	FamilyName      *string `json:"familyName" validate:"omitempty,min=1"`
	HeadResidentUid *string `json:"headResidentUid"`
	Purok           *string `json:"purok"`
	Address         *string `json:"address"`
	MemberCount     *int    `json:"memberCount" validate:"omitempty,min=0"`
}

type CertificateStatus string

const (
	CertificatePending  CertificateStatus = "Pending"
	CertificateReleased CertificateStatus = "Released"
)

type Certificate struct {
	ID              int               `json:"-" db:"id"`
	CertificateUid  string            `json:"certificateUid" db:"certificate_uid"`
	ResidentUid     string            `json:"residentUid" db:"resident_uid"`
	CertificateType string            `json:"certificateType" db:"certificate_type"`
	Purpose         string            `json:"purpose" db:"purpose"`
	Status          CertificateStatus `json:"status" db:"status"`
	IssuedDate      *time.Time        `json:"issuedDate,omitempty" db:"issued_date"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

type CreateCertificateRequest struct {
	ResidentUid     string `json:"residentUid" validate:"required"`
	CertificateType string `json:"certificateType" validate:"required"`
	Purpose         string `json:"purpose" validate:"required"`
}

type UpdateCertificateRequest struct {
	CertificateType *string            `json:"certificateType" validate:"omitempty,min=1"`
	Purpose         *string            `json:"purpose"`
	Status          *CertificateStatus `json:"status" validate:"omitempty,oneof=Pending Released"`
	IssuedDate      *Date              `json:"issuedDate"`
}

type MaintenanceRequest struct {
	ID             int       `json:"-" db:"id"`
	MaintenanceUid string    `json:"maintenanceUid" db:"maintenance_uid"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Location       string    `json:"location" db:"location"`
	Priority       string    `json:"priority" db:"priority"`
	Status         string    `json:"status" db:"status"`
	ScheduledDate  time.Time `json:"scheduledDate" db:"scheduled_date"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateMaintenanceRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Location      string `json:"location" validate:"required"`
	Priority      string `json:"priority" validate:"required,oneof=Low Medium High"`
	ScheduledDate Date   `json:"scheduledDate" validate:"required"`
}

type UpdateMaintenanceRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	Priority      *string `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status        *string `json:"status" validate:"omitempty,oneof=Scheduled 'In Progress' Completed Cancelled"`
	ScheduledDate *Date   `json:"scheduledDate"`
}

type Incident struct {
	ID           int       `json:"-" db:"id"`
	IncidentUid  string    `json:"incidentUid" db:"incident_uid"`
	ReportedBy   string    `json:"reportedBy" db:"reported_by"`
	Description  string    `json:"description" db:"description"`
	Location     string    `json:"location" db:"location"`
	Status       string    `json:"status" db:"status"`
	IncidentDate time.Time `json:"incidentDate" db:"incident_date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateIncidentRequest struct {
	ReportedBy   string `json:"reportedBy" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Location     string `json:"location" validate:"required"`
	IncidentDate Date   `json:"incidentDate" validate:"required"`
}

type UpdateIncidentRequest struct {
	ReportedBy   *string `json:"reportedBy" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Status       *string `json:"status" validate:"omitempty,oneof=Open 'Under Investigation' Resolved"`
	IncidentDate *Date   `json:"incidentDate"`
}

type VulnerableSector struct {
	ID          int       `json:"-" db:"id"`
	RecordUid   string    `json:"recordUid" db:"record_uid"`
	ResidentUid string    `json:"residentUid" db:"resident_uid"`
	SectorType  string    `json:"sectorType" db:"sector_type"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateVulnerableSectorRequest struct {
	ResidentUid string `json:"residentUid" validate:"required"`
	SectorType  string `json:"sectorType" validate:"required,oneof='Senior Citizen' PWD 'Solo Parent' Pregnant Indigent"`
	Notes       string `json:"notes"`
}

type UpdateVulnerableSectorRequest struct {
	SectorType *string `json:"sectorType" validate:"omitempty,oneof='Senior Citizen' PWD 'Solo Parent' Pregnant Indigent"`
	Notes      *string `json:"notes"`
}

type ResidentDocument struct {
	ID           int       `json:"-" db:"id"`
	DocumentUid  string    `json:"documentUid" db:"document_uid"`
	ResidentUid  string    `json:"residentUid" db:"resident_uid"`
	DocumentType string    `json:"documentType" db:"document_type"`
	FileName     string    `json:"fileName" db:"file_name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateResidentDocumentRequest struct {
	ResidentUid  string `json:"residentUid" validate:"required"`
	DocumentType string `json:"documentType" validate:"required"`
	FileName     string `json:"fileName" validate:"required"`
}

type UpdateResidentDocumentRequest struct {
	DocumentType *string `json:"documentType" validate:"omitempty,min=1"`
	FileName     *string `json:"fileName" validate:"omitempty,min=1"`
}
