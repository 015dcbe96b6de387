package model

import (
	"strings"
	"time"
)

// Date is a calendar day in yyyy-mm-dd wire format.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type Condition string

const (
	ConditionGood        Condition = "Good"
	ConditionFair        Condition = "Fair"
	ConditionNeedsRepair Condition = "Needs Repair"
	ConditionBroken      Condition = "Broken"
)

type BorrowStatus string

const (
	StatusBorrowed BorrowStatus = "borrowed"
	StatusReturned BorrowStatus = "returned"
)

type Property struct {
	ID                int            `json:"-" db:"id"`
	PropertyUid       string         `json:"propertyUid" db:"property_uid"`
	Name              string         `json:"name" db:"name"`
	Category          string         `json:"category" db:"category"`
	Description       string         `json:"description" db:"description"`
	Location          string         `json:"location" db:"location"`
	Quantity          int            `json:"quantity" db:"quantity"`
	AvailableQuantity int            `json:"availableQuantity" db:"available_quantity"`
	Condition         Condition      `json:"condition" db:"condition"`
	DateAdded         time.Time      `json:"dateAdded" db:"date_added"`
	DateUpdated       time.Time      `json:"dateUpdated" db:"date_updated"`
	BorrowRecords     []BorrowRecord `json:"borrowRecords" db:"-"`
}

// ActiveBorrowed sums the quantities of records still out.
func (p Property) ActiveBorrowed() int {
	var n int
	for _, r := range p.BorrowRecords {
		if r.Status == StatusBorrowed {
			n += r.Quantity
		}
	}
	return n
}

type BorrowRecord struct {
	ID               int          `json:"-" db:"id"`
	BorrowUid        string       `json:"borrowUid" db:"borrow_uid"`
	PropertyUid      string       `json:"-" db:"property_uid"`
	BorrowedBy       string       `json:"borrowedBy" db:"borrowed_by"`
	Quantity         int          `json:"quantity" db:"quantity"`
	BorrowDate       time.Time    `json:"borrowDate" db:"borrow_date"`
	ReturnDate       time.Time    `json:"returnDate" db:"return_date"`
	ActualReturnDate *time.Time   `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Status           BorrowStatus `json:"status" db:"status"`
}

type CreatePropertyRequest struct {
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,min=1"`
	Condition   Condition `json:"condition" validate:"required,oneof='Good' 'Fair' 'Needs Repair' 'Broken'"`
}

type UpdatePropertyRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Category    *string    `json:"category" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Quantity    *int       `json:"quantity" validate:"omitempty,min=1"`
	Condition   *Condition `json:"condition" validate:"omitempty,oneof='Good' 'Fair' 'Needs Repair' 'Broken'"`
}

type BorrowRequest struct {
	BorrowedBy string `json:"borrowedBy" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	BorrowDate Date   `json:"borrowDate" validate:"required"`
	ReturnDate Date   `json:"returnDate" validate:"required"`
}

type AuditEvent struct {
	ID        int       `json:"-" db:"id"`
	Entity    string    `json:"entity" db:"entity"`
	EntityUid string    `json:"entityUid" db:"entity_uid"`
	Action    string    `json:"action" db:"action"`
	Detail    string    `json:"detail" db:"detail"`
	At        time.Time `json:"at" db:"at"`
}

type PurokCount struct {
	Purok     string `json:"purok" db:"purok"`
	Residents int    `json:"residents" db:"residents"`
}
