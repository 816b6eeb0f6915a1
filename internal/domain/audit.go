package domain

import "time"

const (
	// DefaultCreatedBy stamps records created by the system itself.
	DefaultCreatedBy = "Admin"

	// DefaultRecordVersion is the version a record starts its life with.
	DefaultRecordVersion = int64(0)
)

// AuditFields is embedded by every persisted entity. The services stamp
// these explicitly at creation time; nothing auto-populates them.
type AuditFields struct {
	RecordID         int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	CreatedBy        string    `json:"-" gorm:"size:50"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedBy   string    `json:"-" gorm:"size:50"`
	LastModifiedDate time.Time `json:"-"`
	RecordVersion    int64     `json:"-" gorm:"default:0"`
}

// StampCreation fills the audit fields for a freshly created record.
func (a *AuditFields) StampCreation(by string, at time.Time) {
	a.CreatedBy = by
	a.CreatedDate = at
	a.LastModifiedBy = by
	a.LastModifiedDate = at
	a.RecordVersion = DefaultRecordVersion
}
