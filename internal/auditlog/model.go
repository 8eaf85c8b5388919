package auditlog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Actions recorded by the event, setlist and report handlers.
const (
	ActionEventCreated        = "EVENT_CREATED"
	ActionEventUpdated        = "EVENT_UPDATED"
	ActionEventDeleted        = "EVENT_DELETED"
	ActionSetlistSongAdded    = "SETLIST_SONG_ADDED"
	ActionSetlistSongRemoved  = "SETLIST_SONG_REMOVED"
	ActionSetlistEntryUpdated = "SETLIST_ENTRY_UPDATED"
	ActionReportExported      = "REPORT_EXPORTED"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

// AuditLog represents the audit_logs table
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`   // nullable for anonymous calls
	TargetID  *uuid.UUID     `gorm:"type:uuid;index" json:"target_id"` // event the action touched
	Action    string         `gorm:"size:100;not null;index" json:"action"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	Status    string         `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName overrides table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Actor identifies who performed an action and from where.
type Actor struct {
	UserID *uuid.UUID
	IP     string
}

// AuditLogResponse represents the audit log response for API
type AuditLogResponse struct {
	ID        uint           `json:"id"`
	UserID    *uuid.UUID     `json:"user_id"`
	TargetID  *uuid.UUID     `json:"target_id"`
	Action    string         `json:"action"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `json:"ip_address"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UserName  *string        `json:"user_name,omitempty"`
}

// AuditLogFilter represents filters for querying audit logs
type AuditLogFilter struct {
	UserID   *uuid.UUID `json:"user_id"`
	TargetID *uuid.UUID `json:"target_id"`
	Action   string     `json:"action"`
	Status   string     `json:"status"`
	FromDate *time.Time `json:"from_date"`
	ToDate   *time.Time `json:"to_date"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}

// PaginatedAuditLogs represents paginated audit log response
type PaginatedAuditLogs struct {
	Data       []AuditLogResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
