package models

import "time"

// Operation names recorded in the ledger.
const (
	OperationUpload = "upload"
	OperationDelete = "delete"
)

// Outcome values recorded in the ledger.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Activity is one upload or delete attempt.
type Activity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Operation  string    `gorm:"column:operation;size:16;index" json:"operation"`
	Bucket     string    `gorm:"column:bucket;size:255" json:"bucket"`
	Key        string    `gorm:"column:object_key;size:1024" json:"key"`
	Size       int       `gorm:"column:size" json:"size"`
	Outcome    string    `gorm:"column:outcome;size:16" json:"outcome"`
	Kind       string    `gorm:"column:failure_kind;size:16" json:"kind,omitempty"`
	StatusCode int       `gorm:"column:status_code" json:"status_code,omitempty"`
	RayID      string    `gorm:"column:ray_id;size:64" json:"ray_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName sets the table name.
func (Activity) TableName() string {
	return "object_activity"
}
