package models

import (
	"encoding/json"
	"time"
)

// AuditLog records administrative actions such as bill generation runs.
type AuditLog struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    *string         `json:"userId,omitempty" gorm:"type:uuid"`
	Action    string          `json:"action" gorm:"not null"`
	TableName string          `json:"tableName" gorm:"not null"`
	RecordID  string          `json:"recordId"`
	NewValues json.RawMessage `json:"newValues" gorm:"type:jsonb"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
