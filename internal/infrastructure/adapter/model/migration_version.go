package model

import "time"

// SchemaVersion is one applied schema step. Version is unique so a step is recorded once
// even when two replicas migrate at startup.
type SchemaVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null"`
}

// TableName pins the table name
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
