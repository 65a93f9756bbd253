package models

import (
	"time"

	"gorm.io/datatypes"
)

// Translation records one completed transformation for the history store.
type Translation struct {
	ID string `gorm:"primaryKey;type:varchar(20)"`

	// Language pair
	SourceLanguage string `gorm:"type:varchar(50);not null;index"`
	TargetLanguage string `gorm:"type:varchar(50);not null;index"`

	// Content
	SourceCode string `gorm:"type:text"`
	OutputCode string `gorm:"type:text"`

	// Diagnostics captured from the result
	Warnings datatypes.JSON `gorm:"type:jsonb"`
	Errors   datatypes.JSON `gorm:"type:jsonb"`

	// Statistics
	Functions        int  `gorm:"default:0"`
	Classes          int  `gorm:"default:0"`
	Imports          int  `gorm:"default:0"`
	LinesTransformed int  `gorm:"default:0"`
	MixedLanguage    bool `gorm:"default:false"`
	Normalized       bool `gorm:"default:false"`

	// Provenance
	InputPath string    `gorm:"type:varchar(512)"` // empty for stdin
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName customization for a cleaner name
func (Translation) TableName() string { return "translations" }
