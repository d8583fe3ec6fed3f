package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Curve struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileId      uuid.UUID `gorm:"type:uuid;not null;index:idx_file_curve"`
	Name        string    `gorm:"type:varchar(100);not null;index:idx_file_curve"`
	Unit        string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:varchar(255)"`
	Position    int       `gorm:"not null"`

	// Depth and value arrays stored as JSON for whole-series retrieval.
	Depths datatypes.JSON `gorm:"not null"`
	Values datatypes.JSON `gorm:"not null"`

	SampleCount int
	MinValue    *float64
	MaxValue    *float64
	MeanValue   *float64
}

func (Curve) TableName() string {
	return "curves"
}
