package model

import (
	"time"

	"github.com/google/uuid"
)

type WellFile struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename   string    `gorm:"type:varchar(255);not null"`
	StorageKey string    `gorm:"type:varchar(512);not null"`
	FileURL    string    `gorm:"type:varchar(1024)"`
	FileSize   int64

	WellName  string `gorm:"type:varchar(255)"`
	FieldName string `gorm:"type:varchar(255)"`
	Company   string `gorm:"type:varchar(255)"`
	LogDate   string `gorm:"type:varchar(100)"`

	StartDepth float64
	StopDepth  float64
	DepthStep  float64
	DepthUnit  string  `gorm:"type:varchar(50);default:'M'"`
	NullValue  float64 `gorm:"default:-999.25"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (WellFile) TableName() string {
	return "well_files"
}
