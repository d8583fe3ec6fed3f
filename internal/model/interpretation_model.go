package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Interpretation struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	CurvesAnalyzed datatypes.JSON `gorm:"not null"`
	StartDepth     float64
	EndDepth       float64
	Text           string    `gorm:"type:text;not null"`
	ModelUsed      string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (Interpretation) TableName() string {
	return "interpretations"
}
