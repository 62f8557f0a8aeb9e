package model

import (
	"time"

	"github.com/google/uuid"
)

// Skill labels are global: two owners naming the same label share one row.
type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Label       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"libelle"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
