package model

import (
	"time"

	"github.com/google/uuid"
)

type Milestone struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Label       string    `gorm:"type:varchar(255);not null" json:"libelle"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(64);not null" json:"statut"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"projet_id"`
	CreatorID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Creator *User    `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Milestone) TableName() string { return "milestones" }
