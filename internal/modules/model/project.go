package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"titre"`
	Description *string   `gorm:"type:text" json:"description"`
	StartDate   *Date     `json:"date_debut"`
	EndDate     *Date     `json:"date_fin"`
	TeamID      uuid.UUID `gorm:"type:uuid;not null;index" json:"equipe_id"`
	OwnerID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> Team
	Team *Team `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"equipe,omitempty"`

	// Project <-> User (owner)
	Owner *User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
