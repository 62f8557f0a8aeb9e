package model

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Content string    `gorm:"type:text;not null" json:"contenu"`
	TaskID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tache_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Task *Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Report) TableName() string { return "reports" }
