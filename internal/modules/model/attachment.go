package model

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;index" json:"tache_id"`
	FileKey     string    `gorm:"type:varchar(1024);not null" json:"fichier_url"`
	Filename    string    `gorm:"type:varchar(255);not null" json:"nom_fichier"`
	MIME        string    `gorm:"type:varchar(255)" json:"mime"`
	SizeB       int64     `gorm:"not null;default:0" json:"taille"`
	SHA256      string    `gorm:"type:varchar(64)" json:"sha256"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Task *Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Attachment) TableName() string { return "attachments" }
