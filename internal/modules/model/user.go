package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"nom_complet"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	PhotoPath    *string   `gorm:"type:varchar(512)" json:"photo_profil"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"est_admin"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// User <-> Skill (shared vocabulary, pivot rows go with the user)
	Skills []Skill `gorm:"many2many:user_skills;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"competences,omitempty"`
}

func (User) TableName() string { return "users" }
