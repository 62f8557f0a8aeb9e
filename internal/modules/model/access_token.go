package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is an issued bearer token. Only the SHA-256 of the secret part is kept.
type AccessToken struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string     `gorm:"type:varchar(64);not null" json:"name"`
	TokenHash  string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	LastUsedAt *time.Time `json:"last_used_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (AccessToken) TableName() string { return "access_tokens" }
