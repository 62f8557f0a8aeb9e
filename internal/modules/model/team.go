package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleLeader = "leader"
	RoleMember = "membre"
)

type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Label       string    `gorm:"type:varchar(255);not null" json:"libelle"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatorID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Team <-> User (creator)
	Creator *User `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"user,omitempty"`
}

func (Team) TableName() string { return "teams" }

// TeamMember is the team/user pivot. The composite key makes membership unique per pair.
type TeamMember struct {
	TeamID uuid.UUID `gorm:"type:uuid;primaryKey" json:"equipe_id"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	Role   string    `gorm:"type:varchar(32);not null;default:'membre'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"user,omitempty"`
}

func (TeamMember) TableName() string { return "team_members" }
