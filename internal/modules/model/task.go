package model

import (
	"time"

	"github.com/google/uuid"
)

const TaskStatusPending = "en_attente"

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"titre"`
	Description *string    `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"type:varchar(32)" json:"priorite"`
	StartDate   Date       `gorm:"not null" json:"date_debut"`
	EndDate     Date       `gorm:"not null" json:"date_fin"`
	Status      string     `gorm:"type:varchar(64);not null;default:'en_attente';index" json:"statut"`
	TagID       *uuid.UUID `gorm:"type:uuid;index" json:"tag_id"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"projet_id"`
	AssigneeID  *uuid.UUID `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	MilestoneID *uuid.UUID `gorm:"type:uuid;index" json:"jalon_id"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"creator_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Tag       *Tag       `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Project   *Project   `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Assignee  *User      `gorm:"foreignKey:AssigneeID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Milestone *Milestone `gorm:"foreignKey:MilestoneID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Creator   *User      `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Task <-> Skill (required skills)
	Skills []Skill `gorm:"many2many:task_skills;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"competences,omitempty"`
}

func (Task) TableName() string { return "tasks" }
