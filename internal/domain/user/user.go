package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleJudge = "judge"
	RoleUser  = "user"
)

// User is a metadata collaborator: identity and sessions live in the external
// auth service, this table only mirrors what the platform needs for display
// and role checks.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Username  string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Role      string    `gorm:"not null;default:user;column:role" json:"role"`
	AvatarURL string    `gorm:"column:avatar_url" json:"avatar_url"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
