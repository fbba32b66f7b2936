package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/domain/user"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"not null;column:name" json:"name"`
	Tagline     string         `gorm:"column:tagline" json:"tagline"`
	Description string         `gorm:"column:description" json:"description"`
	Website     string         `gorm:"column:website" json:"website"`
	ImageURL    string         `gorm:"column:image_url" json:"image_url"`
	Status      string         `gorm:"not null;default:pending;column:status" json:"status"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	Owner       *user.User     `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Makers      []*user.User   `gorm:"many2many:product_maker" json:"makers,omitempty"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "product" }
