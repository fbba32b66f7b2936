package judging

import (
	"time"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/domain/catalog"
	"github.com/launchforge/launchforge-backend/internal/domain/user"
)

// Assignment records that a judge owes a product an evaluation. The composite
// unique index is the race guard for concurrent assignment of the same pair;
// removing an assignment never touches the judge's submissions.
type Assignment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	JudgeID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_judge_product;column:judge_id" json:"judge_id"`
	Judge      *user.User       `gorm:"foreignKey:JudgeID;references:ID" json:"judge,omitempty"`
	ProductID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_judge_product;index;column:product_id" json:"product_id"`
	Product    *catalog.Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	AssignedBy *uuid.UUID       `gorm:"type:uuid;column:assigned_by" json:"assigned_by,omitempty"`
	AssignedAt time.Time        `gorm:"not null;column:assigned_at" json:"assigned_at"`
}

func (Assignment) TableName() string { return "assignment" }
