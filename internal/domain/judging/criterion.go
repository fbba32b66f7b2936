package judging

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CriterionType string

const (
	CriterionTypeRating  CriterionType = "rating"
	CriterionTypeBoolean CriterionType = "boolean"
	CriterionTypeText    CriterionType = "text"
)

func (t CriterionType) Valid() bool {
	switch t {
	case CriterionTypeRating, CriterionTypeBoolean, CriterionTypeText:
		return true
	}
	return false
}

// Weight bounds: weights multiply a criterion's contribution to the overall
// score and must stay within (0.1, 10].
const (
	WeightDefault = 1.0
	WeightMin     = 0.1
	WeightMax     = 10.0
)

// Criterion is one axis of evaluation. MinValue/MaxValue are set iff
// Type is rating, with MinValue < MaxValue.
type Criterion struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"not null;column:name" json:"name"`
	Description string        `gorm:"column:description" json:"description"`
	Type        CriterionType `gorm:"not null;column:type" json:"type"`
	MinValue    *int          `gorm:"column:min_value" json:"min_value,omitempty"`
	MaxValue    *int          `gorm:"column:max_value" json:"max_value,omitempty"`
	Weight      float64       `gorm:"not null;default:1;column:weight" json:"weight"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Criterion) TableName() string { return "criterion" }
