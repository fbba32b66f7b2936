package judging

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionValue is the tagged variant behind a submission: exactly one of
// rating, boolean or text, matching the criterion's type.
type SubmissionValue interface {
	isSubmissionValue()
}

type RatingValue int

func (RatingValue) isSubmissionValue() {}

type BooleanValue bool

func (BooleanValue) isSubmissionValue() {}

type TextValue string

func (TextValue) isSubmissionValue() {}

// Submission is one judge's recorded value for one criterion on one product.
// Storage keeps three nullable columns; callers go through Value/SetValue so
// only the column matching the criterion type is ever populated.
type Submission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JudgeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_identity;column:judge_id" json:"judge_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_identity;index;column:product_id" json:"product_id"`
	CriterionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_identity;index;column:criteria_id" json:"criteria_id"`

	RatingValue  *int    `gorm:"column:rating_value" json:"rating_value,omitempty"`
	BooleanValue *bool   `gorm:"column:boolean_value" json:"boolean_value,omitempty"`
	TextValue    *string `gorm:"column:text_value" json:"text_value,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Submission) TableName() string { return "submission" }

// Value returns the populated column as a tagged variant, or nil if the row
// carries no value at all.
func (s *Submission) Value() SubmissionValue {
	switch {
	case s.RatingValue != nil:
		return RatingValue(*s.RatingValue)
	case s.BooleanValue != nil:
		return BooleanValue(*s.BooleanValue)
	case s.TextValue != nil:
		return TextValue(*s.TextValue)
	}
	return nil
}

// SetValue clears all three columns and populates the one matching v.
func (s *Submission) SetValue(v SubmissionValue) {
	s.RatingValue = nil
	s.BooleanValue = nil
	s.TextValue = nil
	switch val := v.(type) {
	case RatingValue:
		iv := int(val)
		s.RatingValue = &iv
	case BooleanValue:
		bv := bool(val)
		s.BooleanValue = &bv
	case TextValue:
		tv := string(val)
		s.TextValue = &tv
	}
}
