package judging

import "github.com/google/uuid"

// CriterionAggregate is the computed per-criterion summary across all judges
// for one product. AvgRating is nil until at least one rating lands; counts
// are zero, never nil.
type CriterionAggregate struct {
	CriterionID   uuid.UUID     `json:"criteria_id"`
	CriterionName string        `json:"criteria_name"`
	CriterionType CriterionType `json:"criteria_type"`
	Weight        float64       `json:"weight"`
	AvgRating     *float64      `json:"avg_rating,omitempty"`
	CountTrue     int           `json:"count_true"`
	CountFalse    int           `json:"count_false"`
	JudgeCount    int           `json:"count_judges"`
	Comments      []string      `json:"comments,omitempty"`
}

// ProductScore bundles the per-criterion rows with the single weighted
// overall score. Overall is nil while no rating criterion has data; the
// rendering layer must show "No score" for nil, never 0.0.
type ProductScore struct {
	ProductID uuid.UUID            `json:"product_id"`
	Results   []CriterionAggregate `json:"results"`
	Overall   *float64             `json:"overall_score"`
}

type JudgingStatus string

const (
	StatusNotAssigned JudgingStatus = "not_assigned"
	StatusAssigned    JudgingStatus = "assigned"
	StatusEvaluated   JudgingStatus = "evaluated"
)

// ProductStatus carries the tri-state plus the completion counts the
// assignment views show next to it. JudgedCount counts assigned judges with
// at least one submission for the product.
type ProductStatus struct {
	ProductID     uuid.UUID     `json:"product_id"`
	Status        JudgingStatus `json:"status"`
	AssignedCount int           `json:"assigned_count"`
	JudgedCount   int           `json:"judged_count"`
}

type ScoreBand string

const (
	BandGreen ScoreBand = "green"
	BandAmber ScoreBand = "amber"
	BandRed   ScoreBand = "red"
)

// BandForScore maps a 0-10 score to the display band shared by the results
// table, the chart and the certificate.
func BandForScore(score float64) ScoreBand {
	switch {
	case score >= 8:
		return BandGreen
	case score >= 6:
		return BandAmber
	default:
		return BandRed
	}
}
