package domain

import (
	"github.com/launchforge/launchforge-backend/internal/domain/catalog"
	"github.com/launchforge/launchforge-backend/internal/domain/judging"
	"github.com/launchforge/launchforge-backend/internal/domain/user"
)

type User = user.User
type Product = catalog.Product

type Criterion = judging.Criterion
type CriterionType = judging.CriterionType
type Assignment = judging.Assignment
type Submission = judging.Submission
type SubmissionValue = judging.SubmissionValue
type RatingValue = judging.RatingValue
type BooleanValue = judging.BooleanValue
type TextValue = judging.TextValue

type CriterionAggregate = judging.CriterionAggregate
type ProductScore = judging.ProductScore
type JudgingStatus = judging.JudgingStatus
type ProductStatus = judging.ProductStatus
type ScoreBand = judging.ScoreBand

const (
	RoleAdmin = user.RoleAdmin
	RoleJudge = user.RoleJudge
	RoleUser  = user.RoleUser

	CriterionTypeRating  = judging.CriterionTypeRating
	CriterionTypeBoolean = judging.CriterionTypeBoolean
	CriterionTypeText    = judging.CriterionTypeText

	StatusNotAssigned = judging.StatusNotAssigned
	StatusAssigned    = judging.StatusAssigned
	StatusEvaluated   = judging.StatusEvaluated

	BandGreen = judging.BandGreen
	BandAmber = judging.BandAmber
	BandRed   = judging.BandRed
)
