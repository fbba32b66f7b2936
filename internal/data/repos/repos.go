package repos

import (
	"github.com/launchforge/launchforge-backend/internal/data/repos/catalog"
	"github.com/launchforge/launchforge-backend/internal/data/repos/judging"
	"github.com/launchforge/launchforge-backend/internal/data/repos/user"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo
type ProductRepo = catalog.ProductRepo

type CriterionRepo = judging.CriterionRepo
type AssignmentRepo = judging.AssignmentRepo
type SubmissionRepo = judging.SubmissionRepo

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return user.NewUserRepo(db, log)
}

func NewProductRepo(db *gorm.DB, log *logger.Logger) ProductRepo {
	return catalog.NewProductRepo(db, log)
}

func NewCriterionRepo(db *gorm.DB, log *logger.Logger) CriterionRepo {
	return judging.NewCriterionRepo(db, log)
}

func NewAssignmentRepo(db *gorm.DB, log *logger.Logger) AssignmentRepo {
	return judging.NewAssignmentRepo(db, log)
}

func NewSubmissionRepo(db *gorm.DB, log *logger.Logger) SubmissionRepo {
	return judging.NewSubmissionRepo(db, log)
}

// IsUniqueViolation re-exports the driver-level duplicate key check used by
// the assignment service.
func IsUniqueViolation(err error) bool {
	return judging.IsUniqueViolation(err)
}
