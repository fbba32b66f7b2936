package app

import (
	"gorm.io/gorm"

	"github.com/launchforge/launchforge-backend/internal/data/repos"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
)

type Repos struct {
	User       repos.UserRepo
	Product    repos.ProductRepo
	Criterion  repos.CriterionRepo
	Assignment repos.AssignmentRepo
	Submission repos.SubmissionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		Product:    repos.NewProductRepo(db, log),
		Criterion:  repos.NewCriterionRepo(db, log),
		Assignment: repos.NewAssignmentRepo(db, log),
		Submission: repos.NewSubmissionRepo(db, log),
	}
}
