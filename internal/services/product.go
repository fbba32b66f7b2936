package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Website     string `json:"website"`
	ImageURL    string `json:"image_url"`
}

// ProductService is the thin catalog collaborator: the judging core only
// needs product metadata for display and a moderation status flip.
type ProductService interface {
	CreateProduct(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, input ProductInput) (*types.Product, error)
	GetProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.Product, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Product, error)
	SetStatus(ctx context.Context, tx *gorm.DB, productID uuid.UUID, status string) error
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, input ProductInput) (*types.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.NewValidation("name", "must not be empty")
	}
	if ownerID == uuid.Nil {
		return nil, apperrors.NewValidation("owner_id", "required")
	}

	product := &types.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Tagline:     input.Tagline,
		Description: input.Description,
		Website:     input.Website,
		ImageURL:    input.ImageURL,
		Status:      "pending",
		OwnerID:     ownerID,
		Metadata:    datatypes.JSON([]byte("{}")),
	}
	created, err := s.productRepo.Create(ctx, tx, []*types.Product{product})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *productService) GetProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.Product, error) {
	product, err := s.productRepo.GetByID(ctx, tx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Product, error) {
	return s.productRepo.ListByStatus(ctx, tx, status)
}

func (s *productService) SetStatus(ctx context.Context, tx *gorm.DB, productID uuid.UUID, status string) error {
	switch status {
	case "pending", "approved", "rejected":
	default:
		return apperrors.NewValidation("status", "must be one of pending, approved, rejected")
	}
	if err := s.productRepo.UpdateStatus(ctx, tx, productID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
