package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
)

// CreateAdvertisementInput holds a new listing. The author is always the caller.
type CreateAdvertisementInput struct {
	Title       string
	Description string
	Price       float64
}

type AdvertisementService interface {
	Create(ctx context.Context, caller policy.Caller, in CreateAdvertisementInput) (domain.Advertisement, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Advertisement, error)
	Search(ctx context.Context, filter domain.AdvertisementFilter) ([]domain.Advertisement, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, patch domain.AdvertisementPatch) (domain.Advertisement, error)
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}
