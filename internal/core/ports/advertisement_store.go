package ports

import (
	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

// AdvertisementStore owns advertisement records.
type AdvertisementStore interface {
	Create(in domain.NewAdvertisement) domain.Advertisement
	Get(id uuid.UUID) (domain.Advertisement, bool)
	Update(id uuid.UUID, patch domain.AdvertisementPatch) (domain.Advertisement, bool)
	Delete(id uuid.UUID) bool
	// UpdateIf and DeleteIf run allow against the current record and write
	// in one step. They fail with domain.ErrAdvertisementNotFound, then
	// domain.ErrForbidden, in that order.
	UpdateIf(id uuid.UUID, allow func(domain.Advertisement) bool, patch domain.AdvertisementPatch) (domain.Advertisement, error)
	DeleteIf(id uuid.UUID, allow func(domain.Advertisement) bool) error
	// Search returns the listings matching filter, newest first.
	Search(filter domain.AdvertisementFilter) []domain.Advertisement
}
