package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
)

type AdvertisementService struct {
	ads     ports.AdvertisementStore
	metrics *metrics.Metrics
	log     zerolog.Logger
}

var _ ports.AdvertisementService = (*AdvertisementService)(nil)

func NewAdvertisementService(ads ports.AdvertisementStore, m *metrics.Metrics, log zerolog.Logger) *AdvertisementService {
	return &AdvertisementService{ads: ads, metrics: m, log: log}
}

// Create publishes a listing authored by caller.
func (s *AdvertisementService) Create(_ context.Context, caller policy.Caller, in ports.CreateAdvertisementInput) (domain.Advertisement, error) {
	ad := s.ads.Create(domain.NewAdvertisement{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Author:      caller.Username,
	})

	s.metrics.AdvertisementsCreatedTotal.Inc()
	s.log.Info().
		Str("advertisement_id", ad.ID.String()).
		Str("author", ad.Author).
		Msg("advertisement created")

	return ad, nil
}

func (s *AdvertisementService) Get(_ context.Context, id uuid.UUID) (domain.Advertisement, error) {
	ad, ok := s.ads.Get(id)
	if !ok {
		return domain.Advertisement{}, domain.ErrAdvertisementNotFound
	}
	return ad, nil
}

func (s *AdvertisementService) Search(_ context.Context, filter domain.AdvertisementFilter) ([]domain.Advertisement, error) {
	return s.ads.Search(filter), nil
}

// Update checks ownership against the author as it is at the moment of the
// write. The patch may reassign the author to any name.
func (s *AdvertisementService) Update(_ context.Context, caller policy.Caller, id uuid.UUID, patch domain.AdvertisementPatch) (domain.Advertisement, error) {
	ad, err := s.ads.UpdateIf(id, s.ownedBy(caller), patch)
	if err != nil {
		s.recordDenial(err, "update_advertisement")
		return domain.Advertisement{}, err
	}

	s.log.Info().
		Str("advertisement_id", ad.ID.String()).
		Str("caller", caller.Username).
		Msg("advertisement updated")

	return ad, nil
}

func (s *AdvertisementService) Delete(_ context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := s.ads.DeleteIf(id, s.ownedBy(caller)); err != nil {
		s.recordDenial(err, "delete_advertisement")
		return err
	}

	s.log.Info().
		Str("advertisement_id", id.String()).
		Str("caller", caller.Username).
		Msg("advertisement deleted")

	return nil
}

func (s *AdvertisementService) ownedBy(caller policy.Caller) func(domain.Advertisement) bool {
	return func(ad domain.Advertisement) bool {
		return policy.CanModifyAdvertisement(caller, ad.Author)
	}
}

func (s *AdvertisementService) recordDenial(err error, action string) {
	if errors.Is(err, domain.ErrForbidden) {
		s.metrics.AuthorizationDeniedTotal.WithLabelValues(action).Inc()
	}
}
