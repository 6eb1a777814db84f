package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/clock"
)

var _ ports.AdvertisementStore = (*AdvertisementStore)(nil)

type adRecord struct {
	ad  domain.Advertisement
	seq uint64
}

// AdvertisementStore keeps listings in memory.
type AdvertisementStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*adRecord
	seq     uint64
	clock   clock.Clock
}

func NewAdvertisementStore(clk clock.Clock) *AdvertisementStore {
	if clk == nil {
		clk = clock.System
	}
	return &AdvertisementStore{
		records: make(map[uuid.UUID]*adRecord),
		clock:   clk,
	}
}

// Create always succeeds; inputs are validated before they reach the store.
func (s *AdvertisementStore) Create(in domain.NewAdvertisement) domain.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := freshID(func(id uuid.UUID) bool {
		_, taken := s.records[id]
		return taken
	})

	s.seq++
	rec := &adRecord{
		ad: domain.Advertisement{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			Author:      in.Author,
			CreatedAt:   s.clock.Now(),
		},
		seq: s.seq,
	}
	s.records[id] = rec
	return rec.ad
}

func (s *AdvertisementStore) Get(id uuid.UUID) (domain.Advertisement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Advertisement{}, false
	}
	return rec.ad, true
}

func (s *AdvertisementStore) Update(id uuid.UUID, patch domain.AdvertisementPatch) (domain.Advertisement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Advertisement{}, false
	}
	rec.apply(patch)
	return rec.ad, true
}

// UpdateIf applies patch only if allow accepts the listing as it is at the
// moment of the write. The check and the write share one critical section,
// so an author reassignment cannot slip in between them.
func (s *AdvertisementStore) UpdateIf(id uuid.UUID, allow func(domain.Advertisement) bool, patch domain.AdvertisementPatch) (domain.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Advertisement{}, domain.ErrAdvertisementNotFound
	}
	if !allow(rec.ad) {
		return domain.Advertisement{}, domain.ErrForbidden
	}
	rec.apply(patch)
	return rec.ad, nil
}

func (s *AdvertisementStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// DeleteIf removes the listing only if allow accepts it, under the same lock.
func (s *AdvertisementStore) DeleteIf(id uuid.UUID, allow func(domain.Advertisement) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.ErrAdvertisementNotFound
	}
	if !allow(rec.ad) {
		return domain.ErrForbidden
	}
	delete(s.records, id)
	return nil
}

// Search returns every listing matching filter, most recent first. An empty
// filter returns all listings. Matching records are copied while the read
// lock is held.
func (s *AdvertisementStore) Search(filter domain.AdvertisementFilter) []domain.Advertisement {
	s.mu.RLock()
	matched := make([]adRecord, 0, len(s.records))
	for _, rec := range s.records {
		if filter.Matches(rec.ad) {
			matched = append(matched, *rec)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].ad.CreatedAt.Equal(matched[j].ad.CreatedAt) {
			return matched[i].ad.CreatedAt.After(matched[j].ad.CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	out := make([]domain.Advertisement, len(matched))
	for i, rec := range matched {
		out[i] = rec.ad
	}
	return out
}

// apply must be called with the store lock held.
func (r *adRecord) apply(patch domain.AdvertisementPatch) {
	if patch.Title != nil {
		r.ad.Title = *patch.Title
	}
	if patch.Description != nil {
		r.ad.Description = *patch.Description
	}
	if patch.Price != nil {
		r.ad.Price = *patch.Price
	}
	if patch.Author != nil {
		r.ad.Author = *patch.Author
	}
}
