package memory

import (
	"context"
	"sort"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
)

type campaignRepository struct {
	s *Store
}

func NewCampaignRepository(s *Store) repository.CampaignRepository {
	return &campaignRepository{s: s}
}

func (r *campaignRepository) Create(_ context.Context, campaign *domain.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	campaign.ID = r.s.id()
	campaign.CreatedAt = r.s.now()
	campaign.UpdatedAt = campaign.CreatedAt
	r.s.campaigns[campaign.ID] = *campaign
	return nil
}

func (r *campaignRepository) GetByID(_ context.Context, id int) (*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return &c, nil
}

func (r *campaignRepository) List(_ context.Context) ([]*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedCampaigns(func(*domain.Campaign) bool { return true }, false), nil
}

func (r *campaignRepository) ListByMarketer(_ context.Context, marketerID int) ([]*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedCampaigns(func(c *domain.Campaign) bool { return c.MarketerID == marketerID }, true), nil
}

func (r *campaignRepository) Update(_ context.Context, campaign *domain.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.campaigns[campaign.ID]; !ok {
		return domain.ErrCampaignNotFound
	}
	campaign.UpdatedAt = r.s.now()
	r.s.campaigns[campaign.ID] = *campaign
	return nil
}

func (r *campaignRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.campaigns[id]; !ok {
		return domain.ErrCampaignNotFound
	}
	delete(r.s.campaigns, id)
	for mid, m := range r.s.matches {
		if m.CampaignID == id {
			delete(r.s.matches, mid)
		}
	}
	return nil
}

func (r *campaignRepository) CountByMarketer(_ context.Context, marketerID int) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := 0
	for _, c := range r.s.campaigns {
		if c.MarketerID == marketerID {
			total++
		}
	}
	return total, nil
}

func (s *Store) sortedCampaigns(keep func(*domain.Campaign) bool, newestFirst bool) []*domain.Campaign {
	out := make([]*domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		c := c
		if keep(&c) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].ID > out[j].ID
		}
		return out[i].ID < out[j].ID
	})
	return out
}
