package memory

import (
	"context"
	"sort"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
)

type matchRepository struct {
	s *Store
}

func NewMatchRepository(s *Store) repository.MatchRepository {
	return &matchRepository{s: s}
}

func (r *matchRepository) Create(_ context.Context, match *domain.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.matches {
		if m.VideoID == match.VideoID && m.CampaignID == match.CampaignID {
			return domain.ErrMatchExists
		}
	}
	match.ID = r.s.id()
	match.CreatedAt = r.s.now()
	match.UpdatedAt = match.CreatedAt
	r.s.matches[match.ID] = *match
	return nil
}

func (r *matchRepository) GetByID(_ context.Context, id int) (*domain.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return &m, nil
}

func (r *matchRepository) GetByPair(_ context.Context, videoID, campaignID int) (*domain.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.matches {
		if m.VideoID == videoID && m.CampaignID == campaignID {
			return &m, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r *matchRepository) ListForCreator(_ context.Context, creatorID int) ([]*domain.MatchDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.details(func(d *domain.MatchDetails) bool { return d.CreatorID == creatorID }), nil
}

func (r *matchRepository) ListForMarketer(_ context.Context, marketerID int) ([]*domain.MatchDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.details(func(d *domain.MatchDetails) bool { return d.MarketerID == marketerID }), nil
}

func (r *matchRepository) UpdateStatus(_ context.Context, id int, status domain.MatchStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok {
		return domain.ErrMatchNotFound
	}
	m.Status = status
	m.UpdatedAt = r.s.now()
	r.s.matches[id] = m
	return nil
}

func (r *matchRepository) StatsForCreator(_ context.Context, creatorID int) (*repository.MatchStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return stats(r.s.details(func(d *domain.MatchDetails) bool { return d.CreatorID == creatorID })), nil
}

func (r *matchRepository) StatsForMarketer(_ context.Context, marketerID int) (*repository.MatchStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return stats(r.s.details(func(d *domain.MatchDetails) bool { return d.MarketerID == marketerID })), nil
}

func (s *Store) details(keep func(*domain.MatchDetails) bool) []*domain.MatchDetails {
	out := make([]*domain.MatchDetails, 0)
	for _, m := range s.matches {
		v, ok := s.videos[m.VideoID]
		if !ok {
			continue
		}
		c, ok := s.campaigns[m.CampaignID]
		if !ok {
			continue
		}
		d := &domain.MatchDetails{
			Match:       m,
			VideoTitle:  v.Title,
			CreatorID:   v.CreatorID,
			ProductName: c.ProductName,
			Category:    c.Category,
			MarketerID:  c.MarketerID,
		}
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func stats(matches []*domain.MatchDetails) *repository.MatchStats {
	st := &repository.MatchStats{Total: len(matches)}
	sum := 0
	for _, m := range matches {
		sum += m.MatchScore
		switch m.Status {
		case domain.MatchStatusAccepted:
			st.Accepted++
		case domain.MatchStatusPending:
			st.Pending++
		}
	}
	if st.Total > 0 {
		st.AverageScore = float64(sum) / float64(st.Total)
	}
	return st
}
