package memory

import (
	"context"
	"sort"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
)

type videoRepository struct {
	s *Store
}

func NewVideoRepository(s *Store) repository.VideoRepository {
	return &videoRepository{s: s}
}

func (r *videoRepository) Create(_ context.Context, video *domain.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	video.ID = r.s.id()
	video.CreatedAt = r.s.now()
	video.UpdatedAt = video.CreatedAt
	r.s.videos[video.ID] = *video
	return nil
}

func (r *videoRepository) GetByID(_ context.Context, id int) (*domain.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.videos[id]
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	return &v, nil
}

func (r *videoRepository) List(_ context.Context) ([]*domain.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedVideos(func(*domain.Video) bool { return true }, false), nil
}

func (r *videoRepository) ListByCreator(_ context.Context, creatorID int) ([]*domain.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedVideos(func(v *domain.Video) bool { return v.CreatorID == creatorID }, true), nil
}

func (r *videoRepository) UpdateStatus(_ context.Context, id int, status domain.VideoStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.videos[id]
	if !ok {
		return domain.ErrVideoNotFound
	}
	v.Status = status
	v.UpdatedAt = r.s.now()
	r.s.videos[id] = v
	return nil
}

func (r *videoRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.videos[id]; !ok {
		return domain.ErrVideoNotFound
	}
	delete(r.s.videos, id)
	for mid, m := range r.s.matches {
		if m.VideoID == id {
			delete(r.s.matches, mid)
		}
	}
	return nil
}

func (r *videoRepository) CountByCreator(_ context.Context, creatorID int) (int, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total, matched := 0, 0
	for _, v := range r.s.videos {
		if v.CreatorID != creatorID {
			continue
		}
		total++
		if v.Status == domain.VideoStatusMatched {
			matched++
		}
	}
	return total, matched, nil
}

// sortedVideos must be called with s.mu held
func (s *Store) sortedVideos(keep func(*domain.Video) bool, newestFirst bool) []*domain.Video {
	out := make([]*domain.Video, 0, len(s.videos))
	for _, v := range s.videos {
		v := v
		if keep(&v) {
			out = append(out, &v)
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
