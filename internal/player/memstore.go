package player

import (
	"context"
	"sort"
	"sync"

	"github.com/promptquest/backend/internal/models"
)

// MemStore keeps everything in process memory. Used when no database is
// configured and in tests.
type MemStore struct {
	mu          sync.Mutex
	progress    map[string][]byte
	submissions map[string][]models.QuestSubmission
}

func NewMemStore() *MemStore {
	return &MemStore{
		progress:    make(map[string][]byte),
		submissions: make(map[string][]models.QuestSubmission),
	}
}

func (s *MemStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.progress[key]
	if !ok {
		return nil, false, nil
	}
	cp := append([]byte(nil), data...)
	return cp, true, nil
}

func (s *MemStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) LogSubmission(ctx context.Context, sub models.QuestSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions[sub.PlayerKey] = append(s.submissions[sub.PlayerKey], sub)
	return nil
}

func (s *MemStore) ListSubmissions(ctx context.Context, key string, limit int) ([]models.QuestSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 50
	}
	subs := append([]models.QuestSubmission(nil), s.submissions[key]...)
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
	if len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}
