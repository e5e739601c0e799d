package quiz

import (
	"context"
	"sync"

	"github.com/defff666/cryptodivebot/internal/entity"
)

// MemorySessionStore keeps sessions in process memory. Single-instance
// deployments and tests only; sessions do not survive a restart.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*entity.QuizSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[int64]*entity.QuizSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, userID int64) (*entity.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	copied := *session
	copied.QuestionIDs = append([]string(nil), session.QuestionIDs...)
	return &copied, nil
}

func (s *MemorySessionStore) Put(ctx context.Context, session *entity.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	copied.QuestionIDs = append([]string(nil), session.QuestionIDs...)
	s.sessions[session.UserID] = &copied
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
