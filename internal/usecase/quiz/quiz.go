package quiz

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/notifier"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
	questionRepo "github.com/defff666/cryptodivebot/internal/repository/question"
)

const DefaultRoundLength = 5

// ISessionStore holds the ephemeral per-user quiz state. Get returns
// (nil, nil) when no session exists.
type ISessionStore interface {
	Get(ctx context.Context, userID int64) (*entity.QuizSession, error)
	Put(ctx context.Context, session *entity.QuizSession) error
	Delete(ctx context.Context, userID int64) error
}

type IQuizUseCase interface {
	// Start begins a fresh round for the user, replacing any round in
	// progress, and returns the first question.
	Start(ctx context.Context, userID int64) (*entity.QuizPrompt, error)

	// Answer scores one submission against the current question. A stale
	// question id is rejected without touching state; entity.ErrNoSession
	// is returned when no round is in progress.
	Answer(ctx context.Context, userID int64, questionID string, option int) (*entity.QuizProgress, error)
}

type quizUseCase struct {
	profiles  profileRepo.IProfileRepo
	questions questionRepo.IQuestionRepo
	sessions  ISessionStore
	notifier  notifier.Notifier
	length    int

	locks [64]sync.Mutex
}

func New(profiles profileRepo.IProfileRepo, questions questionRepo.IQuestionRepo, sessions ISessionStore, n notifier.Notifier, roundLength int) (IQuizUseCase, error) {
	if roundLength <= 0 {
		roundLength = DefaultRoundLength
	}
	if questions.Len() < roundLength {
		return nil, fmt.Errorf("question bank holds %d questions, need at least %d", questions.Len(), roundLength)
	}
	return &quizUseCase{
		profiles:  profiles,
		questions: questions,
		sessions:  sessions,
		notifier:  n,
		length:    roundLength,
	}, nil
}

// lockUser serializes submissions per user; sessions are single-writer.
// Locks are striped by user id so memory stays bounded no matter how many
// players a process has seen.
func (q *quizUseCase) lockUser(userID int64) func() {
	l := &q.locks[uint64(userID)%uint64(len(q.locks))]
	l.Lock()
	return l.Unlock
}

func (q *quizUseCase) Start(ctx context.Context, userID int64) (*entity.QuizPrompt, error) {
	if _, err := q.profiles.Get(ctx, userID); err != nil {
		return nil, err
	}

	unlock := q.lockUser(userID)
	defer unlock()

	all := q.questions.All()
	ids := make([]string, q.length)
	for i, idx := range rand.Perm(len(all))[:q.length] {
		ids[i] = all[idx].ID
	}

	session := &entity.QuizSession{
		UserID:      userID,
		QuestionIDs: ids,
		StartedAt:   time.Now(),
	}
	if err := q.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return q.prompt(session)
}

func (q *quizUseCase) Answer(ctx context.Context, userID int64, questionID string, option int) (*entity.QuizProgress, error) {
	unlock := q.lockUser(userID)
	defer unlock()

	session, err := q.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrNoSession
	}

	currentID, ok := session.CurrentQuestionID()
	if !ok || currentID != questionID {
		// Stale or out-of-order submission; leave everything untouched.
		return &entity.QuizProgress{
			Accepted: false,
			Correct:  session.Correct,
			Total:    session.Length(),
		}, nil
	}

	question, ok := q.questions.ByID(currentID)
	if !ok {
		return nil, fmt.Errorf("question %q missing from bank", currentID)
	}

	wasCorrect := option == question.Correct
	if wasCorrect {
		session.Correct++
	}
	session.Index++

	// Persist the advanced session before paying out. A store failure then
	// leaves the question unconsumed and no coin moved; the reverse order
	// would let a failed write re-credit the same question.
	if session.Finished() {
		if err := q.sessions.Delete(ctx, userID); err != nil {
			return nil, err
		}
	} else {
		if err := q.sessions.Put(ctx, session); err != nil {
			return nil, err
		}
	}

	if wasCorrect {
		if err := q.profiles.IncrementCoins(ctx, userID, 1); err != nil {
			return nil, err
		}
	}

	if session.Finished() {
		summary := &entity.QuizProgress{
			Accepted:    true,
			WasCorrect:  wasCorrect,
			Done:        true,
			Correct:     session.Correct,
			Total:       session.Length(),
			CoinsEarned: session.Correct,
		}
		q.notifySummary(ctx, userID, summary)
		return summary, nil
	}

	next, err := q.prompt(session)
	if err != nil {
		return nil, err
	}
	return &entity.QuizProgress{
		Accepted:   true,
		WasCorrect: wasCorrect,
		Correct:    session.Correct,
		Total:      session.Length(),
		Next:       next,
	}, nil
}

func (q *quizUseCase) prompt(session *entity.QuizSession) (*entity.QuizPrompt, error) {
	id, ok := session.CurrentQuestionID()
	if !ok {
		return nil, entity.ErrNoSession
	}
	question, ok := q.questions.ByID(id)
	if !ok {
		return nil, fmt.Errorf("question %q missing from bank", id)
	}
	return &entity.QuizPrompt{
		QuestionID: question.ID,
		Text:       question.Text,
		Options:    question.Options,
		Number:     session.Index + 1,
		Total:      session.Length(),
	}, nil
}

func (q *quizUseCase) notifySummary(ctx context.Context, userID int64, summary *entity.QuizProgress) {
	text := fmt.Sprintf("Quiz finished! You answered %d of %d correctly and earned %d coins.",
		summary.Correct, summary.Total, summary.CoinsEarned)
	if err := q.notifier.Notify(ctx, userID, text); err != nil {
		log.Printf("failed to send quiz summary to %d: %v", userID, err)
	}
}
