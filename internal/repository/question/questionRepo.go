package questionRepo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/defff666/cryptodivebot/internal/entity"
)

type IQuestionRepo interface {
	All() []entity.Question
	ByID(id string) (*entity.Question, bool)
	Len() int
}

type QuestionRepo struct {
	questions []entity.Question
	byID      map[string]entity.Question
}

// Load reads the question bank once at startup. The decode step fails fast
// on shape mismatches so loosely-typed records never reach the quiz engine.
func Load(path string) (*QuestionRepo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*QuestionRepo, error) {
	var questions []entity.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, &entity.ValidationError{Problems: map[string][]string{
			"questions": {fmt.Sprintf("invalid question bank JSON: %v", err)},
		}}
	}

	if len(questions) == 0 {
		return nil, &entity.ValidationError{Problems: map[string][]string{
			"questions": {"question bank is empty"},
		}}
	}

	byID := make(map[string]entity.Question, len(questions))
	for i, q := range questions {
		problems := make(map[string][]string)
		if q.ID == "" {
			problems["id"] = append(problems["id"], fmt.Sprintf("question %d: id is required", i))
		}
		if _, dup := byID[q.ID]; dup {
			problems["id"] = append(problems["id"], fmt.Sprintf("question %d: duplicate id %q", i, q.ID))
		}
		if q.Text == "" {
			problems["text"] = append(problems["text"], fmt.Sprintf("question %q: text is required", q.ID))
		}
		if len(q.Options) != entity.OptionCount {
			problems["options"] = append(problems["options"], fmt.Sprintf("question %q: expected %d options, got %d", q.ID, entity.OptionCount, len(q.Options)))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			problems["correct"] = append(problems["correct"], fmt.Sprintf("question %q: correct option %d out of range", q.ID, q.Correct))
		}
		if len(problems) > 0 {
			return nil, &entity.ValidationError{Problems: problems}
		}
		byID[q.ID] = q
	}

	return &QuestionRepo{questions: questions, byID: byID}, nil
}

func (r *QuestionRepo) All() []entity.Question { return r.questions }

func (r *QuestionRepo) ByID(id string) (*entity.Question, bool) {
	q, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &q, true
}

func (r *QuestionRepo) Len() int { return len(r.questions) }
