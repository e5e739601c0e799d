package entity

import "time"

// QuizSession is the ephemeral per-user state of one trivia round. It lives
// in the session store (redis with a TTL, or process memory) and is
// discarded as soon as the round completes; no history is retained.
type QuizSession struct {
	UserID      int64     `json:"user_id"`
	QuestionIDs []string  `json:"question_ids"`
	Index       int       `json:"index"`
	Correct     int       `json:"correct"`
	StartedAt   time.Time `json:"started_at"`
}

func (s *QuizSession) Length() int { return len(s.QuestionIDs) }

func (s *QuizSession) Finished() bool { return s.Index >= len(s.QuestionIDs) }

// CurrentQuestionID returns the id the engine expects an answer for.
func (s *QuizSession) CurrentQuestionID() (string, bool) {
	if s.Finished() {
		return "", false
	}
	return s.QuestionIDs[s.Index], true
}
