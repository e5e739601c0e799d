package entity

// ProfileDetail is a profile together with its relationship edges.
type ProfileDetail struct {
	Profile Profile `json:"profile"`
	Likes   []int64 `json:"likes"`
	Matches []int64 `json:"matches"`
}

type MatchNextResponse struct {
	Candidate *Profile `json:"candidate"`
}

type LikeResponse struct {
	Outcome     string      `json:"outcome"`
	OutcomeEnum LikeOutcome `json:"outcome_enum"`
}

// QuizPrompt is one question as shown to the player. The correct option is
// deliberately absent.
type QuizPrompt struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Number     int      `json:"number"` // 1-based position in the round
	Total      int      `json:"total"`
}

// QuizProgress is the result of one answer submission. Accepted is false
// when the question id did not match the current position; nothing changed
// in that case. When Done is set the round is over and the session is gone.
type QuizProgress struct {
	Accepted    bool        `json:"accepted"`
	WasCorrect  bool        `json:"was_correct"`
	Done        bool        `json:"done"`
	Correct     int         `json:"correct"`
	Total       int         `json:"total"`
	CoinsEarned int         `json:"coins_earned"`
	Next        *QuizPrompt `json:"next,omitempty"`
}

type StatsReport struct {
	UserCount       int64 `json:"user_count"`
	MatchCount      int64 `json:"match_count"`
	ActiveChatCount int64 `json:"active_chat_count"`
}

type BroadcastResult struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}
