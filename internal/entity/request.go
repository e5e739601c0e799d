package entity

import "context"

// RegisterRequest is the payload posted by the registration web form.
// Re-registration with an existing id updates the descriptive fields and
// leaves coins, edges and the blocked flag untouched.
type RegisterRequest struct {
	Nickname  string   `json:"nickname"`
	Age       int      `json:"age"`
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Gender    string   `json:"gender"`
	Interests []string `json:"interests"`
	PhotoURL  string   `json:"photo_url"`
}

func (r *RegisterRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Nickname == "" {
		problems["Nickname"] = append(problems["Nickname"], "Nickname is required")
	}
	if len(r.Nickname) > 64 {
		problems["Nickname"] = append(problems["Nickname"], "Nickname is too long")
	}
	if r.Age < 18 {
		problems["Age"] = append(problems["Age"], "Age must be 18 or older")
	}
	if r.Country == "" {
		problems["Country"] = append(problems["Country"], "Country is required")
	}
	if r.City == "" {
		problems["City"] = append(problems["City"], "City is required")
	}
	if r.Gender == "" {
		problems["Gender"] = append(problems["Gender"], "Gender is required")
	}
	if len(r.Interests) == 0 {
		problems["Interests"] = append(problems["Interests"], "At least one interest is required")
	}

	return problems
}

type QuizAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Option     int    `json:"option"`
}

func (r *QuizAnswerRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.QuestionID == "" {
		problems["QuestionID"] = append(problems["QuestionID"], "Question id is required")
	}
	if r.Option < 0 || r.Option >= OptionCount {
		problems["Option"] = append(problems["Option"], "Option must be between 0 and 3")
	}

	return problems
}

type ChatSendRequest struct {
	Text string `json:"text"`
}

func (r *ChatSendRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Text == "" {
		problems["Text"] = append(problems["Text"], "Text is required")
	}
	if len(r.Text) > 4096 {
		problems["Text"] = append(problems["Text"], "Text is too long")
	}

	return problems
}

type BroadcastRequest struct {
	Text string `json:"text"`
}

func (r *BroadcastRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Text == "" {
		problems["Text"] = append(problems["Text"], "Text is required")
	}

	return problems
}
