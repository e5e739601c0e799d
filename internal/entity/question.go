package entity

// Question is one entry of the static question bank. The bank is loaded
// once at startup and read-only afterwards.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4
