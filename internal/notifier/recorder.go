package notifier

import (
	"context"
	"sync"
)

// Recorded is one captured notification.
type Recorded struct {
	UserID int64
	Text   string
}

// Recorder captures notifications instead of delivering them. Used by tests
// and by the broadcast delivery assertions.
type Recorder struct {
	mu   sync.Mutex
	sent []Recorded

	// FailFor makes Notify return an error for the listed user ids.
	FailFor map[int64]error
}

func NewRecorder() *Recorder {
	return &Recorder{FailFor: make(map[int64]error)}
}

func (r *Recorder) Notify(ctx context.Context, userID int64, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.FailFor[userID]; ok {
		return err
	}
	r.sent = append(r.sent, Recorded{UserID: userID, Text: text})
	return nil
}

func (r *Recorder) Sent() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Recorded, len(r.sent))
	copy(out, r.sent)
	return out
}

func (r *Recorder) SentTo(userID int64) []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Recorded
	for _, n := range r.sent {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
