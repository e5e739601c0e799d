package notifier

import "context"

// Notifier delivers a text to one user. Delivery is best-effort: for match
// events the match edges are the source of truth and a failed Notify never
// rolls them back.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}
