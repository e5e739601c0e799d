package entity

// LikeOutcome is the result of a like operation.
type LikeOutcome uint

const (
	OutcomeLiked    LikeOutcome = iota + 1 // like recorded, no mutual edge yet
	OutcomeMatch                           // this like completed a new mutual match
	OutcomeRejected                        // self-like or blocked target, no-op
	OutcomeNotFound                        // target has no profile
)

func (o LikeOutcome) String() string {
	switch o {
	case OutcomeLiked:
		return "Liked"
	case OutcomeMatch:
		return "Match"
	case OutcomeRejected:
		return "Rejected"
	case OutcomeNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
