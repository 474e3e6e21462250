package votes

// Type is a user's vote on a deal. Absence of a row is NEUTRAL.
type Type string

const (
	Upvote   Type = "UPVOTE"
	Downvote Type = "DOWNVOTE"
	Neutral  Type = "NEUTRAL"
)

// Valid reports whether t is one of the three known vote values.
func (t Type) Valid() bool {
	switch t {
	case Upvote, Downvote, Neutral:
		return true
	}
	return false
}
