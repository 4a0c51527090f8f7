package domain

import "time"

// Vote is a helpfulness rating for a topic page.
type Vote string

// Votes.
const (
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// IsValid returns true if the vote is recognised.
func (v Vote) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// Feedback records one helpfulness vote.
type Feedback struct {
	ID        string
	TopicID   TopicID
	Vote      Vote
	CreatedAt time.Time
}

// FeedbackSummary counts votes for a topic.
type FeedbackSummary struct {
	TopicID TopicID
	Up      int
	Down    int
}
