package domain

// MatchType identifies which part of a topic produced a match.
type MatchType string

// Match categories.
const (
	MatchTitle MatchType = "title"
	MatchStep  MatchType = "step"
	MatchFAQ   MatchType = "faq"
	MatchTip   MatchType = "tip"
)

// SearchResult represents a single header-search hit.
type SearchResult struct {
	// TopicID is the topic containing the match.
	TopicID TopicID `json:"topic_id"`

	// TopicTitle is the display title of that topic.
	TopicTitle string `json:"topic_title"`

	// MatchType is the matched part of the topic.
	MatchType MatchType `json:"match_type"`

	// Text is the matched fragment (description for title matches,
	// question text for FAQ matches).
	Text string `json:"text"`
}

// DefaultSearchLimit caps header-search results.
const DefaultSearchLimit = 5

// ReplyKind records which matcher stage produced a reply.
type ReplyKind string

// Reply kinds, in matcher priority order.
const (
	ReplyGreeting    ReplyKind = "greeting"
	ReplyCurrentFAQ  ReplyKind = "current_faq"
	ReplyCurrentStep ReplyKind = "current_step"
	ReplyGlobalTitle ReplyKind = "title"
	ReplyGlobalTip   ReplyKind = "tip"
	ReplyGlobalStep  ReplyKind = "step"
	ReplyGlobalFAQ   ReplyKind = "faq"
	ReplyFallback    ReplyKind = "fallback"
)

// Reply is the assistant's answer to one query.
type Reply struct {
	Text    string    `json:"text"`
	TopicID TopicID   `json:"topic_id,omitempty"`
	Kind    ReplyKind `json:"kind"`
}

// Message converts the reply into an assistant chat message.
func (r Reply) Message() ChatMessage {
	return ChatMessage{Role: RoleAssistant, Text: r.Text, TopicID: r.TopicID}
}

// FallbackReply is returned when nothing in the catalog matches.
func FallbackReply() Reply {
	return Reply{Text: FallbackText, Kind: ReplyFallback}
}
