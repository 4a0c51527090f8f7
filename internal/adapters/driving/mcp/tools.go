package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// TopicsInput is the input schema for the topics tool.
type TopicsInput struct{}

// TopicsOutput is the output schema for the topics tool.
type TopicsOutput struct {
	Topics []TopicOutput `json:"topics"`
}

// TopicOutput summarises one topic.
type TopicOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       int    `json:"steps"`
	URI         string `json:"uri"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query   string `json:"query" jsonschema:"the question, in Arabic or English"`
	TopicID string `json:"topic_id,omitempty" jsonschema:"topic the user is currently reading; its FAQ and steps are preferred"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Reply   string `json:"reply"`
	TopicID string `json:"topic_id,omitempty"`
	Kind    string `json:"kind"`
}

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to look for in topic titles, steps and FAQ questions"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

// QuizInput is the input schema for the quiz tool.
type QuizInput struct {
	TopicID string `json:"topic_id,omitempty" jsonschema:"topic to draw questions from; empty gives a general question"`
	Text    string `json:"text,omitempty" jsonschema:"free text naming a topic, used when topic_id is empty"`
}

// QuizOutput is the output schema for the quiz tool.
type QuizOutput struct {
	TopicID   string                `json:"topic_id,omitempty"`
	Questions []domain.QuizQuestion `json:"questions"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "topics",
		Description: "List the LMS guide topics in order",
	}, s.handleTopics)

	if s.ports.Assistant != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ask",
			Description: "Ask the LMS guide assistant a question",
		}, s.handleAsk)
	}
	if s.ports.Search != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search",
			Description: "Search topic titles, steps and FAQ questions",
		}, s.handleSearch)
	}
	if s.ports.Quiz != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "quiz",
			Description: "Draw practice questions for a topic",
		}, s.handleQuiz)
	}
}

func (s *Server) handleTopics(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ TopicsInput,
) (*mcp.CallToolResult, TopicsOutput, error) {
	topics := s.ports.Catalog.Topics()
	output := TopicsOutput{Topics: make([]TopicOutput, len(topics))}
	for i := range topics {
		output.Topics[i] = TopicOutput{
			ID:          string(topics[i].ID),
			Title:       topics[i].Title,
			Description: topics[i].Description,
			Steps:       topics[i].StepCount(),
			URI:         topicURI(topics[i].ID),
		}
	}
	return nil, output, nil
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	reply, err := s.ports.Assistant.Ask(ctx, input.Query, domain.TopicID(input.TopicID))
	if err != nil {
		return nil, AskOutput{}, err
	}
	return nil, AskOutput{
		Reply:   reply.Text,
		TopicID: string(reply.TopicID),
		Kind:    string(reply.Kind),
	}, nil
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return nil, SearchOutput{Results: results, Count: len(results)}, nil
}

func (s *Server) handleQuiz(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QuizInput,
) (*mcp.CallToolResult, QuizOutput, error) {
	if input.TopicID != "" {
		id, err := domain.ParseTopicID(input.TopicID)
		if err != nil {
			return nil, QuizOutput{}, err
		}
		questions, err := s.ports.Quiz.Select(ctx, id)
		if err != nil {
			return nil, QuizOutput{}, fmt.Errorf("selecting quiz: %w", err)
		}
		return nil, QuizOutput{TopicID: string(id), Questions: questions}, nil
	}

	questions, id, err := s.ports.Quiz.ForText(ctx, input.Text, "")
	if err != nil {
		return nil, QuizOutput{}, fmt.Errorf("selecting quiz: %w", err)
	}
	return nil, QuizOutput{TopicID: string(id), Questions: questions}, nil
}
