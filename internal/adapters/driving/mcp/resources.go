package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/markdown"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for guide resources.
	uriScheme = "lmsguide://"

	markdownMIME = "text/markdown"
)

func topicURI(id domain.TopicID) string {
	return uriScheme + "topics/" + string(id)
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "topics",
		Name:        "topics",
		Description: "Index of all guide topics",
		MIMEType:    markdownMIME,
	}, s.handleCatalogResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "topics/{topicId}",
		Name:        "topic",
		Description: "One guide topic with steps, FAQ and tips",
		MIMEType:    markdownMIME,
	}, s.handleTopicResource)
}

func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var done domain.ProgressMap
	if s.ports.Progress != nil {
		var err error
		if done, err = s.ports.Progress.Completion(ctx); err != nil {
			return nil, fmt.Errorf("loading progress: %w", err)
		}
	}
	return markdownResult(req.Params.URI, markdown.Catalog(s.ports.Catalog.Topics(), done)), nil
}

func (s *Server) handleTopicResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractTopicID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	topic, err := s.ports.Catalog.Get(domain.TopicID(id))
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var checked domain.CheckedSteps
	if s.ports.Progress != nil {
		if checked, err = s.ports.Progress.Load(ctx, topic.ID); err != nil {
			return nil, fmt.Errorf("loading progress: %w", err)
		}
	}
	return markdownResult(req.Params.URI, markdown.Topic(topic, checked)), nil
}

func markdownResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: markdownMIME,
			Text:     text,
		}},
	}
}

// extractTopicID extracts the topic ID from a URI like lmsguide://topics/{topicId}.
func extractTopicID(uri string) string {
	const prefix = uriScheme + "topics/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
