package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Vibeyf resources.
	uriScheme = "vibeyf://"

	// runListLimit bounds the runs resource.
	runListLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "questionnaire",
		Name:        "questionnaire",
		Description: "The questions asked in a run, in order",
		MIMEType:    "application/json",
	}, s.handleQuestionnaireResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Completed runs kept in the local archive, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	// Template for a single archived run.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "Answers and recommendations of an archived run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleQuestionnaireResource returns the flattened questionnaire.
func (s *Server) handleQuestionnaireResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	seq, err := s.ports.Questionnaire.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading questionnaire: %w", err)
	}

	type questionInfo struct {
		ID          string `json:"id"`
		Kind        string `json:"kind"`
		Prompt      string `json:"prompt"`
		Scale       string `json:"scale,omitempty"`
		Placeholder string `json:"placeholder,omitempty"`
		List        bool   `json:"list,omitempty"`
	}

	infos := make([]questionInfo, len(seq))
	for i, q := range seq {
		infos[i] = questionInfo{
			ID:          q.ID,
			Kind:        q.Kind.String(),
			Prompt:      domain.PlainText(q.Prompt),
			Scale:       q.Scale,
			Placeholder: q.Placeholder,
			List:        q.IsList,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleRunsResource lists archived runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	runs, err := s.ports.History.List(ctx, runListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	type runInfo struct {
		ID          string    `json:"id"`
		CompletedAt time.Time `json:"completed_at"`
		Answers     int       `json:"answers"`
		TopItem     string    `json:"top_item,omitempty"`
		Genres      []string  `json:"genres,omitempty"`
	}

	infos := make([]runInfo, len(runs))
	for i, r := range runs {
		infos[i] = runInfo{
			ID:          r.ID,
			CompletedAt: r.CompletedAt,
			Answers:     r.Answers,
			TopItem:     r.TopItem,
			Genres:      r.Genres,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleRunResource returns one archived run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract runId from URI: vibeyf://runs/{runId}
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := s.ports.History.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	answers := make(map[string]string, run.Responses.Len())
	for id, v := range run.Responses.Ratings {
		answers[id] = fmt.Sprint(v)
	}
	for id, a := range run.Responses.Open {
		answers[id] = a.Display()
	}

	detail := struct {
		ID              string            `json:"id"`
		CompletedAt     time.Time         `json:"completed_at"`
		Answers         map[string]string `json:"answers"`
		Recommendations RecommendOutput   `json:"result"`
	}{
		ID:              run.ID,
		CompletedAt:     run.CompletedAt,
		Answers:         answers,
		Recommendations: recommendOutput(&run.Result),
	}

	return jsonResult(req.Params.URI, detail)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like vibeyf://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
