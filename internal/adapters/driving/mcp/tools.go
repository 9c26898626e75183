package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Answers map[string]string `json:"answers" jsonschema:"answers keyed by question id: ratings as 1 to 5, list answers comma-separated"`
}

// RecommendOutput is the output schema for the recommend tool.
type RecommendOutput struct {
	PreferredGenres []string          `json:"preferred_genres,omitempty"`
	Openness        float64           `json:"openness"`
	Evaluated       int               `json:"evaluated"`
	Analysis        string            `json:"analysis,omitempty"`
	Plan            string            `json:"plan,omitempty"`
	Items           []RecommendedItem `json:"recommendations"`
	Count           int               `json:"count"`
}

// RecommendedItem represents a single recommendation.
type RecommendedItem struct {
	Rank         int    `json:"rank"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Artist       string `json:"artist,omitempty"`
	Genre        string `json:"genre,omitempty"`
	ListenURL    string `json:"listen_url,omitempty"`
	Description  string `json:"description,omitempty"`
	ScorePercent int    `json:"score_percent"`
	Boosted      bool   `json:"genre_boost,omitempty"`
}

// HealthInput is the input schema for the health tool.
type HealthInput struct{}

// HealthOutput is the output schema for the health tool.
type HealthOutput struct {
	Endpoint        string `json:"endpoint"`
	Status          string `json:"status"`
	Healthy         bool   `json:"healthy"`
	GenerationReady bool   `json:"generation_ready"`
	Error           string `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Answer the music questionnaire and return ranked recommendations",
	}, s.handleRecommend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "health",
		Description: "Check whether the scoring backend is up",
	}, s.handleHealth)
}

// handleRecommend runs a complete questionnaire with the given answers.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	if s.ports.Runners == nil {
		return nil, RecommendOutput{}, ErrRecommendUnavailable
	}

	runner := s.ports.Runners()
	if err := runner.Start(ctx); err != nil {
		return nil, RecommendOutput{}, err
	}

	for {
		q, ok := runner.Current()
		if !ok {
			break
		}
		raw, found := input.Answers[q.ID]
		if !found {
			return nil, RecommendOutput{}, fmt.Errorf("%w: no answer for %s", domain.ErrNotFound, q.ID)
		}
		if err := runner.Dispatch(ctx, domain.AnswerFor(q, raw)); err != nil {
			return nil, RecommendOutput{}, fmt.Errorf("answer %s: %w", q.ID, err)
		}
	}

	result := runner.Result()
	if result == nil {
		return nil, RecommendOutput{}, fmt.Errorf("%w: run ended without a result", domain.ErrSubmission)
	}

	return nil, recommendOutput(result), nil
}

func recommendOutput(result *domain.RecommendationResult) RecommendOutput {
	output := RecommendOutput{
		PreferredGenres: result.PreferredGenres,
		Openness:        result.Openness,
		Evaluated:       result.Stats.Evaluated,
		Analysis:        result.Narrative(),
		Plan:            result.Plan(),
		Items:           make([]RecommendedItem, len(result.Items)),
		Count:           len(result.Items),
	}

	for i, item := range result.Items {
		card := domain.NewRecommendationCard(item)
		output.Items[i] = RecommendedItem{
			Rank:         card.Rank,
			Kind:         card.Kind,
			Title:        card.Title,
			Artist:       card.Artist,
			Genre:        card.Genre,
			ListenURL:    card.ListenURL,
			Description:  card.Description,
			ScorePercent: card.ScorePercent,
			Boosted:      card.Boosted,
		}
	}

	return output
}

// handleHealth probes the backend. A degraded or unreachable backend is
// reported in the output rather than as a tool error.
func (s *Server) handleHealth(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ HealthInput,
) (*mcp.CallToolResult, HealthOutput, error) {
	if s.ports.Health == nil {
		return nil, HealthOutput{}, errors.New("health service not configured")
	}

	output := HealthOutput{Endpoint: s.ports.Health.Endpoint()}
	report, err := s.ports.Health.Check(ctx)
	if report != nil {
		output.Status = report.Status
		output.Healthy = report.Healthy()
		output.GenerationReady = report.GenerationReady
	}
	if err != nil {
		output.Error = err.Error()
	}

	return nil, output, nil
}
