package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// Fixed transcript copy for the result reveal.
const (
	restartText = "Tapez **r** pour recommencer le questionnaire."
	boostMarker = " 🎯"
)

// Stage is one entry of the result reveal.
type Stage struct {
	Kind  domain.EntryKind
	Text  string
	Cards []domain.RecommendationCard
}

// Renderer turns a recommendation result into transcript entries.
type Renderer struct {
	pacer driven.Pacer
}

// NewRenderer creates a renderer. A nil pacer reveals every stage at once.
func NewRenderer(pacer driven.Pacer) *Renderer {
	return &Renderer{pacer: pacer}
}

// Stages returns the reveal stages in display order: summary, analysis,
// recommendations, plan and restart. Analysis and plan are omitted when
// empty; restart is always last.
func Stages(result *domain.RecommendationResult) []Stage {
	stages := []Stage{{Kind: domain.EntrySummary, Text: summaryText(result)}}

	if narrative := result.Narrative(); narrative != "" {
		stages = append(stages, Stage{
			Kind: domain.EntryAnalysis,
			Text: "**Analyse de votre profil**\n" + narrative,
		})
	}

	cards := make([]domain.RecommendationCard, 0, len(result.Items))
	for _, item := range result.Items {
		cards = append(cards, domain.NewRecommendationCard(item))
	}
	stages = append(stages, Stage{
		Kind:  domain.EntryRecommendations,
		Text:  cardsText(cards),
		Cards: cards,
	})

	if plan := result.Plan(); plan != "" {
		stages = append(stages, Stage{
			Kind: domain.EntryPlan,
			Text: "**Plan de progression**\n" + plan,
		})
	}

	return append(stages, Stage{Kind: domain.EntryRestart, Text: restartText})
}

// RenderResult appends every stage to the transcript, waiting on the pacer
// before each one. A pacing failure is logged and the stage is still shown.
func (r *Renderer) RenderResult(ctx context.Context, t *Transcript, result *domain.RecommendationResult) {
	for _, stage := range Stages(result) {
		if r.pacer != nil {
			if err := r.pacer.Wait(ctx); err != nil {
				logger.Warn("reveal pacing: %v", err)
			}
		}
		t.Append(domain.TranscriptEntry{
			Origin: domain.OriginBot,
			Kind:   stage.Kind,
			Text:   stage.Text,
			Cards:  stage.Cards,
		})
	}
}

func summaryText(result *domain.RecommendationResult) string {
	lines := []string{"**Votre profil musical**"}
	if len(result.PreferredGenres) > 0 {
		lines = append(lines, "Genres préférés : "+strings.Join(result.PreferredGenres, ", "))
	}
	lines = append(lines,
		fmt.Sprintf("Ouverture : %.1f/5", result.Openness),
		fmt.Sprintf("Éléments évalués : %d", result.Stats.Evaluated),
	)
	return strings.Join(lines, "\n")
}

// CardText renders a single card in transcript markup.
func CardText(c domain.RecommendationCard) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**#%d %s** (%d%%)", c.Rank, c.Title, c.ScorePercent)
	if c.Boosted {
		sb.WriteString(boostMarker)
	}
	if c.IsTrack() {
		if c.Artist != "" {
			sb.WriteString("\n" + c.Artist)
		}
		if c.Genre != "" {
			sb.WriteString("\nGenre : " + c.Genre)
		}
		if c.ListenURL != "" {
			sb.WriteString("\nÉcouter : " + c.ListenURL)
		}
	} else if c.Description != "" {
		sb.WriteString("\n" + c.Description)
	}
	fmt.Fprintf(&sb, "\nSémantique %d%% · Mood %d%% · Préférences %d%%", c.Semantic, c.Mood, c.Preference)
	return sb.String()
}

func cardsText(cards []domain.RecommendationCard) string {
	if len(cards) == 0 {
		return "**Recommandations**\nAucune recommandation."
	}
	parts := make([]string, 0, len(cards)+1)
	parts = append(parts, "**Recommandations**")
	for _, c := range cards {
		parts = append(parts, CardText(c))
	}
	return strings.Join(parts, "\n\n")
}
