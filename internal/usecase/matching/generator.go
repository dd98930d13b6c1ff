package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// TextGenerator is the external text-generation service.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var (
	errNoJSON       = errors.New("no json object in response")
	errMissingScore = errors.New("response has no score")
	errNoGenerator  = errors.New("text generator not configured")
)

// jsonObjectPattern spans from the first '{' to the last '}' in the text
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

const fallbackReasoningFormat = "Automated match based on genre and category compatibility. Score: %d/100"

// Generator scores a single video/campaign pair. It asks the text generator
// first and falls back to FallbackScore on any failure, so Generate always
// returns a result.
type Generator struct {
	text    TextGenerator
	timeout time.Duration
	logger  *zap.Logger
}

// NewGenerator creates a Generator. A nil text generator makes every
// call use the fallback scorer. A non-positive timeout disables the bound.
func NewGenerator(text TextGenerator, timeout time.Duration, logger *zap.Logger) *Generator {
	return &Generator{
		text:    text,
		timeout: timeout,
		logger:  logger,
	}
}

type generatedMatch struct {
	Score     *float64 `json:"score"`
	Reasoning string   `json:"reasoning"`
}

// Generate returns the compatibility of a video and a campaign
func (g *Generator) Generate(ctx context.Context, video domain.VideoRef, campaign domain.CampaignRef) domain.MatchResult {
	start := time.Now()
	result, err := g.generate(ctx, video, campaign)
	metrics.GeneratorDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		g.logger.Warn("match generation failed, using fallback scorer",
			zap.String("video_title", video.Title),
			zap.String("product_name", campaign.ProductName),
			zap.Error(err),
		)
		score := FallbackScore(video, campaign)
		metrics.MatchesGenerated.WithLabelValues(string(domain.MatchSourceFallback)).Inc()
		return domain.MatchResult{
			Score:     score,
			Reasoning: fmt.Sprintf(fallbackReasoningFormat, score),
			Source:    domain.MatchSourceFallback,
		}
	}

	metrics.MatchesGenerated.WithLabelValues(string(domain.MatchSourceAI)).Inc()
	return *result
}

func (g *Generator) generate(ctx context.Context, video domain.VideoRef, campaign domain.CampaignRef) (*domain.MatchResult, error) {
	if g.text == nil {
		return nil, errNoGenerator
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.text.GenerateText(ctx, BuildMatchPrompt(video, campaign))
	if err != nil {
		return nil, fmt.Errorf("generate text: %w", err)
	}

	return ParseMatchResponse(text)
}

// ParseMatchResponse extracts the {score, reasoning} object from free-form
// generator output. The score is rounded and clamped to [0, 100] before
// the integer conversion, so huge magnitudes saturate instead of wrapping.
func ParseMatchResponse(text string) (*domain.MatchResult, error) {
	raw := jsonObjectPattern.FindString(text)
	if raw == "" {
		return nil, errNoJSON
	}

	var parsed generatedMatch
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse match json: %w", err)
	}
	if parsed.Score == nil {
		return nil, errMissingScore
	}

	return &domain.MatchResult{
		Score:     int(math.Max(minScore, math.Min(maxScore, math.Round(*parsed.Score)))),
		Reasoning: parsed.Reasoning,
		Source:    domain.MatchSourceAI,
	}, nil
}

// BuildMatchPrompt renders the prompt sent to the text generator
func BuildMatchPrompt(video domain.VideoRef, campaign domain.CampaignRef) string {
	return fmt.Sprintf(`You are an expert in influencer marketing. Rate how well this video fits this advertising campaign.

Video:
- Title: %s
- Genre: %s
- Tone: %s

Campaign:
- Product: %s
- Category: %s
- Description: %s

Consider genre-category alignment, tone and brand fit, audience compatibility and creative synergy.

Respond with ONLY a JSON object of the form:
{"score": <integer from 0 to 100>, "reasoning": "<two or three sentences>"}`,
		video.Title, video.Genre, video.Tone,
		campaign.ProductName, campaign.Category, campaign.Description,
	)
}
