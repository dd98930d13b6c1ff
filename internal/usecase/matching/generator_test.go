package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubText struct {
	reply   string
	err     error
	prompts []string
	block   bool
}

func (s *stubText) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, s.err
}

var (
	comedyVideo   = domain.VideoRef{Title: "Office Pranks", Genre: "comedy", Tone: "playful"}
	entCampaign   = domain.CampaignRef{ProductName: "StreamMax", Category: "entertainment", Description: "Streaming service"}
	fallbackFor70 = "Automated match based on genre and category compatibility. Score: 70/100"
)

func TestGenerate_ParsesGeneratorJSON(t *testing.T) {
	text := &stubText{reply: `Sure! Here is my assessment:
{"score": 87, "reasoning": "Comedy content fits a streaming brand."}
Hope that helps.`}
	g := NewGenerator(text, time.Second, zap.NewNop())

	result := g.Generate(context.Background(), comedyVideo, entCampaign)

	require.Equal(t, domain.MatchResult{
		Score:     87,
		Reasoning: "Comedy content fits a streaming brand.",
		Source:    domain.MatchSourceAI,
	}, result)
	require.Len(t, text.prompts, 1)
	require.Contains(t, text.prompts[0], "Office Pranks")
	require.Contains(t, text.prompts[0], "StreamMax")
	require.Contains(t, text.prompts[0], "Streaming service")
}

func TestGenerate_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		text *stubText
	}{
		{name: "network error", text: &stubText{err: errors.New("connection reset")}},
		{name: "no json", text: &stubText{reply: "I think this is a great match, 90/100."}},
		{name: "invalid json", text: &stubText{reply: "{score: 90, reasoning: unquoted}"}},
		{name: "missing score", text: &stubText{reply: `{"reasoning": "no number here"}`}},
		{name: "string score", text: &stubText{reply: `{"score": "high", "reasoning": "r"}`}},
		{name: "empty", text: &stubText{reply: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.text, time.Second, zap.NewNop())
			result := g.Generate(context.Background(), comedyVideo, entCampaign)

			require.Equal(t, FallbackScore(comedyVideo, entCampaign), result.Score)
			require.Equal(t, fallbackFor70, result.Reasoning)
			require.Equal(t, domain.MatchSourceFallback, result.Source)
			require.Len(t, tt.text.prompts, 1, "no retries")
		})
	}
}

func TestGenerate_TimeoutFallsBack(t *testing.T) {
	g := NewGenerator(&stubText{block: true}, 20*time.Millisecond, zap.NewNop())

	start := time.Now()
	result := g.Generate(context.Background(), comedyVideo, entCampaign)

	require.Less(t, time.Since(start), 2*time.Second)
	require.Equal(t, domain.MatchSourceFallback, result.Source)
	require.Equal(t, 70, result.Score)
}

func TestGenerate_NilGenerator(t *testing.T) {
	g := NewGenerator(nil, time.Second, zap.NewNop())
	result := g.Generate(context.Background(), comedyVideo, entCampaign)
	require.Equal(t, domain.MatchResult{Score: 70, Reasoning: fallbackFor70, Source: domain.MatchSourceFallback}, result)
}

func TestParseMatchResponse(t *testing.T) {
	t.Run("markdown fenced", func(t *testing.T) {
		res, err := ParseMatchResponse("```json\n{\"score\": 55, \"reasoning\": \"ok\"}\n```")
		require.NoError(t, err)
		require.Equal(t, 55, res.Score)
		require.Equal(t, "ok", res.Reasoning)
	})

	t.Run("nested braces in reasoning", func(t *testing.T) {
		res, err := ParseMatchResponse(`prefix {"score": 60, "reasoning": "fits {well}"} suffix`)
		require.NoError(t, err)
		require.Equal(t, 60, res.Score)
		require.Equal(t, "fits {well}", res.Reasoning)
	})

	t.Run("fractional score rounds", func(t *testing.T) {
		res, err := ParseMatchResponse(`{"score": 72.6, "reasoning": "r"}`)
		require.NoError(t, err)
		require.Equal(t, 73, res.Score)
	})

	t.Run("out of range score is clamped", func(t *testing.T) {
		res, err := ParseMatchResponse(`{"score": 150, "reasoning": "r"}`)
		require.NoError(t, err)
		require.Equal(t, 100, res.Score)

		res, err = ParseMatchResponse(`{"score": -3, "reasoning": "r"}`)
		require.NoError(t, err)
		require.Equal(t, 0, res.Score)

		for raw, want := range map[string]int{
			`{"score": 1e20, "reasoning": "r"}`:  100,
			`{"score": 1e300, "reasoning": "r"}`: 100,
			`{"score": -1e20, "reasoning": "r"}`: 0,
			`{"score": 99.6, "reasoning": "r"}`:  100,
		} {
			res, err = ParseMatchResponse(raw)
			require.NoError(t, err, raw)
			require.Equal(t, want, res.Score, raw)
		}
	})

	t.Run("greedy span across two objects is invalid", func(t *testing.T) {
		_, err := ParseMatchResponse(`{"score": 1} and {"score": 2}`)
		require.Error(t, err)
	})
}
