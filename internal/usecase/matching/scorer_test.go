package matching

import (
	"testing"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFallbackScore(t *testing.T) {
	tests := []struct {
		name     string
		genre    string
		tone     string
		category string
		want     int
	}{
		{name: "comedy entertainment", genre: "comedy", tone: "x", category: "entertainment", want: 70},
		{name: "comedy food", genre: "comedy", tone: "x", category: "food", want: 65},
		{name: "comedy lifestyle", genre: "comedy", tone: "x", category: "lifestyle", want: 60},
		{name: "comedy unknown category", genre: "comedy", tone: "x", category: "unknown", want: 50},
		{name: "educational technology", genre: "educational", tone: "calm", category: "technology", want: 70},
		{name: "educational healthcare", genre: "educational", tone: "calm", category: "healthcare", want: 65},
		{name: "educational finance", genre: "educational", tone: "calm", category: "finance", want: 60},
		{name: "lifestyle fashion", genre: "lifestyle", tone: "calm", category: "fashion", want: 70},
		{name: "lifestyle beauty", genre: "lifestyle", tone: "calm", category: "beauty", want: 65},
		{name: "lifestyle travel", genre: "lifestyle", tone: "calm", category: "travel", want: 60},
		{name: "entertainment gaming", genre: "entertainment", tone: "calm", category: "gaming", want: 70},
		{name: "entertainment music", genre: "entertainment", tone: "calm", category: "music", want: 65},
		{name: "entertainment sports", genre: "entertainment", tone: "calm", category: "sports", want: 60},
		{name: "unknown genre", genre: "documentary", tone: "calm", category: "technology", want: 50},
		{name: "case insensitive", genre: "CoMeDy", tone: "x", category: "ENTERTAINMENT", want: 70},
		{name: "professional business", genre: "educational", tone: "very professional", category: "business solutions", want: 60},
		{name: "professional without business", genre: "educational", tone: "Professional", category: "technology", want: 70},
		{name: "business without professional", genre: "educational", tone: "casual", category: "business", want: 50},
		{name: "professional uppercase business", genre: "comedy", tone: "PROFESSIONAL", category: "Small Business", want: 60},
		{name: "empty", want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackScore(
				domain.VideoRef{Title: "t", Genre: tt.genre, Tone: tt.tone},
				domain.CampaignRef{ProductName: "p", Category: tt.category},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackScore_DeterministicAndBounded(t *testing.T) {
	genres := []string{"comedy", "educational", "lifestyle", "entertainment", "other", ""}
	tones := []string{"professional", "fun", "", "unprofessional"}
	categories := []string{"entertainment", "food", "technology", "fashion", "gaming", "business", "business gaming", ""}

	for _, g := range genres {
		for _, tone := range tones {
			for _, c := range categories {
				v := domain.VideoRef{Genre: g, Tone: tone}
				camp := domain.CampaignRef{Category: c}
				first := FallbackScore(v, camp)
				assert.Equal(t, first, FallbackScore(v, camp))
				assert.GreaterOrEqual(t, first, 0)
				assert.LessOrEqual(t, first, 100)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5))
	assert.Equal(t, 100, clamp(140))
	assert.Equal(t, 42, clamp(42))
}
