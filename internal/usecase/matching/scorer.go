package matching

import (
	"strings"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
)

const (
	baseScore            = 50
	professionalBizBonus = 10
	minScore, maxScore   = 0, 100
)

// genreCategoryBonus maps a video genre to the bonus each campaign category earns.
// Keys are lower case. Read-only after init.
var genreCategoryBonus = map[string]map[string]int{
	"comedy": {
		"entertainment": 20,
		"food":          15,
		"lifestyle":     10,
	},
	"educational": {
		"technology": 20,
		"healthcare": 15,
		"finance":    10,
	},
	"lifestyle": {
		"fashion": 20,
		"beauty":  15,
		"travel":  10,
	},
	"entertainment": {
		"gaming": 20,
		"music":  15,
		"sports": 10,
	},
}

// FallbackScore is the rule-based compatibility score used when the text
// generator cannot produce one. It is pure and always within [0, 100].
func FallbackScore(video domain.VideoRef, campaign domain.CampaignRef) int {
	score := baseScore

	genre := strings.ToLower(video.Genre)
	category := strings.ToLower(campaign.Category)

	if bonuses, ok := genreCategoryBonus[genre]; ok {
		score += bonuses[category]
	}

	if strings.Contains(strings.ToLower(video.Tone), "professional") && strings.Contains(category, "business") {
		score += professionalBizBonus
	}

	return clamp(score)
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
