package domain

import "time"

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// MatchSource records which scorer produced a match
type MatchSource string

const (
	MatchSourceAI       MatchSource = "ai"
	MatchSourceFallback MatchSource = "fallback"
)

// MatchResult is the outcome of scoring a single video/campaign pair
type MatchResult struct {
	Score     int         `json:"score"`
	Reasoning string      `json:"reasoning"`
	Source    MatchSource `json:"source"`
}

type Match struct {
	ID         int         `json:"id" db:"id"`
	VideoID    int         `json:"video_id" db:"video_id"`
	CampaignID int         `json:"campaign_id" db:"campaign_id"`
	MatchScore int         `json:"match_score" db:"match_score"`
	Reasoning  string      `json:"reasoning" db:"reasoning"`
	Source     MatchSource `json:"source" db:"source"`
	Status     MatchStatus `json:"status" db:"status"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// MatchDetails is a match joined with the titles of both sides
type MatchDetails struct {
	Match
	VideoTitle  string `json:"video_title" db:"video_title"`
	CreatorID   int    `json:"creator_id" db:"creator_id"`
	ProductName string `json:"product_name" db:"product_name"`
	Category    string `json:"category" db:"category"`
	MarketerID  int    `json:"marketer_id" db:"marketer_id"`
}

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return true
	}
	return false
}
