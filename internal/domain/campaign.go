package domain

import "time"

type Campaign struct {
	ID             int       `json:"id" db:"id"`
	MarketerID     int       `json:"marketer_id" db:"marketer_id"`
	ProductName    string    `json:"product_name" db:"product_name"`
	Category       string    `json:"category" db:"category"`
	Description    string    `json:"description" db:"description"`
	Budget         *float64  `json:"budget" db:"budget"`
	TargetAudience *string   `json:"target_audience" db:"target_audience"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// CampaignRef holds the attributes of a campaign that take part in matching
type CampaignRef struct {
	ProductName string
	Category    string
	Description string
}

func (c *Campaign) Ref() CampaignRef {
	return CampaignRef{ProductName: c.ProductName, Category: c.Category, Description: c.Description}
}
