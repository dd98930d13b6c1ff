package domain

import "time"

type VideoStatus string

const (
	VideoStatusUploaded VideoStatus = "uploaded"
	VideoStatusMatched  VideoStatus = "matched"
)

type Video struct {
	ID           int         `json:"id" db:"id"`
	CreatorID    int         `json:"creator_id" db:"creator_id"`
	Title        string      `json:"title" db:"title"`
	Genre        string      `json:"genre" db:"genre"`
	Tone         string      `json:"tone" db:"tone"`
	Description  *string     `json:"description" db:"description"`
	FilePath     string      `json:"file_path" db:"file_path"`
	OriginalName string      `json:"original_name" db:"original_name"`
	MimeType     string      `json:"mime_type" db:"mime_type"`
	SizeBytes    int64       `json:"size_bytes" db:"size_bytes"`
	Status       VideoStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// VideoRef holds the attributes of a video that take part in matching
type VideoRef struct {
	Title string
	Genre string
	Tone  string
}

func (v *Video) Ref() VideoRef {
	return VideoRef{Title: v.Title, Genre: v.Genre, Tone: v.Tone}
}
