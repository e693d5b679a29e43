package models

import "time"

// Company identifies a listed company whose statements are ingested.
type Company struct {
	ID        int       `json:"id"`
	Ticker    string    `json:"ticker"`
	Exchange  string    `json:"exchange"`
	Name      string    `json:"name"`
	Sector    string    `json:"sector"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
