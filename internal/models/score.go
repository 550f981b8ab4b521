package models

import "time"

// Score is one submitted game result. ID is assigned by the store on insert.
type Score struct {
	ID        int64     `json:"id"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	Duration  float64   `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyAverage is the mean score of one player on one calendar day (UTC).
type DailyAverage struct {
	Day      string  `json:"day"`
	AvgScore float64 `json:"avg_score"`
}
