package storage

import (
	"database/sql"
	"time"

	"ByThePowerOfMemory/internal/models"
)

// Timestamps are stored as RFC 3339 UTC strings so sqlite's date()
// groups on the UTC calendar day.
const timestampLayout = time.RFC3339

// ScoreStore persists and queries score records. It is append-only:
// nothing ever updates or deletes a row.
type ScoreStore struct {
	db *sql.DB
}

func NewScoreStore(db *sql.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

// Insert stores a new score record and fills in its assigned id.
// A zero Timestamp defaults to the current UTC time.
func (s *ScoreStore) Insert(score *models.Score) (int64, error) {
	if score.Timestamp.IsZero() {
		score.Timestamp = time.Now().UTC()
	}

	stmt, err := s.db.Prepare("INSERT INTO scores(player, score, duration, timestamp) VALUES(?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(score.Player, score.Score, score.Duration, score.Timestamp.UTC().Format(timestampLayout))
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	score.ID = id
	return id, nil
}

// TopScores returns up to limit records, highest score first. Ties go to
// the earlier submission; id breaks exact timestamp collisions.
func (s *ScoreStore) TopScores(limit int) ([]models.Score, error) {
	query := `
		SELECT id, player, score, duration, timestamp
		FROM scores
		ORDER BY score DESC, timestamp ASC, id ASC
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		var sc models.Score
		var tsStr string

		if err := rows.Scan(&sc.ID, &sc.Player, &sc.Score, &sc.Duration, &tsStr); err != nil {
			return nil, err
		}
		sc.Timestamp = parseTimestamp(tsStr)
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// DailyAverages returns, for every player, the mean score per UTC calendar
// day rounded to 2 decimal places, days ascending.
func (s *ScoreStore) DailyAverages() (map[string][]models.DailyAverage, error) {
	query := `
		SELECT player, date(timestamp) AS day, ROUND(AVG(score), 2) AS avg_score
		FROM scores
		GROUP BY player, date(timestamp)
		ORDER BY date(timestamp) ASC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make(map[string][]models.DailyAverage)
	for rows.Next() {
		var player string
		var avg models.DailyAverage

		if err := rows.Scan(&player, &avg.Day, &avg.AvgScore); err != nil {
			return nil, err
		}
		averages[player] = append(averages[player], avg)
	}
	return averages, rows.Err()
}

func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t
	}
	// sqlite DATETIME defaults write this layout
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}
