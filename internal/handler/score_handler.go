package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"ByThePowerOfMemory/internal/models"
	"ByThePowerOfMemory/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultScoreboardLimit = 10

// Handler bundles the score store and logger for the API routes.
type Handler struct {
	store  *storage.ScoreStore
	logger *zap.Logger
}

func New(store *storage.ScoreStore, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Submit request body. Pointer fields distinguish a missing field from a
// zero value so validation can reject incomplete payloads.
type SubmitScoreRequest struct {
	Player    *string  `json:"player" example:"mia"`
	Score     *int     `json:"score" example:"420"`
	Duration  *float64 `json:"duration" example:"73.5"`
	Timestamp string   `json:"timestamp" example:"2026-08-30T12:00:00Z"`
}

type SubmitScoreResponse struct {
	Status string `json:"status" example:"ok"`
	ID     int64  `json:"id" example:"1"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"player is required"`
}

// SubmitScore godoc
// @Summary      Submit a score
// @Description  Stores one finished game result. The timestamp is optional
// @Description  and defaults to the current UTC time.
// @Tags         Scores
// @Accept       json
// @Produce      json
// @Param        request body handler.SubmitScoreRequest true "score payload"
// @Success      200 {object} handler.SubmitScoreResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/submit_score [post]
func (h *Handler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest

	// bypass ShouldBindJSON so a malformed body and a missing field get
	// the same 400 treatment
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// player is free-form, an empty string is allowed; only a missing
	// field is rejected
	if req.Player == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player is required"})
		return
	}
	if req.Score == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score is required"})
		return
	}
	if req.Duration == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration is required"})
		return
	}

	score := models.Score{
		Player:   *req.Player,
		Score:    *req.Score,
		Duration: *req.Duration,
	}
	if req.Timestamp != "" {
		ts, err := parseSubmitTimestamp(req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp must be an ISO 8601 date-time"})
			return
		}
		score.Timestamp = ts
	}

	submissionID := uuid.New().String()
	id, err := h.store.Insert(&score)
	if err != nil {
		h.logger.Error("failed to submit score",
			zap.Error(err),
			zap.String("submission_id", submissionID),
			zap.String("player", score.Player))
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Failed to save score"})
		return
	}

	h.logger.Info("score saved",
		zap.String("submission_id", submissionID),
		zap.Int64("id", id),
		zap.String("player", score.Player),
		zap.Int("score", score.Score))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

// parseSubmitTimestamp accepts RFC 3339 and the zone-less ISO 8601 form
// clients commonly send; a zone-less value is taken as UTC, matching how
// the store groups days.
func parseSubmitTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// GetScoreboard godoc
// @Summary      Scoreboard
// @Description  Returns the top scores, highest first.
// @Tags         Scores
// @Produce      json
// @Param        limit query int false "max entries (default 10)"
// @Success      200 {array} models.Score
// @Router       /api/scoreboard [get]
func (h *Handler) GetScoreboard(c *gin.Context) {
	limit := defaultScoreboardLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	scores, err := h.store.TopScores(limit)
	if err != nil {
		h.logger.Error("failed to get scoreboard", zap.Error(err), zap.Int("limit", limit))
		c.JSON(http.StatusOK, []models.Score{})
		return
	}
	if scores == nil {
		scores = []models.Score{}
	}
	c.JSON(http.StatusOK, scores)
}

// GetStats godoc
// @Summary      Daily player averages
// @Description  Returns, per player, the mean score for each calendar day.
// @Tags         Scores
// @Produce      json
// @Success      200 {object} map[string][]models.DailyAverage
// @Router       /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	averages, err := h.store.DailyAverages()
	if err != nil {
		h.logger.Error("failed to get stats", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, averages)
}
