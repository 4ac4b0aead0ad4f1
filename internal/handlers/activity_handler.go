package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/journal"
	"stridelog/internal/models"
)

// ActivityHandler handles journal record and history requests.
type ActivityHandler struct {
	journal *journal.Store
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(store *journal.Store) *ActivityHandler {
	return &ActivityHandler{journal: store}
}

// ActivityRequest is a candidate entry for today. Pointer fields distinguish
// a missing field from a legitimate zero value; negative and non-numeric
// values are rejected here so the store never sees an invalid candidate.
type ActivityRequest struct {
	Steps      *int     `json:"steps" binding:"required,gte=0"`
	WalkingKm  *float64 `json:"walking" binding:"required,gte=0"`
	MoneySpent *float64 `json:"moneySpent" binding:"required,gte=0"`
	Learned    *string  `json:"learned" binding:"required"`
	Goals      *string  `json:"goals" binding:"required"`
}

type historyQuery struct {
	Range string `form:"range" binding:"omitempty,history_range"`
}

type dayParam struct {
	Date string `uri:"date" binding:"required,day_key"`
}

// HistoryResponse is the filtered history payload.
type HistoryResponse struct {
	Range   journal.Range           `json:"range"`
	History []models.ActivityRecord `json:"history"`
}

// DashboardResponse is the initial dashboard payload.
type DashboardResponse struct {
	Today   *models.ActivityRecord  `json:"today"`
	History []models.ActivityRecord `json:"history"`
}

// UpsertToday records or replaces today's activity entry
// @Summary     Save today's activity
// @Description Store the activity entry for the current day, replacing any entry already recorded today.
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ActivityRequest true "Activity entry"
// @Success     200 {object} models.ActivityRecord "Stored record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /activities/today [put]
func (h *ActivityHandler) UpsertToday(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.journal.Upsert(journal.Candidate{
		Steps:      *req.Steps,
		WalkingKm:  *req.WalkingKm,
		MoneySpent: *req.MoneySpent,
		Learned:    *req.Learned,
		Goals:      *req.Goals,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetHistory returns the filtered, time-ordered history
// @Summary     Get activity history
// @Description List recorded entries, most recent first, optionally limited to the last week or month.
// @Tags        activities
// @Produce     json
// @Security    BearerAuth
// @Param       range query string false "History window" Enums(all, week, month)
// @Success     200 {object} HistoryResponse "Ordered history"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /activities [get]
func (h *ActivityHandler) GetHistory(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rng, err := journal.ParseRange(q.Range)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Range:   rng,
		History: h.journal.History(rng),
	})
}

// GetByDay returns the record for a specific day
// @Summary     Get one day's activity
// @Description Fetch the recorded entry for a calendar day.
// @Tags        activities
// @Produce     json
// @Security    BearerAuth
// @Param       date path string true "Day key (YYYY-MM-DD)"
// @Success     200 {object} models.ActivityRecord "Recorded entry"
// @Failure     400 {object} ErrorResponse "Invalid day key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No entry for this day"
// @Router      /activities/{date} [get]
func (h *ActivityHandler) GetByDay(c *gin.Context) {
	var p dayParam
	if err := c.ShouldBindUri(&p); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid day key"))
		return
	}

	record, err := h.journal.Get(p.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetDashboard returns today's record and the full history
// @Summary     Get dashboard data
// @Description Fetch today's entry (null when nothing is recorded yet) together with the full ordered history.
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard payload"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *ActivityHandler) GetDashboard(c *gin.Context) {
	resp := DashboardResponse{
		History: h.journal.History(journal.RangeAll),
	}

	today, err := h.journal.Today()
	if err == nil {
		resp.Today = &today
	} else if !errors.Is(err, apperrors.ErrRecordNotFound) {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
