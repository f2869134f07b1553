package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/SscSPs/alsabqon_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// charityHandler handles HTTP requests for the charity ledger.
type charityHandler struct {
	practiceService portssvc.PracticeSvcFacade
	catalogService  portssvc.CatalogSvc
}

func newCharityHandler(ps portssvc.PracticeSvcFacade, cs portssvc.CatalogSvc) *charityHandler {
	return &charityHandler{
		practiceService: ps,
		catalogService:  cs,
	}
}

// registerCharityRoutes registers the charity catalog and ledger routes.
func registerCharityRoutes(rg *gin.RouterGroup, practiceService portssvc.PracticeSvcFacade, catalogService portssvc.CatalogSvc) {
	h := newCharityHandler(practiceService, catalogService)

	charities := rg.Group("/charities")
	{
		charities.GET("", h.listCharities)
		charities.POST("/entry", h.createEntry)
		charities.PUT("/entry/:entryID", h.updateEntry)
		charities.GET("/daily/:date", h.getDailySummary)
		charities.GET("/range", h.getRangeSummary)
		charities.GET("/:charityID/history", h.getHistory)
		charities.GET("/:charityID/stats", h.getStats)
	}
}

// listCharities godoc
// @Summary List charity types
// @Description Returns the static catalog of charity types.
// @Tags charities
// @Produce  json
// @Success 200 {object} dto.CharityListResponse
// @Failure 500 {object} map[string]string "Failed to list charities"
// @Security BearerAuth
// @Router /charities [get]
func (h *charityHandler) listCharities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.catalogService.ListCategories(c.Request.Context(), domain.KindCharity)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list charities")
		return
	}

	c.JSON(http.StatusOK, dto.ToCharityListResponse(categories))
}

// createEntry godoc
// @Summary Log a charitable act
// @Description Records a charitable act. The optional comments are stored and seed the edit notes.
// @Tags charities
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCharityEntryRequest true "Charity details"
// @Success 201 {object} dto.CharityEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /charities/entry [post]
func (h *charityHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCharityEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, logger, "CreateCharityEntry", err)
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int("charity_id", *req.CharityID))
	entry, err := h.practiceService.CreateEntry(c.Request.Context(), domain.KindCharity, userID, req.ToCreateEntryRequest())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entry")
		return
	}

	logger.Info("Charity entry created", slog.String("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToCharityEntryResponse(entry))
}

// updateEntry godoc
// @Summary Edit a charity entry
// @Description Overwrites the count, replaces comments when supplied and appends a timestamped edit note when one is given.
// @Tags charities
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateCharityEntryRequest true "New values"
// @Success 200 {object} dto.UpdateCharityEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /charities/entry/{entryID} [put]
func (h *charityHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	logger = logger.With(slog.String("entry_id", entryID))

	var req dto.UpdateCharityEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, logger, "UpdateCharityEntry", err)
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.practiceService.UpdateEntry(c.Request.Context(), domain.KindCharity, userID, entryID, req.ToUpdateEntryRequest())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entry")
		return
	}

	logger.Info("Charity entry updated")
	c.JSON(http.StatusOK, dto.UpdateCharityEntryResponse{Success: true, Entry: dto.ToCharityEntryResponse(entry)})
}

// getHistory godoc
// @Summary Charity history
// @Description Lists the entries of one charity type, newest first.
// @Tags charities
// @Produce  json
// @Param   charityID path int true "Charity ID"
// @Param   limit query int false "Page size (default 30, max 1000)"
// @Param   days query int false "Deprecated alias of limit"
// @Param   next_token query string false "Token of the next page"
// @Success 200 {object} dto.CharityHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get history"
// @Security BearerAuth
// @Router /charities/{charityID}/history [get]
func (h *charityHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	charityID, ok := intParamOrAbort(c, logger, "charityID")
	if !ok {
		return
	}

	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindErrorResponse(c, logger, "history query", err)
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	page, err := h.practiceService.GetHistory(c.Request.Context(), domain.KindCharity, userID, charityID, q.ToHistoryParams())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get history")
		return
	}

	c.JSON(http.StatusOK, dto.CharityHistoryResponse{
		Entries:   dto.ToCharityEntryResponses(page.Entries),
		NextToken: page.NextToken,
	})
}

// getStats godoc
// @Summary Charity totals
// @Description Returns the total count, sessions and the latest entry of one charity type.
// @Tags charities
// @Produce  json
// @Param   charityID path int true "Charity ID"
// @Success 200 {object} dto.CharityStatsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get stats"
// @Security BearerAuth
// @Router /charities/{charityID}/stats [get]
func (h *charityHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	charityID, ok := intParamOrAbort(c, logger, "charityID")
	if !ok {
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	stats, err := h.practiceService.GetStats(c.Request.Context(), domain.KindCharity, userID, charityID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToCharityStatsResponse(stats))
}

// getDailySummary godoc
// @Summary Daily charity summary
// @Description Groups one day's entries by charity type with counts, sessions and percentages.
// @Tags charities
// @Produce  json
// @Param   date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyCharityResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to get daily summary"
// @Security BearerAuth
// @Router /charities/daily/{date} [get]
func (h *charityHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	summary, err := h.practiceService.GetDailySummary(c.Request.Context(), domain.KindCharity, userID, c.Param("date"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get daily summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyCharityResponse(summary))
}

// getRangeSummary godoc
// @Summary Charity summary over a date range
// @Description Groups the entries of an inclusive date range by charity type.
// @Tags charities
// @Produce  json
// @Param   start_date query string true "First day (YYYY-MM-DD)"
// @Param   end_date query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.RangeCharityResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 500 {object} map[string]string "Failed to get range summary"
// @Security BearerAuth
// @Router /charities/range [get]
func (h *charityHandler) getRangeSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindErrorResponse(c, logger, "range query", err)
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	summary, err := h.practiceService.GetRangeSummary(c.Request.Context(), domain.KindCharity, userID, q.StartDate, q.EndDate)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get range summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToRangeCharityResponse(summary))
}
