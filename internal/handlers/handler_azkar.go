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

// azkarHandler handles HTTP requests for the remembrance ledger.
type azkarHandler struct {
	practiceService portssvc.PracticeSvcFacade
	catalogService  portssvc.CatalogSvc
}

func newAzkarHandler(ps portssvc.PracticeSvcFacade, cs portssvc.CatalogSvc) *azkarHandler {
	return &azkarHandler{
		practiceService: ps,
		catalogService:  cs,
	}
}

// registerAzkarRoutes registers the remembrance catalog and ledger routes.
func registerAzkarRoutes(rg *gin.RouterGroup, practiceService portssvc.PracticeSvcFacade, catalogService portssvc.CatalogSvc) {
	h := newAzkarHandler(practiceService, catalogService)

	azkar := rg.Group("/azkar")
	{
		azkar.GET("", h.listAzkar)
		azkar.POST("/entry", h.createEntry)
		azkar.PUT("/entry/:entryID", h.updateEntry)
		azkar.GET("/daily/:date", h.getDailySummary)
		azkar.GET("/range", h.getRangeSummary)
		azkar.GET("/:zikrID/history", h.getHistory)
		azkar.GET("/:zikrID/stats", h.getStats)
	}
}

// listAzkar godoc
// @Summary List remembrance phrases
// @Description Returns the static catalog of remembrance phrases.
// @Tags azkar
// @Produce  json
// @Success 200 {object} dto.AzkarListResponse
// @Failure 500 {object} map[string]string "Failed to list azkar"
// @Security BearerAuth
// @Router /azkar [get]
func (h *azkarHandler) listAzkar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.catalogService.ListCategories(c.Request.Context(), domain.KindRemembrance)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list azkar")
		return
	}

	c.JSON(http.StatusOK, dto.ToAzkarListResponse(categories))
}

// createEntry godoc
// @Summary Log a remembrance session
// @Description Records how many times a phrase was recited. The optional comment seeds the edit notes.
// @Tags azkar
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateZikrEntryRequest true "Session details"
// @Success 201 {object} dto.ZikrEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /azkar/entry [post]
func (h *azkarHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateZikrEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, logger, "CreateZikrEntry", err)
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int("zikr_id", *req.ZikrID))
	entry, err := h.practiceService.CreateEntry(c.Request.Context(), domain.KindRemembrance, userID, req.ToCreateEntryRequest())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entry")
		return
	}

	logger.Info("Zikr entry created", slog.String("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToZikrEntryResponse(entry))
}

// updateEntry godoc
// @Summary Edit a remembrance entry
// @Description Overwrites the count and appends a timestamped edit note when one is given.
// @Tags azkar
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateZikrEntryRequest true "New values"
// @Success 200 {object} dto.UpdateZikrEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /azkar/entry/{entryID} [put]
func (h *azkarHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	logger = logger.With(slog.String("entry_id", entryID))

	var req dto.UpdateZikrEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, logger, "UpdateZikrEntry", err)
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.practiceService.UpdateEntry(c.Request.Context(), domain.KindRemembrance, userID, entryID, req.ToUpdateEntryRequest())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entry")
		return
	}

	logger.Info("Zikr entry updated")
	c.JSON(http.StatusOK, dto.UpdateZikrEntryResponse{Success: true, Entry: dto.ToZikrEntryResponse(entry)})
}

// getHistory godoc
// @Summary Remembrance history
// @Description Lists the entries of one phrase, newest first.
// @Tags azkar
// @Produce  json
// @Param   zikrID path int true "Zikr ID"
// @Param   limit query int false "Page size (default 30, max 1000)"
// @Param   days query int false "Deprecated alias of limit"
// @Param   next_token query string false "Token of the next page"
// @Success 200 {object} dto.ZikrHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get history"
// @Security BearerAuth
// @Router /azkar/{zikrID}/history [get]
func (h *azkarHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zikrID, ok := intParamOrAbort(c, logger, "zikrID")
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

	page, err := h.practiceService.GetHistory(c.Request.Context(), domain.KindRemembrance, userID, zikrID, q.ToHistoryParams())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get history")
		return
	}

	c.JSON(http.StatusOK, dto.ZikrHistoryResponse{
		Entries:   dto.ToZikrEntryResponses(page.Entries),
		NextToken: page.NextToken,
	})
}

// getStats godoc
// @Summary Remembrance totals
// @Description Returns total repetitions, sessions and the latest session of one phrase.
// @Tags azkar
// @Produce  json
// @Param   zikrID path int true "Zikr ID"
// @Success 200 {object} dto.ZikrStatsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get stats"
// @Security BearerAuth
// @Router /azkar/{zikrID}/stats [get]
func (h *azkarHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zikrID, ok := intParamOrAbort(c, logger, "zikrID")
	if !ok {
		return
	}

	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	stats, err := h.practiceService.GetStats(c.Request.Context(), domain.KindRemembrance, userID, zikrID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToZikrStatsResponse(stats))
}

// getDailySummary godoc
// @Summary Daily remembrance summary
// @Description Groups one day's entries by phrase with counts, sessions and percentages.
// @Tags azkar
// @Produce  json
// @Param   date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyAzkarResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to get daily summary"
// @Security BearerAuth
// @Router /azkar/daily/{date} [get]
func (h *azkarHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	summary, err := h.practiceService.GetDailySummary(c.Request.Context(), domain.KindRemembrance, userID, c.Param("date"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get daily summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyAzkarResponse(summary))
}

// getRangeSummary godoc
// @Summary Remembrance summary over a date range
// @Description Groups the entries of an inclusive date range by phrase.
// @Tags azkar
// @Produce  json
// @Param   start_date query string true "First day (YYYY-MM-DD)"
// @Param   end_date query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.RangeAzkarResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 500 {object} map[string]string "Failed to get range summary"
// @Security BearerAuth
// @Router /azkar/range [get]
func (h *azkarHandler) getRangeSummary(c *gin.Context) {
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

	summary, err := h.practiceService.GetRangeSummary(c.Request.Context(), domain.KindRemembrance, userID, q.StartDate, q.EndDate)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get range summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToRangeAzkarResponse(summary))
}
