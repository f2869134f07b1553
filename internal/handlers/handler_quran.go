package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/SscSPs/alsabqon_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quranHandler handles HTTP requests against the scripture corpus.
type quranHandler struct {
	scriptureService portssvc.ScriptureSvc
}

func newQuranHandler(ss portssvc.ScriptureSvc) *quranHandler {
	return &quranHandler{scriptureService: ss}
}

// registerQuranRoutes registers the read-only scripture routes.
func registerQuranRoutes(rg *gin.RouterGroup, scriptureService portssvc.ScriptureSvc) {
	h := newQuranHandler(scriptureService)

	quran := rg.Group("/quran")
	{
		quran.GET("/surahs", h.listSurahs)
		quran.GET("/search", h.search)
	}
}

// listSurahs godoc
// @Summary List surahs
// @Description Returns every surah of the loaded corpus in ascending order.
// @Tags quran
// @Produce  json
// @Success 200 {array} dto.SurahResponse
// @Router /quran/surahs [get]
func (h *quranHandler) listSurahs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	surahs := h.scriptureService.ListSurahs(c.Request.Context())

	logger.Debug("Surahs listed", slog.Int("count", len(surahs)))
	c.JSON(http.StatusOK, dto.ToSurahResponses(surahs))
}

// search godoc
// @Summary Search verses
// @Description Finds verses whose Arabic text, interpretation or translation contains every query token.
// @Description At most 100 results are returned, in corpus order.
// @Tags quran
// @Produce  json
// @Param   query query string true "Whitespace separated search tokens"
// @Param   bilingual query string false "Extra field to return" Enums(tafseer, en, es)
// @Param   include query string false "Alias of bilingual" Enums(tafseer, en, es)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Router /quran/search [get]
func (h *quranHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, present := c.GetQuery("query"); !present {
		logger.Warn("Search called without query parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind search query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	hits := h.scriptureService.Search(c.Request.Context(), q.Query, q.IncludeField())

	logger.Info("Search completed", slog.String("query", q.Query), slog.Int("results", len(hits)))
	c.JSON(http.StatusOK, dto.ToSearchResponse(hits))
}
