package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mvolkov/seo-tracker/app/analysis"
	"github.com/mvolkov/seo-tracker/app/database"
	"github.com/mvolkov/seo-tracker/app/importer"
)

func NewHandler(keywordRepo, pageRepo *database.MetricRepository,
	noteRepo *database.NoteRepository, linkRepo *database.LinkRepository,
	imp ImporterInterface) *Handler {
	return &Handler{
		keywordRepo: keywordRepo,
		pageRepo:    pageRepo,
		noteRepo:    noteRepo,
		linkRepo:    linkRepo,
		importer:    imp,
	}
}

// metricRepo resolves the :table path parameter to a repository.
func (h *Handler) metricRepo(c *gin.Context) *database.MetricRepository {
	switch c.Param("table") {
	case string(importer.TableKeywords):
		return h.keywordRepo
	case string(importer.TablePages):
		return h.pageRepo
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown table, expected keywords or pages"})
		return nil
	}
}

// PostImport accepts a multipart export upload and runs the import
// pipeline. An optional "period" form value overrides the label
// inferred from the filename.
func (h *Handler) PostImport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("Failed to open upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	period := c.PostForm("period")
	fallback := time.Now().Format("Jan")

	report, err := h.importer.Run(fileHeader.Filename, data, period, fallback)
	if err != nil {
		if errors.Is(err, importer.ErrUnrecognizedSchema) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Import failed", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetPeriods(c *gin.Context) {
	repo := h.metricRepo(c)
	if repo == nil {
		return
	}

	periods, err := repo.DistinctPeriods()
	if err != nil {
		slog.Error("Database error", "operation", "distinct_periods", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list periods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

func (h *Handler) GetMetrics(c *gin.Context) {
	repo := h.metricRepo(c)
	if repo == nil {
		return
	}

	period := c.Query("period")
	if period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing period parameter"})
		return
	}

	records, err := repo.RowsForPeriod(period)
	if err != nil {
		slog.Error("Database error", "operation", "rows_for_period", "period", period, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load metrics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period, "rows": records})
}

func (h *Handler) GetHistory(c *gin.Context) {
	repo := h.metricRepo(c)
	if repo == nil {
		return
	}

	entity := c.Query("entity")
	if entity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing entity parameter"})
		return
	}

	records, err := repo.RowsForEntity(entity)
	if err != nil {
		slog.Error("Database error", "operation", "rows_for_entity", "entity", entity, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entity": entity, "rows": records})
}

// GetComparison compares one entity between two periods. Periods with
// no rows come back as null, never as zero.
func (h *Handler) GetComparison(c *gin.Context) {
	repo := h.metricRepo(c)
	if repo == nil {
		return
	}

	entity := c.Query("entity")
	from := c.Query("from")
	to := c.Query("to")
	if entity == "" || from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing entity, from or to parameter"})
		return
	}

	rowsA, err := repo.RowsForEntityPeriod(entity, from)
	if err != nil {
		slog.Error("Database error", "operation", "rows_for_entity_period", "entity", entity, "period", from, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comparison"})
		return
	}

	rowsB, err := repo.RowsForEntityPeriod(entity, to)
	if err != nil {
		slog.Error("Database error", "operation", "rows_for_entity_period", "entity", entity, "period", to, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comparison"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entity":     entity,
		"from":       from,
		"to":         to,
		"comparison": analysis.Compare(rowsA, rowsB),
	})
}

func (h *Handler) PostNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.EntityType != "keyword" && req.EntityType != "page" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity_type must be keyword or page"})
		return
	}

	createdAt := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		createdAt = parsed
	}

	if err := h.noteRepo.Add(req.EntityType, req.EntityName, req.Body, createdAt); err != nil {
		slog.Error("Database error", "operation", "add_note", "entity", req.EntityName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "saved"})
}

func (h *Handler) ListNotes(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityName := c.Query("entity_name")
	if entityType == "" || entityName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing entity_type or entity_name parameter"})
		return
	}

	notes, err := h.noteRepo.ListForEntity(entityType, entityName)
	if err != nil {
		slog.Error("Database error", "operation", "list_notes", "entity", entityName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (h *Handler) PostLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.linkRepo.Add(req.Keyword, req.PageURL, time.Now().UTC()); err != nil {
		slog.Error("Database error", "operation", "add_link", "keyword", req.Keyword, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save link"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "saved"})
}

func (h *Handler) ListLinks(c *gin.Context) {
	keyword := c.Query("keyword")
	page := c.Query("page")

	var links []database.EntityLink
	var err error
	switch {
	case keyword != "":
		links, err = h.linkRepo.ListForKeyword(keyword)
	case page != "":
		links, err = h.linkRepo.ListForPage(page)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing keyword or page parameter"})
		return
	}

	if err != nil {
		slog.Error("Database error", "operation", "list_links", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list links"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if count, err := h.keywordRepo.RowCount(); err == nil {
		health["keyword_rows"] = count
	}
	if count, err := h.pageRepo.RowCount(); err == nil {
		health["page_rows"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{}

	if periods, err := h.keywordRepo.DistinctPeriods(); err == nil {
		stats["keyword_periods"] = periods
	}
	if periods, err := h.pageRepo.DistinctPeriods(); err == nil {
		stats["page_periods"] = periods
	}
	if count, err := h.keywordRepo.RowCount(); err == nil {
		stats["keyword_rows"] = count
	}
	if count, err := h.pageRepo.RowCount(); err == nil {
		stats["page_rows"] = count
	}
	if count, err := h.noteRepo.NoteCount(); err == nil {
		stats["notes"] = count
	}

	c.JSON(http.StatusOK, stats)
}
