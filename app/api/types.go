package api

import (
	"github.com/mvolkov/seo-tracker/app/database"
	"github.com/mvolkov/seo-tracker/app/importer"
)

// ImporterInterface is the import pipeline surface the handlers need.
type ImporterInterface interface {
	Run(filename string, data []byte, periodOverride, fallback string) (*importer.ImportReport, error)
}

var _ ImporterInterface = (*importer.Importer)(nil)

type Handler struct {
	keywordRepo *database.MetricRepository
	pageRepo    *database.MetricRepository
	noteRepo    *database.NoteRepository
	linkRepo    *database.LinkRepository
	importer    ImporterInterface
}

type noteRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityName string `json:"entity_name" binding:"required"`
	Body       string `json:"body" binding:"required"`
	Date       string `json:"date"`
}

type linkRequest struct {
	Keyword string `json:"keyword" binding:"required"`
	PageURL string `json:"page_url" binding:"required"`
}
