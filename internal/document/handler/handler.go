package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document/service"
)

type generateQuestionsRequest struct {
	DocType  string `json:"doc_type"`
	Language string `json:"language"`
}

type generateDocumentRequest struct {
	DocType  string            `json:"doc_type"`
	Title    string            `json:"title"`
	Answers  map[string]string `json:"answers"`
	Language string            `json:"language"`
}

type editDocumentRequest struct {
	DocumentText *string           `json:"document_text"`
	Title        *string           `json:"title"`
	Answers      map[string]string `json:"answers"`
	Regenerate   bool              `json:"regenerate"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// RegisterDocumentRoutes wires the document lifecycle endpoints onto the
// engine, including the 404 envelope for unmatched routes.
func RegisterDocumentRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Legal Document Generator API is running",
		})
	})

	r.POST("/generate_questions", func(c *gin.Context) {
		var req generateQuestionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		questions, err := svc.GenerateQuestions(c.Request.Context(), req.DocType, language(req.Language))
		if err != nil {
			writeError(c, err, "Error generating questions")
			return
		}
		c.JSON(http.StatusOK, gin.H{"questions": questions})
	})

	r.POST("/generate_document", func(c *gin.Context) {
		var req generateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc, err := svc.GenerateDocument(c.Request.Context(), req.DocType, req.Title, req.Answers, language(req.Language))
		if err != nil {
			writeError(c, err, "Error generating document")
			return
		}
		c.JSON(http.StatusOK, gin.H{"document": doc})
	})

	r.GET("/documents", func(c *gin.Context) {
		docs, err := svc.ListDocuments()
		if err != nil {
			writeError(c, err, "Error listing documents")
			return
		}
		c.JSON(http.StatusOK, gin.H{"documents": docs})
	})

	r.GET("/documents/:id", func(c *gin.Context) {
		doc, err := svc.GetDocument(c.Param("id"))
		if err != nil {
			writeError(c, err, "Error fetching document")
			return
		}
		c.JSON(http.StatusOK, gin.H{"document": doc})
	})

	r.PUT("/documents/:id", func(c *gin.Context) {
		var req editDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc, err := svc.EditDocument(c.Request.Context(), c.Param("id"), service.EditPatch{
			DocumentText: req.DocumentText,
			Title:        req.Title,
			Answers:      req.Answers,
			Regenerate:   req.Regenerate,
		})
		if err != nil {
			writeError(c, err, "Error updating document")
			return
		}
		c.JSON(http.StatusOK, gin.H{"document": doc})
	})

	r.DELETE("/documents/:id", func(c *gin.Context) {
		if err := svc.DeleteDocument(c.Param("id")); err != nil {
			writeError(c, err, "Error deleting document")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Document deleted successfully"})
	})

	r.POST("/translate", func(c *gin.Context) {
		var req translateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		translated, err := svc.TranslateText(c.Request.Context(), req.Text, req.Target)
		if err != nil {
			writeError(c, err, "Translation error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"translated_text": translated})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Endpoint not found",
			"message": "The requested endpoint does not exist",
		})
	})
}

// language applies the default request language.
func language(l string) string {
	if l == "" {
		return "English"
	}
	return l
}

// writeError maps service errors onto the HTTP status taxonomy: validation
// failures are 400, unknown ids 404, and upstream failures 500 with the
// error text echoed in the envelope.
func writeError(c *gin.Context, err error, context string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%s: %v", context, err)})
	}
}
