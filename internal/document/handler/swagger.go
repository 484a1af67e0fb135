package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the
// document service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>legaldocgen — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the document lifecycle endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "legaldocgen", "version": "v0.1.0" },
  "paths": {
    "/api/health": {
      "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } }
    },
    "/generate_questions": {
      "post": {
        "summary": "Generate clarifying questions for a document type",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"doc_type":{"type":"string"},"language":{"type":"string"}},"required":["doc_type"]}}}},
        "responses": { "200": { "description": "list of questions" }, "400": { "description": "doc_type missing" }, "500": { "description": "generation failed" } }
      }
    },
    "/generate_document": {
      "post": {
        "summary": "Synthesize a legal document from answers",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"doc_type":{"type":"string"},"title":{"type":"string"},"answers":{"type":"object","additionalProperties":{"type":"string"}},"language":{"type":"string"}},"required":["doc_type"]}}}},
        "responses": { "200": { "description": "document record" }, "400": { "description": "doc_type missing" }, "500": { "description": "generation failed" } }
      }
    },
    "/documents": {
      "get": { "summary": "List all documents", "responses": { "200": { "description": "document records" } } }
    },
    "/documents/{id}": {
      "get": { "summary": "Fetch a document", "responses": { "200": { "description": "document record" }, "404": { "description": "unknown id" } } },
      "put": {
        "summary": "Edit a document; optionally regenerate its text from new answers",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"document_text":{"type":"string"},"title":{"type":"string"},"answers":{"type":"object","additionalProperties":{"type":"string"}},"regenerate":{"type":"boolean"}}}}}},
        "responses": { "200": { "description": "updated record" }, "404": { "description": "unknown id" }, "500": { "description": "regeneration failed" } }
      },
      "delete": { "summary": "Delete a document", "responses": { "200": { "description": "deleted" }, "404": { "description": "unknown id" } } }
    },
    "/translate": {
      "post": {
        "summary": "Translate free text (source auto-detected)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"text":{"type":"string"},"target":{"type":"string"}},"required":["text"]}}}},
        "responses": { "200": { "description": "translated text" }, "400": { "description": "text missing" }, "500": { "description": "provider error" } }
      }
    }
  }
}`
