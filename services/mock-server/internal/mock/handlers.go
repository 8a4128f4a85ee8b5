package mock

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stoik/intake/internal/models"
)

// NewRouter wires the full payload/document API surface onto a gin
// engine. Responses follow the backend envelope: {"data": ...} on
// success, {"message": ...} on errors.
func NewRouter(store *Store) *gin.Engine {
	r := gin.Default()
	r.Use(requestMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/payloads", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": store.Payloads()})
		})
		api.POST("/payloads", func(c *gin.Context) {
			handleCreatePayload(store, c)
		})
		api.GET("/payloads/:id", func(c *gin.Context) {
			handleGetPayload(store, c)
		})
		// "all" shares the :id segment; gin cannot register a static
		// route next to the wildcard, so the handler dispatches on it.
		api.GET("/payloads/:id/documents", func(c *gin.Context) {
			handleGetPayloadDocuments(store, c)
		})

		api.GET("/documents/payload/:payloadId", func(c *gin.Context) {
			handleListDocuments(store, c)
		})
		api.POST("/documents", func(c *gin.Context) {
			handleCreateDocument(store, c)
		})
		api.DELETE("/documents/:id", func(c *gin.Context) {
			handleDeleteDocument(store, c)
		})
	}

	// Test/demo helper, mirrors nothing in the real backend.
	r.POST("/admin/seed", func(c *gin.Context) {
		handleSeed(store, c)
	})

	return r
}

func handleCreatePayload(store *Store, c *gin.Context) {
	var p models.NewPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if strings.TrimSpace(p.EmailInfo.Subject) == "" || strings.TrimSpace(p.EmailInfo.From) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "emailInfo.subject and emailInfo.from are required"})
		return
	}
	if len(p.EmailInfo.To) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "at least one emailInfo.to recipient is required"})
		return
	}
	created := store.CreatePayload(p)
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func handleGetPayload(store *Store, c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload id"})
		return
	}
	p, ok := store.Payload(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "payload not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func handleGetPayloadDocuments(store *Store, c *gin.Context) {
	idParam := c.Param("id")
	if idParam == "all" {
		c.JSON(http.StatusOK, gin.H{"data": store.PayloadsWithDocuments()})
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload id"})
		return
	}
	p, ok := store.PayloadWithDocuments(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "payload not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func handleListDocuments(store *Store, c *gin.Context) {
	payloadID, err := strconv.Atoi(c.Param("payloadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload id"})
		return
	}
	docs := store.DocumentsForPayload(payloadID)
	if docs == nil {
		docs = []models.Document{}
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func handleCreateDocument(store *Store, c *gin.Context) {
	var d models.NewDocument
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if strings.TrimSpace(d.DocumentLink) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "documentLink is required"})
		return
	}
	created, ok := store.CreateDocument(d)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "payload not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func handleDeleteDocument(store *Store, c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid document id"})
		return
	}
	if !store.DeleteDocument(id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

func handleSeed(store *Store, c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "count must be a positive integer"})
		return
	}
	added := store.SeedSamples(req.Count)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"added": added}})
}
