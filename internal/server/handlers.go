package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/covlens/covlens/internal/dataset"
	"github.com/covlens/covlens/internal/feed"
	"github.com/covlens/covlens/internal/model"
	"github.com/covlens/covlens/internal/worker"
)

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type articleListResponse struct {
	Total    int             `json:"total"`
	Offset   int             `json:"offset"`
	Limit    int             `json:"limit"`
	Articles []model.Article `json:"articles"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"articles": s.store.Len(),
		"source":   s.store.Source(),
	})
}

// handleClassify scores raw text. Empty text is not an error: the
// classifier itself answers Unknown with zero confidence.
func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.classifier.Classify(req.Text))
}

func (s *Server) handleClassifyURL(c *gin.Context) {
	var req classifyURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if !worker.IsURL(req.URL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url must start with http:// or https://"})
		return
	}
	if s.fetcher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "url classification is disabled"})
		return
	}

	page, err := s.fetcher.PageText(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    page.URL,
		"title":  page.Title,
		"result": s.classifier.Classify(page.Text),
	})
}

func (s *Server) handleListArticles(c *gin.Context) {
	offset := intQuery(c, "offset", 0)
	limit := intQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	articles := s.store.All()
	if raw := c.Query("label"); raw != "" {
		label, ok := model.ParseLabel(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown label: " + raw})
			return
		}
		articles = s.store.ByLabel(label)
	}

	c.JSON(http.StatusOK, articleListResponse{
		Total:    len(articles),
		Offset:   offset,
		Limit:    limit,
		Articles: page(articles, offset, limit),
	})
}

func (s *Server) handleGetArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article id must be an integer"})
		return
	}

	article, ok := s.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": article,
		"result":  s.classifier.Classify(article.Content),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats)
}

func (s *Server) handleFeed(c *gin.Context) {
	limit := intQuery(c, "limit", 50)

	if s.simulator == nil {
		c.JSON(http.StatusOK, gin.H{"events": []feed.Event{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": s.simulator.Recent(limit)})
}

func (s *Server) handleDatasetCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="dataset.csv"`)
	if err := dataset.WriteCSV(c.Writer, s.store); err != nil {
		_ = c.Error(err)
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// page windows an already-filtered slice the same way Store.Page does
func page(articles []model.Article, offset, limit int) []model.Article {
	if offset < 0 || offset >= len(articles) || limit <= 0 {
		return []model.Article{}
	}
	end := offset + limit
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}
