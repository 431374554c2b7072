package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// listCategories is a public read of all legal categories.
func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.store.ListCategories()
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, categories)
}

// listArticles searches the knowledge base with ?search= and ?category=.
func (s *Server) listArticles(c *gin.Context) {
	s.respondWithArticles(c, c.Query("search"), c.Query("category"), false)
}

// searchArticles is the explicit search endpoint with ?q= and ?category=.
// It wraps results with a count.
func (s *Server) searchArticles(c *gin.Context) {
	s.respondWithArticles(c, c.Query("q"), c.Query("category"), true)
}

func (s *Server) respondWithArticles(c *gin.Context, term, category string, wrapped bool) {
	var categoryID *uuid.UUID
	if category != "" {
		id, err := uuid.Parse(category)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		categoryID = &id
	}

	articles, err := s.store.SearchArticles(term, categoryID)
	if shouldInterrupt(err, c) {
		return
	}

	if wrapped {
		c.JSON(http.StatusOK, gin.H{
			"count":   len(articles),
			"results": articles,
		})
		return
	}
	c.JSON(http.StatusOK, articles)
}
