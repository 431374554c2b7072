package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/qanoon-assist/qanoon-api/api/mocks"
	"github.com/qanoon-assist/qanoon-api/schema"
)

func TestSearchArticles(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQanoonCore(ctl)
	s := Server{store: q}

	q.EXPECT().SearchArticles("murder", gomock.Nil()).Return([]schema.LegalArticle{
		{
			ID:            uuid.New(),
			Title:         "Qatl-i-amd",
			ArticleNumber: "Section 302 PPC",
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/articles/search", s.searchArticles)

	req := httptest.NewRequest("GET", "/articles/search?q=murder", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Count   int                   `json:"count"`
		Results []schema.LegalArticle `json:"results"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, jResp.Count, "wrong result count")
	assert.Equal(t, "Section 302 PPC", jResp.Results[0].ArticleNumber, "wrong article")
}

func TestListArticlesCategoryFilter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQanoonCore(ctl)
	s := Server{store: q}

	categoryID := uuid.New()
	q.EXPECT().SearchArticles("", &categoryID).Return([]schema.LegalArticle{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/articles", s.listArticles)

	req := httptest.NewRequest("GET", "/articles?category="+categoryID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestListArticlesBadCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQanoonCore(ctl)
	s := Server{store: q}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/articles", s.listArticles)

	req := httptest.NewRequest("GET", "/articles?category=not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
