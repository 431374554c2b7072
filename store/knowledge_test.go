package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"

	"github.com/qanoon-assist/qanoon-api/schema"
)

type KnowledgeTestSuite struct {
	suite.Suite

	db    *gorm.DB
	store *QanoonStore

	criminal schema.LegalCategory
	family   schema.LegalCategory
}

func (s *KnowledgeTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.store = NewQanoonStore(s.db)

	s.criminal = schema.LegalCategory{ID: uuid.New(), Name: "Criminal Law"}
	s.family = schema.LegalCategory{ID: uuid.New(), Name: "Family Law"}
	s.Require().NoError(s.db.Create(&s.criminal).Error)
	s.Require().NoError(s.db.Create(&s.family).Error)

	articles := []schema.LegalArticle{
		{
			ID:            uuid.New(),
			Title:         "Qatl-i-amd",
			ArticleNumber: "Section 302 PPC",
			CategoryID:    s.criminal.ID,
			Content:       "Punishment of qatl-i-amd.",
			Keywords:      "murder,qatl,homicide",
		},
		{
			ID:            uuid.New(),
			Title:         "Dissolution of Muslim marriages",
			ArticleNumber: "Section 2 DMMA",
			CategoryID:    s.family.ID,
			Content:       "Grounds for a decree for dissolution of marriage.",
			Keywords:      "divorce,khula,marriage",
		},
	}
	for i := range articles {
		s.Require().NoError(s.db.Create(&articles[i]).Error)
	}
}

func (s *KnowledgeTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *KnowledgeTestSuite) TestListCategoriesOrdered() {
	categories, err := s.store.ListCategories()
	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("Criminal Law", categories[0].Name)
	s.Equal("Family Law", categories[1].Name)
}

func (s *KnowledgeTestSuite) TestSearchByKeyword() {
	articles, err := s.store.SearchArticles("murder", nil)
	s.Require().NoError(err)
	s.Require().Len(articles, 1)
	s.Equal("Section 302 PPC", articles[0].ArticleNumber)

	// matching is case-insensitive
	articles, err = s.store.SearchArticles("MURDER", nil)
	s.Require().NoError(err)
	s.Len(articles, 1)

	// the article number itself is searchable
	articles, err = s.store.SearchArticles("302", nil)
	s.Require().NoError(err)
	s.Len(articles, 1)
}

func (s *KnowledgeTestSuite) TestSearchByCategory() {
	articles, err := s.store.SearchArticles("", &s.family.ID)
	s.Require().NoError(err)
	s.Require().Len(articles, 1)
	s.Equal("Section 2 DMMA", articles[0].ArticleNumber)

	// "marriage" appears under family only; restricting to criminal
	// leaves nothing
	articles, err = s.store.SearchArticles("marriage", &s.criminal.ID)
	s.Require().NoError(err)
	s.Len(articles, 0)
}

func (s *KnowledgeTestSuite) TestSearchNoMatch() {
	articles, err := s.store.SearchArticles("maritime salvage", nil)
	s.Require().NoError(err)
	s.NotNil(articles)
	s.Len(articles, 0)
}

func TestKnowledgeTestSuite(t *testing.T) {
	suite.Run(t, new(KnowledgeTestSuite))
}
