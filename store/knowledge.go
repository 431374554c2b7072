package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/qanoon-assist/qanoon-api/schema"
)

// ListCategories returns every legal category ordered by name.
func (s *QanoonStore) ListCategories() ([]schema.LegalCategory, error) {
	categories := []schema.LegalCategory{}
	if err := s.ormDB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchArticles returns articles matching the term as a case-insensitive
// substring of the title, article number, keywords, or content, optionally
// restricted to one category, ordered by article number.
func (s *QanoonStore) SearchArticles(term string, categoryID *uuid.UUID) ([]schema.LegalArticle, error) {
	articles := []schema.LegalArticle{}
	query := s.ormDB.Preload("Category")

	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(article_number) LIKE ? OR LOWER(keywords) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Order("article_number ASC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
