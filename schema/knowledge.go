package schema

import (
	"time"

	"github.com/google/uuid"
)

// LegalCategory groups articles, e.g. Criminal Law or Family Law.
type LegalCategory struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name        string    `json:"name" gorm:"unique_index;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (LegalCategory) TableName() string {
	return "legal_categories"
}

// LegalArticle is a single law entry, e.g. "Section 302 PPC". Keywords is a
// comma-separated list used by the substring search.
type LegalArticle struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Title         string    `json:"title" gorm:"not null"`
	ArticleNumber string    `json:"article_number" gorm:"unique_index;not null"`
	CategoryID    uuid.UUID `json:"category" gorm:"type:uuid;not null;index"`
	Content       string    `json:"content"`
	Keywords      string    `json:"keywords"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category *LegalCategory `json:"category_details,omitempty" gorm:"foreignkey:CategoryID"`
}

func (LegalArticle) TableName() string {
	return "legal_articles"
}
