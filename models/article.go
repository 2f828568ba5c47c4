package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusUnsaved   ArticleStatus = "unsaved"
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Valid reports whether s is one of the three lifecycle stages.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusUnsaved, StatusDraft, StatusPublished:
		return true
	}
	return false
}

type Article struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	UserID    uint          `json:"user_id" gorm:"not null"`
	User      User          `json:"user" gorm:"foreignKey:UserID"`
	Title     string        `json:"title"`
	Content   string        `json:"content" gorm:"type:text"`
	Status    ArticleStatus `json:"status" gorm:"not null;default:'unsaved'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate collects the field rules for the article's current status.
// Published articles need both a title and a body; unsaved and draft articles
// may leave both empty. Every failure is reported, not just the first.
func (a *Article) Validate() ValidationErrors {
	var errs ValidationErrors

	if a.Status == StatusPublished {
		if a.Title == "" {
			errs = append(errs, FieldError{Field: "title", Message: "title required"})
		}
		if a.Content == "" {
			errs = append(errs, FieldError{Field: "content", Message: "content required"})
		}
	}

	return errs
}
