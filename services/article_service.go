package services

import (
	"blog-api/models"
	"blog-api/repositories"
)

type ArticleService interface {
	ListOwned(userID uint) ([]models.Article, error)
	GetOwned(userID, articleID uint) (*models.Article, error)
	StartDraft(userID uint) (*models.Article, error)
	Update(userID, articleID uint, req models.UpdateArticleRequest) (*models.Article, error)
	ListPublished(params models.PublicFeedParams) ([]models.Article, int64, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) ListOwned(userID uint) ([]models.Article, error) {
	return s.articleRepo.ListOwned(userID)
}

func (s *articleService) GetOwned(userID, articleID uint) (*models.Article, error) {
	return s.articleRepo.FindOwned(userID, articleID)
}

// StartDraft hands out the caller's single unsaved article, creating it on
// first use. Calling it again before the slot is saved returns the same row.
func (s *articleService) StartDraft(userID uint) (*models.Article, error) {
	article, _, err := s.articleRepo.GetOrCreateUnsaved(userID)
	return article, err
}

// Update resolves the article through the owner-scoped query, applies the
// payload and persists it when the status rules hold. Field failures are
// collected and returned together as models.ValidationErrors.
func (s *articleService) Update(userID, articleID uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.FindOwned(userID, articleID)
	if err != nil {
		return nil, err
	}

	if !req.Status.Valid() {
		return nil, models.ValidationErrors{
			{Field: "status", Message: "status must be unsaved, draft or published"},
		}
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Status = req.Status

	if errs := article.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) ListPublished(params models.PublicFeedParams) ([]models.Article, int64, error) {
	return s.articleRepo.ListPublished(params)
}
