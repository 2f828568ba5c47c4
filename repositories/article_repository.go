package repositories

import (
	"errors"

	"blog-api/models"

	"gorm.io/gorm"
)

// ArticleRepository is parameterized by owner id on every read and write.
// A record that exists but belongs to another user is indistinguishable from
// one that does not exist: both come back as models.ErrorNotFound.
type ArticleRepository interface {
	ListOwned(userID uint) ([]models.Article, error)
	FindOwned(userID, articleID uint) (*models.Article, error)
	GetOrCreateUnsaved(userID uint) (*models.Article, bool, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	ListPublished(params models.PublicFeedParams) ([]models.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) ListOwned(userID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindOwned(userID, articleID uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").
		Where("user_id = ? AND id = ?", userID, articleID).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{}
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetOrCreateUnsaved returns the user's single unsaved article, creating it
// when none exists. The second return value reports whether a row was
// created. Concurrent callers race on the insert; the loser hits the partial
// unique index on (user_id) where status = 'unsaved' and re-reads the
// winner's row, so a duplicate attempt is never a fault.
func (r *articleRepository) GetOrCreateUnsaved(userID uint) (*models.Article, bool, error) {
	existing, err := r.findUnsaved(userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	article := &models.Article{
		UserID: userID,
		Status: models.StatusUnsaved,
	}
	if err := r.db.Create(article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, err := r.findUnsaved(userID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	created, err := r.reload(article.ID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (r *articleRepository) findUnsaved(userID uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").
		Where("user_id = ? AND status = ?", userID, models.StatusUnsaved).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) reload(articleID uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").First(&article, articleID).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts directly, bypassing the get-or-create path. A second
// unsaved article for the same user violates the partial unique index and is
// reported as a conflict.
func (r *articleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrorConflict{Message: "user already has an unsaved article"}
		}
		return err
	}
	return nil
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) ListPublished(params models.PublicFeedParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).
		Where("status = ?", models.StatusPublished)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Preload("User").
		Order("created_at desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&articles).Error

	return articles, total, err
}
