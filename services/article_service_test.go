package services

import (
	"sort"
	"testing"

	"blog-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memArticleRepo is an in-memory stand-in for the gorm repository. It keeps
// the same contract: owner-scoped lookups, not-found opacity and the single
// unsaved slot per user.
type memArticleRepo struct {
	articles map[uint]models.Article
	nextID   uint
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: map[uint]models.Article{}}
}

func (r *memArticleRepo) ListOwned(userID uint) ([]models.Article, error) {
	var out []models.Article
	for _, a := range r.articles {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memArticleRepo) FindOwned(userID, articleID uint) (*models.Article, error) {
	a, ok := r.articles[articleID]
	if !ok || a.UserID != userID {
		return nil, models.ErrorNotFound{}
	}
	copied := a
	return &copied, nil
}

func (r *memArticleRepo) GetOrCreateUnsaved(userID uint) (*models.Article, bool, error) {
	for _, a := range r.articles {
		if a.UserID == userID && a.Status == models.StatusUnsaved {
			copied := a
			return &copied, false, nil
		}
	}
	article := models.Article{UserID: userID, Status: models.StatusUnsaved}
	r.insert(&article)
	return &article, true, nil
}

func (r *memArticleRepo) Create(article *models.Article) error {
	if article.Status == models.StatusUnsaved {
		for _, a := range r.articles {
			if a.UserID == article.UserID && a.Status == models.StatusUnsaved {
				return models.ErrorConflict{Message: "user already has an unsaved article"}
			}
		}
	}
	r.insert(article)
	return nil
}

func (r *memArticleRepo) Update(article *models.Article) error {
	r.articles[article.ID] = *article
	return nil
}

func (r *memArticleRepo) ListPublished(params models.PublicFeedParams) ([]models.Article, int64, error) {
	var out []models.Article
	for _, a := range r.articles {
		if a.Status == models.StatusPublished {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (r *memArticleRepo) insert(article *models.Article) {
	r.nextID++
	article.ID = r.nextID
	r.articles[article.ID] = *article
}

func (r *memArticleRepo) countFor(userID uint) int {
	n := 0
	for _, a := range r.articles {
		if a.UserID == userID {
			n++
		}
	}
	return n
}

func TestStartDraftCreatesOnceAndIsIdempotent(t *testing.T) {
	repo := newMemArticleRepo()
	svc := NewArticleService(repo)

	first, err := svc.StartDraft(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnsaved, first.Status)
	assert.Equal(t, uint(1), first.UserID)
	assert.Empty(t, first.Title)
	assert.Empty(t, first.Content)

	second, err := svc.StartDraft(1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.countFor(1))
}

func TestStartDraftReturnsPreexistingUnsavedArticle(t *testing.T) {
	repo := newMemArticleRepo()
	existing := models.Article{UserID: 1, Status: models.StatusUnsaved}
	require.NoError(t, repo.Create(&existing))
	svc := NewArticleService(repo)

	got, err := svc.StartDraft(1)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, 1, repo.countFor(1))
}

func TestStartDraftPerUserSlotsAreIndependent(t *testing.T) {
	repo := newMemArticleRepo()
	svc := NewArticleService(repo)

	a, err := svc.StartDraft(1)
	require.NoError(t, err)
	b, err := svc.StartDraft(2)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdatePublishesDraft(t *testing.T) {
	repo := newMemArticleRepo()
	article := models.Article{UserID: 1, Title: "T1", Content: "C1", Status: models.StatusDraft}
	require.NoError(t, repo.Create(&article))
	svc := NewArticleService(repo)

	got, err := svc.Update(1, article.ID, models.UpdateArticleRequest{
		Title:   "T2",
		Content: "C2",
		Status:  models.StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "C2", got.Content)
	assert.Equal(t, models.StatusPublished, got.Status)

	stored, err := repo.FindOwned(1, article.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, stored.Status)
	assert.Equal(t, "T2", stored.Title)
}

func TestUpdateKeepingUnsavedStatusIsAllowed(t *testing.T) {
	repo := newMemArticleRepo()
	svc := NewArticleService(repo)
	article, err := svc.StartDraft(1)
	require.NoError(t, err)

	got, err := svc.Update(1, article.ID, models.UpdateArticleRequest{
		Title:  "work in progress",
		Status: models.StatusUnsaved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnsaved, got.Status)
	assert.Equal(t, "work in progress", got.Title)
}

func TestUpdateCollectsAllValidationErrors(t *testing.T) {
	repo := newMemArticleRepo()
	article := models.Article{UserID: 1, Status: models.StatusDraft}
	require.NoError(t, repo.Create(&article))
	svc := NewArticleService(repo)

	_, err := svc.Update(1, article.ID, models.UpdateArticleRequest{Status: models.StatusPublished})
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, "title", verrs[0].Field)
	assert.Equal(t, "content", verrs[1].Field)

	// failed validation must not persist anything
	stored, err := repo.FindOwned(1, article.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, stored.Status)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newMemArticleRepo()
	article := models.Article{UserID: 1, Status: models.StatusDraft}
	require.NoError(t, repo.Create(&article))
	svc := NewArticleService(repo)

	_, err := svc.Update(1, article.ID, models.UpdateArticleRequest{Status: "archived"})
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "status", verrs[0].Field)
}

func TestUpdateOnForeignArticleIsNotFound(t *testing.T) {
	repo := newMemArticleRepo()
	article := models.Article{UserID: 2, Status: models.StatusDraft}
	require.NoError(t, repo.Create(&article))
	svc := NewArticleService(repo)

	_, err := svc.Update(1, article.ID, models.UpdateArticleRequest{
		Title:   "T",
		Content: "C",
		Status:  models.StatusPublished,
	})
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestGetOwnedOnForeignArticleIsNotFound(t *testing.T) {
	repo := newMemArticleRepo()
	article := models.Article{UserID: 2, Status: models.StatusDraft}
	require.NoError(t, repo.Create(&article))
	svc := NewArticleService(repo)

	_, err := svc.GetOwned(1, article.ID)
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)

	_, err = svc.GetOwned(1, 9999)
	assert.ErrorAs(t, err, &notFound)
}

func TestListOwnedScopesAndOrders(t *testing.T) {
	repo := newMemArticleRepo()
	svc := NewArticleService(repo)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Article{UserID: 1, Status: models.StatusDraft}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(&models.Article{UserID: 2, Status: models.StatusDraft}))
	}

	articles, err := svc.ListOwned(1)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
	for i := 1; i < len(articles); i++ {
		assert.Greater(t, articles[i].ID, articles[i-1].ID)
	}
	for _, a := range articles {
		assert.Equal(t, uint(1), a.UserID)
	}
}

func TestListOwnedEmpty(t *testing.T) {
	repo := newMemArticleRepo()
	svc := NewArticleService(repo)

	articles, err := svc.ListOwned(1)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestDirectCreateOfSecondUnsavedArticleConflicts(t *testing.T) {
	repo := newMemArticleRepo()
	require.NoError(t, repo.Create(&models.Article{UserID: 1, Status: models.StatusUnsaved}))

	err := repo.Create(&models.Article{UserID: 1, Status: models.StatusUnsaved})
	var conflict models.ErrorConflict
	assert.ErrorAs(t, err, &conflict)
}
