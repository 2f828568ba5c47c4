package models

import (
	"time"

	"github.com/dustin/go-humanize"
)

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is the credential set returned to the client after sign-up or
// sign-in. The access token is only accepted together with the matching
// client id and uid, all three presented as request headers.
type TokenPair struct {
	AccessToken string
	Client      string
	UID         string
	Expiry      time.Time
}

type AuthResponse struct {
	User  User
	Token TokenPair
}

type UpdateArticleRequest struct {
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Status  ArticleStatus `json:"status" binding:"required"`
}

type UserSummary struct {
	Name string `json:"name"`
}

// ArticleResponse is the owner-scoped article payload. FromToday is
// recomputed at serialization time, never stored.
type ArticleResponse struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Status    ArticleStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
	FromToday string        `json:"from_today"`
	User      UserSummary   `json:"user"`
}

// PublicArticleOverview is the public-feed item shape. It carries no content
// and no raw timestamp, only the relative from_today string the feed renders.
type PublicArticleOverview struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	FromToday string      `json:"from_today"`
	User      UserSummary `json:"user"`
}

type PublicFeedParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

func NewArticleResponse(a *Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		FromToday: humanize.Time(a.CreatedAt),
		User:      UserSummary{Name: a.User.Name},
	}
}

func NewArticleResponseList(articles []Article) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		res = append(res, NewArticleResponse(&articles[i]))
	}
	return res
}

func NewPublicArticleOverview(a *Article) PublicArticleOverview {
	return PublicArticleOverview{
		ID:        a.ID,
		Title:     a.Title,
		FromToday: humanize.Time(a.CreatedAt),
		User:      UserSummary{Name: a.User.Name},
	}
}

func NewPublicArticleOverviewList(articles []Article) []PublicArticleOverview {
	res := make([]PublicArticleOverview, 0, len(articles))
	for i := range articles {
		res = append(res, NewPublicArticleOverview(&articles[i]))
	}
	return res
}
