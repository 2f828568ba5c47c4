package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, helper: httpHelper}
}

// GetMyArticles returns every article owned by the caller, oldest first.
func (h *ArticleHandler) GetMyArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.articleService.ListOwned(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewArticleResponseList(articles))
}

func (h *ArticleHandler) GetMyArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetOwned(userID.(uint), uint(id))
	if err != nil {
		h.renderError(c, err)
		return
	}

	resp := models.NewArticleResponse(article)
	c.JSON(http.StatusOK, resp)
}

// StartDraft is the idempotent entry to the unsaved slot: the first call
// creates the stub, subsequent calls return the same row until it is saved as
// a draft or published.
func (h *ArticleHandler) StartDraft(c *gin.Context) {
	userID, _ := c.Get("user_id")

	article, err := h.articleService.StartDraft(userID.(uint))
	if err != nil {
		h.renderError(c, err)
		return
	}

	resp := models.NewArticleResponse(article)
	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) UpdateMyArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Update(userID.(uint), uint(id), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	resp := models.NewArticleResponse(article)
	c.JSON(http.StatusOK, resp)
}

// GetPublicArticles serves the public feed of published articles, newest
// first.
func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.PublicFeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.ListPublished(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": models.NewPublicArticleOverviewList(articles),
		"meta":     h.helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) renderError(c *gin.Context, err error) {
	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrs})
		return
	}

	var notFound models.ErrorNotFound
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
}
