package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cabin-backend/services"
	"cabin-backend/utils"
)

type articlePayload struct {
	Title     string  `json:"title" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	Published bool    `json:"published"`
	ImageURL  *string `json:"image_url"`
}

type articleUpdatePayload struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
	ImageURL  *string `json:"image_url"`
}

// ArticleController serves the knowledge base: publish-gated reads for
// guests, full CRUD for admins.
type ArticleController struct {
	Articles *services.ArticleService
}

func NewArticleController(articles *services.ArticleService) *ArticleController {
	return &ArticleController{Articles: articles}
}

// List returns published articles, optionally filtered by category.
func (arc *ArticleController) List(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category != "" {
		articles, err := arc.Articles.ListByCategory(c.Request.Context(), category)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"articles": articles})
		return
	}

	articles, err := arc.Articles.List(c.Request.Context(), false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"articles": articles})
}

// ListAll returns every article including drafts. Admin only.
func (arc *ArticleController) ListAll(c *gin.Context) {
	articles, err := arc.Articles.List(c.Request.Context(), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"articles": articles})
}

// Get returns a single published article; unpublished ids look absent.
func (arc *ArticleController) Get(c *gin.Context) {
	article, err := arc.Articles.GetByID(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"article": article})
}

// Search matches published articles on title or content, case-insensitive.
func (arc *ArticleController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "q query parameter is required")
		return
	}
	articles, err := arc.Articles.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"articles": articles})
}

func (arc *ArticleController) Create(c *gin.Context) {
	var payload articlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "title, content, and category are required")
		return
	}

	article, err := arc.Articles.Add(c.Request.Context(), services.ArticleInput{
		Title:     payload.Title,
		Content:   payload.Content,
		Category:  payload.Category,
		Published: payload.Published,
		ImageURL:  payload.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"article": article})
}

func (arc *ArticleController) Update(c *gin.Context) {
	var payload articleUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	article, err := arc.Articles.Update(c.Request.Context(), c.Param("id"), services.ArticleUpdate{
		Title:     payload.Title,
		Content:   payload.Content,
		Category:  payload.Category,
		Published: payload.Published,
		ImageURL:  payload.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"article": article})
}

func (arc *ArticleController) Delete(c *gin.Context) {
	if err := arc.Articles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "article deleted"})
}
