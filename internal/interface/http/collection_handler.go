package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/internal/application"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	repo "github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/response"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/validation"
)

type CollectionHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCollectionHandler(svc *application.CatalogService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{Svc: svc, Logger: logger}
}

func collectionView(col *entity.Collection) gin.H {
	return gin.H{
		"id":          col.ID,
		"user_id":     col.UserID,
		"name":        col.Name,
		"description": col.Description,
		"template_id": col.TemplateID,
		"item_count":  col.ItemCount,
		"favorite":    col.Favorite,
		"tags":        col.Tags,
		"is_public":   col.IsPublic,
		"created_at":  col.CreatedAt,
		"updated_at":  col.UpdatedAt,
	}
}

// ownCollection loads the collection and enforces ownership.
func (h *CollectionHandler) ownCollection(c *gin.Context) *entity.Collection {
	col, err := h.Svc.GetCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "collection not found", nil)
		return nil
	}
	if col.UserID != c.GetString("userID") {
		response.Error[any](c, http.StatusForbidden, "not your collection", nil)
		return nil
	}
	return col
}

// List GET /api/collections
func (h *CollectionHandler) List(c *gin.Context) {
	cols, err := h.Svc.ListCollections(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("list collections failed")
		response.Error[any](c, http.StatusInternalServerError, "list collections failed", nil)
		return
	}
	out := make([]gin.H, 0, len(cols))
	for i := range cols {
		out = append(out, collectionView(&cols[i]))
	}
	response.Success(c, http.StatusOK, out, "collections", map[string]any{"count": len(out)})
}

// Get GET /api/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	col := h.ownCollection(c)
	if col == nil {
		return
	}
	response.Success(c, http.StatusOK, collectionView(col), "collection", nil)
}

type createCollectionRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Description string   `json:"description"`
	TemplateID  string   `json:"template_id" binding:"omitempty,uuid"`
	Tags        []string `json:"tags"`
	IsPublic    bool     `json:"is_public"`
}

// Create POST /api/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	col, err := h.Svc.CreateCollection(c.Request.Context(), c.GetString("userID"), application.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
		TemplateID:  req.TemplateID,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create collection failed")
		response.Error[any](c, http.StatusInternalServerError, "create collection failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, collectionView(col), "collection created", nil)
}

type updateCollectionRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description"`
	Favorite    *bool    `json:"favorite"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"is_public"`
}

// Update PUT /api/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	col := h.ownCollection(c)
	if col == nil {
		return
	}
	var req updateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.UpdateCollection(c.Request.Context(), col.ID, application.UpdateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
		Favorite:    req.Favorite,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "update collection failed", nil)
		return
	}
	response.Success(c, http.StatusOK, collectionView(updated), "collection updated", nil)
}

// Delete DELETE /api/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	col, err := h.Svc.GetCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		if repo.IsKind(err, repo.KindNotFound) {
			// deleting an absent collection is a no-op
			response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "collection deleted", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete collection failed", nil)
		return
	}
	if col.UserID != c.GetString("userID") {
		response.Error[any](c, http.StatusForbidden, "not your collection", nil)
		return
	}
	if err := h.Svc.DeleteCollection(c.Request.Context(), col.ID); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "delete collection failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "collection deleted", nil)
}
