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

type ItemHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.CatalogService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

func itemView(it *entity.Item) gin.H {
	return gin.H{
		"id":            it.ID,
		"user_id":       it.UserID,
		"collection_id": it.CollectionID,
		"name":          it.Name,
		"description":   it.Description,
		"image_urls":    it.ImageURLs,
		"custom_fields": it.CustomFields,
		"favorite":      it.Favorite,
		"tags":          it.Tags,
		"location":      it.Location,
		"rating":        it.Rating,
		"created_at":    it.CreatedAt,
		"updated_at":    it.UpdatedAt,
	}
}

func (h *ItemHandler) ownItem(c *gin.Context) *entity.Item {
	it, err := h.Svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "item not found", nil)
		return nil
	}
	if it.UserID != c.GetString("userID") {
		response.Error[any](c, http.StatusForbidden, "not your item", nil)
		return nil
	}
	return it
}

// List GET /api/items?q=
// With q present this is a name search, otherwise all of the user's items.
func (h *ItemHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	ctx := c.Request.Context()

	var (
		items []entity.Item
		err   error
	)
	if q := c.Query("q"); q != "" {
		items, err = h.Svc.SearchItems(ctx, q, uid)
	} else {
		items, err = h.Svc.ListItems(ctx, uid)
	}
	if err != nil {
		h.Logger.WithError(err).Error("list items failed")
		response.Error[any](c, http.StatusInternalServerError, "list items failed", nil)
		return
	}
	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, itemView(&items[i]))
	}
	response.Success(c, http.StatusOK, out, "items", map[string]any{"count": len(out)})
}

// Get GET /api/items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	it := h.ownItem(c)
	if it == nil {
		return
	}
	response.Success(c, http.StatusOK, itemView(it), "item", nil)
}

type createItemRequest struct {
	CollectionID string                             `json:"collection_id" binding:"required,uuid"`
	Name         string                             `json:"name" binding:"required,min=1,max=200"`
	Description  string                             `json:"description"`
	ImageURLs    []string                           `json:"image_urls" binding:"omitempty,dive,url"`
	CustomFields map[string]entity.CustomFieldValue `json:"custom_fields"`
	Tags         []string                           `json:"tags"`
	Location     *entity.Location                   `json:"location"`
	Rating       *float64                           `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// Create POST /api/items
func (h *ItemHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	col, err := h.Svc.GetCollection(c.Request.Context(), req.CollectionID)
	if err != nil || col.UserID != uid {
		response.Error[any](c, http.StatusNotFound, "collection not found", nil)
		return
	}
	it, err := h.Svc.CreateItem(c.Request.Context(), uid, req.CollectionID, application.CreateItemInput{
		Name:         req.Name,
		Description:  req.Description,
		ImageURLs:    req.ImageURLs,
		CustomFields: req.CustomFields,
		Tags:         req.Tags,
		Location:     req.Location,
		Rating:       req.Rating,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create item failed")
		response.Error[any](c, http.StatusInternalServerError, "create item failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, itemView(it), "item created", nil)
}

type updateItemRequest struct {
	Name         *string                            `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string                            `json:"description"`
	ImageURLs    []string                           `json:"image_urls" binding:"omitempty,dive,url"`
	CustomFields map[string]entity.CustomFieldValue `json:"custom_fields"`
	Favorite     *bool                              `json:"favorite"`
	Tags         []string                           `json:"tags"`
	Location     *entity.Location                   `json:"location"`
	Rating       *float64                           `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// Update PUT /api/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	it := h.ownItem(c)
	if it == nil {
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.UpdateItem(c.Request.Context(), it.ID, application.UpdateItemInput{
		Name:         req.Name,
		Description:  req.Description,
		ImageURLs:    req.ImageURLs,
		CustomFields: req.CustomFields,
		Favorite:     req.Favorite,
		Tags:         req.Tags,
		Location:     req.Location,
		Rating:       req.Rating,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "update item failed", nil)
		return
	}
	response.Success(c, http.StatusOK, itemView(updated), "item updated", nil)
}

// Delete DELETE /api/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	it, err := h.Svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if repo.IsKind(err, repo.KindNotFound) {
			response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "item deleted", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete item failed", nil)
		return
	}
	if it.UserID != c.GetString("userID") {
		response.Error[any](c, http.StatusForbidden, "not your item", nil)
		return
	}
	if err := h.Svc.DeleteItem(c.Request.Context(), it.ID); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "delete item failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "item deleted", nil)
}
