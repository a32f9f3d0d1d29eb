package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/internal/application"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	repo "github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/response"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/validation"
)

type TemplateHandler struct {
	Svc    *application.TemplateService
	Logger *logrus.Logger
}

func NewTemplateHandler(svc *application.TemplateService, logger *logrus.Logger) *TemplateHandler {
	return &TemplateHandler{Svc: svc, Logger: logger}
}

func templateView(t *entity.Template) gin.H {
	return gin.H{
		"id":          t.ID,
		"creator_id":  t.CreatorID,
		"name":        t.Name,
		"description": t.Description,
		"category":    t.Category,
		"components":  t.Components,
		"preview_url": t.PreviewURL,
		"favorite":    t.Favorite,
		"tags":        t.Tags,
		"is_public":   t.IsPublic,
		"is_premium":  t.IsPremium,
		"downloads":   t.Downloads,
		"rating":      t.Rating,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

func templateViews(ts []entity.Template) []gin.H {
	out := make([]gin.H, 0, len(ts))
	for i := range ts {
		out = append(out, templateView(&ts[i]))
	}
	return out
}

// List GET /api/templates (the caller's own templates)
func (h *TemplateHandler) List(c *gin.Context) {
	ts, err := h.Svc.ListTemplates(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("list templates failed")
		response.Error[any](c, http.StatusInternalServerError, "list templates failed", nil)
		return
	}
	response.Success(c, http.StatusOK, templateViews(ts), "templates", map[string]any{"count": len(ts)})
}

// Search GET /api/templates/search?q=&category=
func (h *TemplateHandler) Search(c *gin.Context) {
	ts, err := h.Svc.SearchTemplates(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search templates failed", nil)
		return
	}
	response.Success(c, http.StatusOK, templateViews(ts), "templates", map[string]any{"count": len(ts)})
}

// Featured GET /api/templates/featured
func (h *TemplateHandler) Featured(c *gin.Context) {
	ts, err := h.Svc.FeaturedTemplates(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "featured templates failed", nil)
		return
	}
	response.Success(c, http.StatusOK, templateViews(ts), "featured templates", map[string]any{"count": len(ts)})
}

// Get GET /api/templates/:id
// Public templates are visible to everyone; private ones only to the creator.
func (h *TemplateHandler) Get(c *gin.Context) {
	t, err := h.Svc.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "template not found", nil)
		return
	}
	if !t.IsPublic && t.CreatorID != c.GetString("userID") {
		response.Error[any](c, http.StatusNotFound, "template not found", nil)
		return
	}
	response.Success(c, http.StatusOK, templateView(t), "template", nil)
}

type createTemplateRequest struct {
	Name        string                       `json:"name" binding:"required,min=1,max=200"`
	Description string                       `json:"description"`
	Category    string                       `json:"category" binding:"required,min=1,max=100"`
	Components  []entity.ComponentDefinition `json:"components"`
	PreviewURL  string                       `json:"preview_url" binding:"omitempty,url"`
	Tags        []string                     `json:"tags"`
	IsPublic    bool                         `json:"is_public"`
	IsPremium   bool                         `json:"is_premium"`
}

// Create POST /api/templates
func (h *TemplateHandler) Create(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.CreateTemplate(c.Request.Context(), c.GetString("userID"), application.CreateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Components:  req.Components,
		PreviewURL:  req.PreviewURL,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
		IsPremium:   req.IsPremium,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create template failed")
		response.Error[any](c, http.StatusInternalServerError, "create template failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, templateView(t), "template created", nil)
}

type updateTemplateRequest struct {
	Name        *string                      `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string                      `json:"description"`
	Category    *string                      `json:"category" binding:"omitempty,min=1,max=100"`
	Components  []entity.ComponentDefinition `json:"components"`
	PreviewURL  *string                      `json:"preview_url" binding:"omitempty,url"`
	Favorite    *bool                        `json:"favorite"`
	Tags        []string                     `json:"tags"`
	IsPublic    *bool                        `json:"is_public"`
	IsPremium   *bool                        `json:"is_premium"`
}

func (h *TemplateHandler) ownTemplate(c *gin.Context) *entity.Template {
	t, err := h.Svc.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "template not found", nil)
		return nil
	}
	if t.CreatorID != c.GetString("userID") {
		response.Error[any](c, http.StatusForbidden, "not your template", nil)
		return nil
	}
	return t
}

// Update PUT /api/templates/:id
func (h *TemplateHandler) Update(c *gin.Context) {
	t := h.ownTemplate(c)
	if t == nil {
		return
	}
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.UpdateTemplate(c.Request.Context(), t.ID, application.UpdateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Components:  req.Components,
		PreviewURL:  req.PreviewURL,
		Favorite:    req.Favorite,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
		IsPremium:   req.IsPremium,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "update template failed", nil)
		return
	}
	response.Success(c, http.StatusOK, templateView(updated), "template updated", nil)
}

// Delete DELETE /api/templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	t, err := h.Svc.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if repo.IsKind(err, repo.KindNotFound) {
			response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "template deleted", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete template failed", nil)
		return
	}
	if t.CreatorID != c.GetString("userID") {
		response.Error[any](c, http.StatusForbidden, "not your template", nil)
		return
	}
	if err := h.Svc.DeleteTemplate(c.Request.Context(), t.ID); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "delete template failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "template deleted", nil)
}

// Use POST /api/templates/:id/use
func (h *TemplateHandler) Use(c *gin.Context) {
	t, err := h.Svc.UseTemplate(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, application.ErrPremiumRequired) {
			response.Error[any](c, http.StatusPaymentRequired, "premium subscription required", nil)
			return
		}
		if repo.IsKind(err, repo.KindNotFound) {
			response.Error[any](c, http.StatusNotFound, "template not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "use template failed", nil)
		return
	}
	response.Success(c, http.StatusOK, templateView(t), "template", nil)
}
