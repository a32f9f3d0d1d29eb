package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/application"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/repository/memory"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newItemRouter(t *testing.T) (*gin.Engine, *memory.ItemFake, *memory.CollectionFake) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	items := memory.NewItemFake()
	cols := memory.NewCollectionFake()
	svc := application.NewCatalogService(cols, items, nil, nil, "")
	h := NewItemHandler(svc, newTestLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	r.GET("/api/items", h.List)
	r.GET("/api/items/:id", h.Get)
	r.DELETE("/api/items/:id", h.Delete)
	return r, items, cols
}

func TestListItemsWritesEnvelope(t *testing.T) {
	r, items, _ := newItemRouter(t)
	items.Seed(
		*entity.NewItem("u1", "c1", "Coffee Mug"),
		*entity.NewItem("u1", "c1", "Tea Cup"),
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Coffee Mug")
	assert.Contains(t, body, "Tea Cup")
	assert.Contains(t, body, `"success":true`)
}

func TestGetItemAbsentRespondsNotFound(t *testing.T) {
	r, _, _ := newItemRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items/missing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "item not found")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetItemForeignOwnerRespondsForbidden(t *testing.T) {
	r, items, _ := newItemRouter(t)
	it := entity.NewItem("u2", "c1", "Not Yours")
	items.Seed(*it)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items/"+it.ID, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not your item")
}

func TestSearchItemsQueryParam(t *testing.T) {
	r, items, _ := newItemRouter(t)
	items.Seed(
		*entity.NewItem("u1", "c1", "Coffee Mug"),
		*entity.NewItem("u1", "c1", "Water Bottle"),
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items?q=coffee", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Coffee Mug")
	assert.NotContains(t, w.Body.String(), "Water Bottle")
}

func TestDeleteItemAbsentIsSuccess(t *testing.T) {
	r, _, _ := newItemRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/items/ghost", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
