package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tavolo/tavolo/internal/model"
	"github.com/tavolo/tavolo/internal/repository"
)

// mockStore implements CatalogStore in memory. Setting err forces a
// store failure on every table read; pingErr only fails the probe.
type mockStore struct {
	users      []model.User
	images     []model.Image
	categories []model.MenuCategory
	items      []model.MenuItem
	reviews    []model.Review
	faqGroups  []model.FAQGroup
	err        error
	pingErr    error
}

func (m *mockStore) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.users == nil {
		return []model.User{}, nil
	}
	return m.users, nil
}

func (m *mockStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockStore) ListImages(ctx context.Context) ([]model.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.images == nil {
		return []model.Image{}, nil
	}
	return m.images, nil
}

func (m *mockStore) GetImageByID(ctx context.Context, id int64) (*model.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.images {
		if m.images[i].ID == id {
			return &m.images[i], nil
		}
	}
	return nil, repository.ErrImageNotFound
}

func (m *mockStore) ListMenuCategories(ctx context.Context) ([]model.MenuCategory, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.categories == nil {
		return []model.MenuCategory{}, nil
	}
	return m.categories, nil
}

func (m *mockStore) GetMenuCategoryByID(ctx context.Context, id int64) (*model.MenuCategory, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, repository.ErrMenuCategoryNotFound
}

func (m *mockStore) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.items == nil {
		return []model.MenuItem{}, nil
	}
	return m.items, nil
}

func (m *mockStore) GetMenuItemByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, repository.ErrMenuItemNotFound
}

func (m *mockStore) ListFAQGroups(ctx context.Context) ([]model.FAQGroup, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.faqGroups == nil {
		return []model.FAQGroup{}, nil
	}
	return m.faqGroups, nil
}

func (m *mockStore) ListReviews(ctx context.Context) ([]model.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.reviews == nil {
		return []model.Review{}, nil
	}
	return m.reviews, nil
}

func (m *mockStore) GetReviewByID(ctx context.Context, id int64) (*model.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			return &m.reviews[i], nil
		}
	}
	return nil, repository.ErrReviewNotFound
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func newTestRouter(store *mockStore) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(store, logger)
}

func newRequestRecorder(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}

func doGet(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
