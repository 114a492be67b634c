package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/tavolo/tavolo/internal/model"
)

func intptr(i int) *int {
	return &i
}

func int64ptr(i int64) *int64 {
	return &i
}

func seededMenuStore() *mockStore {
	rating := intptr(4)
	return &mockStore{
		categories: []model.MenuCategory{
			{ID: 1, Name: "Mains", Slug: "mains"},
		},
		items: []model.MenuItem{
			{ID: 10, Title: "Nasi Goreng", Price: 25000, Currency: "USD", Rating: rating, CategoryID: int64ptr(1)},
		},
	}
}

func TestMenuHandler_ListCategories(t *testing.T) {
	router := newTestRouter(seededMenuStore())

	rec := doGet(t, router, "/menu-categories")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var categories []model.MenuCategory
	if err := json.NewDecoder(rec.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(categories) != 1 || categories[0].Slug != "mains" {
		t.Errorf("unexpected categories: %+v", categories)
	}
}

func TestMenuHandler_GetCategory_NotFound(t *testing.T) {
	router := newTestRouter(seededMenuStore())

	rec := doGet(t, router, "/menu-categories/99")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "Menu category not found" {
		t.Errorf("unexpected error message: %q", response["error"])
	}
}

func TestMenuHandler_GetItem(t *testing.T) {
	router := newTestRouter(seededMenuStore())

	rec := doGet(t, router, "/menu-items/10")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body["id"] != float64(10) {
		t.Errorf("id = %v, want 10", body["id"])
	}
	if body["title"] != "Nasi Goreng" {
		t.Errorf("title = %v, want Nasi Goreng", body["title"])
	}
	if body["price"] != float64(25000) {
		t.Errorf("price = %v, want 25000", body["price"])
	}
	if body["category_id"] != float64(1) {
		t.Errorf("category_id = %v, want 1", body["category_id"])
	}
	if body["rating"] != float64(4) {
		t.Errorf("rating = %v, want 4", body["rating"])
	}
}

func TestMenuHandler_GetItem_NotFound(t *testing.T) {
	router := newTestRouter(seededMenuStore())

	rec := doGet(t, router, "/menu-items/99")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "Menu item not found" {
		t.Errorf("unexpected error message: %q", response["error"])
	}
}

func TestMenuHandler_ListItems_Empty(t *testing.T) {
	router := newTestRouter(&mockStore{})

	rec := doGet(t, router, "/menu-items")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array body, got %s", body)
	}
}

func TestMenuHandler_ListItems_StoreError(t *testing.T) {
	router := newTestRouter(&mockStore{err: errors.New("timeout")})

	rec := doGet(t, router, "/menu-items")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestMenuHandler_Get_Idempotent(t *testing.T) {
	router := newTestRouter(seededMenuStore())

	first := doGet(t, router, "/menu-items/10")
	second := doGet(t, router, "/menu-items/10")

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected both requests to succeed, got %d and %d", first.Code, second.Code)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("repeated GETs with no intervening writes must return identical bodies")
	}
}
