package forem

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	qerrors "github.com/quillmark/quill/pkg/errors"
)

func TestArticlesRequestShape(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		w.Write([]byte(`[{"id": 7, "title": "Hello", "canonical_url": "https://example.com/posts/hello", "published": true}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k3y", "quill-test")
	articles, err := c.Articles(context.Background())
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}

	if gotPath != "/articles/me/all" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "per_page=1000&page=1" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotKey != "k3y" {
		t.Errorf("api-key = %q", gotKey)
	}
	if len(articles) != 1 || articles[0].ID != 7 {
		t.Fatalf("articles = %+v", articles)
	}
	if articles[0].CanonicalURL != "https://example.com/posts/hello" {
		t.Errorf("canonical_url = %q", articles[0].CanonicalURL)
	}
}

func TestCreateArticleWrapsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 101, "canonical_url": "https://example.com/posts/a"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "")
	created, err := c.CreateArticle(context.Background(), ArticlePayload{
		Title:        "A",
		BodyMarkdown: "body",
		Tags:         []string{"a", "b"},
		CanonicalURL: "https://example.com/posts/a",
		Published:    true,
	})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/articles" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	article, ok := gotBody["article"].(map[string]any)
	if !ok {
		t.Fatalf("body not wrapped in article key: %v", gotBody)
	}
	if article["title"] != "A" || article["published"] != true {
		t.Errorf("article payload = %v", article)
	}
	if created.ID != 101 {
		t.Errorf("created.ID = %d", created.ID)
	}
}

func TestUpdateArticleAddressesID(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 55}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "")
	if _, err := c.UpdateArticle(context.Background(), 55, ArticlePayload{Title: "B"}); err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/articles/55" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestNonSuccessSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"Canonical url has already been taken"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "")
	_, err := c.CreateArticle(context.Background(), ArticlePayload{Title: "dup"})

	var apiErr *qerrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("expected response body text in error")
	}
}

func TestDefaultAPIURL(t *testing.T) {
	c := NewClient("", "k", "")
	if c.baseURL != DefaultAPIURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}

	c = NewClient("https://forem.example/api/", "k", "")
	if c.baseURL != "https://forem.example/api" {
		t.Errorf("baseURL = %q, trailing slash should be trimmed", c.baseURL)
	}
}
