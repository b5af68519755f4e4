// Package forem provides a client for the article endpoints of a
// Forem-compatible blogging platform (dev.to and friends).
package forem

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/quillmark/quill/internal/transport"
	"github.com/quillmark/quill/pkg/errors"
)

// DefaultAPIURL is the hosted dev.to API.
const DefaultAPIURL = "https://dev.to/api"

// inventoryPageSize is the fixed page size for the single inventory read.
const inventoryPageSize = 1000

// Article is an article record as reported by the platform. CanonicalURL
// is empty for articles that were never published through quill.
type Article struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CanonicalURL string `json:"canonical_url"`
	URL          string `json:"url"`
	Published    bool   `json:"published"`
}

// ArticlePayload is the outbound body shape shared by create and update.
// Updates are full overwrites: every field replaces the remote value.
type ArticlePayload struct {
	Title        string   `json:"title"`
	BodyMarkdown string   `json:"body_markdown"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
	CanonicalURL string   `json:"canonical_url"`
	Published    bool     `json:"published"`
}

type articleRequest struct {
	Article ArticlePayload `json:"article"`
}

// Client talks to one platform instance on behalf of one account.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// NewClient creates a platform client. apiURL falls back to DefaultAPIURL.
func NewClient(apiURL, apiKey, userAgent string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		baseURL:   strings.TrimSuffix(apiURL, "/"),
		transport: transport.New(&transport.APIKeyAuth{Key: apiKey}, userAgent),
	}
}

// Articles retrieves the caller's own articles, one fixed-size page.
func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	url := fmt.Sprintf("%s/articles/me/all?per_page=%d&page=1", c.baseURL, inventoryPageSize)

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, requestError(url, err)
	}

	var articles []Article
	if err := transport.DecodeResponse(resp, url, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// CreateArticle creates a new article from the payload.
func (c *Client) CreateArticle(ctx context.Context, payload ArticlePayload) (*Article, error) {
	url := c.baseURL + "/articles"
	return c.send(ctx, http.MethodPost, url, payload)
}

// UpdateArticle overwrites the article identified by id with the payload.
func (c *Client) UpdateArticle(ctx context.Context, id int64, payload ArticlePayload) (*Article, error) {
	url := fmt.Sprintf("%s/articles/%d", c.baseURL, id)
	return c.send(ctx, http.MethodPut, url, payload)
}

func (c *Client) send(ctx context.Context, method, url string, payload ArticlePayload) (*Article, error) {
	body, err := json.Marshal(articleRequest{Article: payload})
	if err != nil {
		return nil, errors.WrapParse("json", url, err)
	}

	resp, err := c.transport.Send(ctx, method, url, body)
	if err != nil {
		return nil, requestError(url, err)
	}

	var article Article
	if err := transport.DecodeResponse(resp, url, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// requestError wraps transport failures that never produced a response.
func requestError(url string, err error) error {
	if _, ok := err.(*errors.APIError); ok {
		return err
	}
	return &errors.APIError{Endpoint: url, Err: err}
}
