// Package publish reconciles local Markdown posts against the remote
// article set of a Forem-compatible platform, matching by canonical URL
// and issuing create or update calls as needed.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/quillmark/quill/internal/content"
	"github.com/quillmark/quill/internal/forem"
	"github.com/quillmark/quill/pkg/errors"
	"github.com/quillmark/quill/pkg/logging"
)

// maxTags is the platform's tag limit; excess tags are silently dropped.
const maxTags = 4

// Config carries everything the publisher needs. It is constructed once at
// startup and passed in; the publisher performs no ambient lookups.
type Config struct {
	// SiteURL is the site base URL canonical URLs are derived from.
	SiteURL string

	// ContentRoot is the directory walked for Markdown files.
	ContentRoot string

	// FileList, when set, is the path of a newline-delimited list of
	// files to publish instead of walking ContentRoot.
	FileList string

	// Files, when non-empty, is an explicit list of paths to publish
	// instead of walking ContentRoot. FileList takes precedence.
	Files []string

	// DryRun reports planned actions without issuing write calls.
	DryRun bool
}

// Client is the platform surface the publisher needs. *forem.Client
// satisfies it.
type Client interface {
	Articles(ctx context.Context) ([]forem.Article, error)
	CreateArticle(ctx context.Context, payload forem.ArticlePayload) (*forem.Article, error)
	UpdateArticle(ctx context.Context, id int64, payload forem.ArticlePayload) (*forem.Article, error)
}

// Action is the reconciliation decision for one file.
type Action string

// Reconciliation actions.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// Outcome records what happened to one file.
type Outcome struct {
	File         string
	CanonicalURL string
	Action       Action
}

// Result summarizes one publish run.
type Result struct {
	Created  int
	Updated  int
	Outcomes []Outcome
}

// Publisher performs one-way synchronization of local posts to the remote
// platform. Files are reconciled sequentially in enumeration order; the
// first failure aborts the whole run. There is no deletion path: removing
// a local file never touches its remote counterpart.
type Publisher struct {
	cfg    Config
	client Client
	out    io.Writer
}

// New creates a Publisher. Validates the configuration preconditions
// before any I/O happens.
func New(cfg Config, client Client) (*Publisher, error) {
	if cfg.SiteURL == "" {
		return nil, errors.NewConfigError("QUILL_SITE_URL", "site base URL is required", nil)
	}
	if client == nil {
		return nil, errors.NewConfigError("client", "platform client is required", nil)
	}
	if cfg.ContentRoot == "" {
		cfg.ContentRoot = "content"
	}
	return &Publisher{cfg: cfg, client: client, out: os.Stdout}, nil
}

// SetOutput redirects the per-file outcome lines (used by tests).
func (p *Publisher) SetOutput(w io.Writer) {
	p.out = w
}

// Run executes one linear reconciliation pass.
func (p *Publisher) Run(ctx context.Context) (*Result, error) {
	files, err := p.discover()
	if err != nil {
		return nil, err
	}

	// Nothing local means nothing to reconcile; skip the inventory read
	// entirely rather than spend a network round trip.
	if len(files) == 0 {
		logging.Info().Msg("No files to publish")
		fmt.Fprintln(p.out, "No files to publish.")
		return &Result{}, nil
	}

	inventory, err := p.inventory(ctx)
	if err != nil {
		return nil, p.fail(err)
	}

	result := &Result{}
	for _, file := range files {
		if err := p.reconcile(ctx, file, inventory, result); err != nil {
			return nil, p.fail(err)
		}
	}

	logging.Info().
		Int("created", result.Created).
		Int("updated", result.Updated).
		Bool("dry_run", p.cfg.DryRun).
		Msg("Publish completed")

	return result, nil
}

// discover enumerates the local content set. An explicit file list takes
// precedence over walking the content root, even when it filters down to
// nothing.
func (p *Publisher) discover() ([]string, error) {
	if p.cfg.FileList != "" {
		return content.FromListFile(p.cfg.FileList)
	}
	if len(p.cfg.Files) > 0 {
		return content.FromList(p.cfg.Files)
	}
	return content.Discover(p.cfg.ContentRoot)
}

// inventory fetches the remote article set once and keys it by canonical
// URL. Articles without a canonical URL are unrelated and skipped. On
// duplicate canonical URLs the later entry wins; the remote should not
// hold duplicates, so each one is logged.
func (p *Publisher) inventory(ctx context.Context) (map[string]forem.Article, error) {
	articles, err := p.client.Articles(ctx)
	if err != nil {
		return nil, err
	}

	byURL := make(map[string]forem.Article, len(articles))
	for _, a := range articles {
		if a.CanonicalURL == "" {
			continue
		}
		if _, dup := byURL[a.CanonicalURL]; dup {
			logging.Warn().
				Str("canonical_url", a.CanonicalURL).
				Int64("article_id", a.ID).
				Msg("Duplicate canonical URL in remote inventory; keeping later entry")
		}
		byURL[a.CanonicalURL] = a
	}

	logging.Debug().
		Int("articles", len(articles)).
		Int("with_canonical_url", len(byURL)).
		Msg("Fetched remote inventory")

	return byURL, nil
}

// reconcile processes a single file to completion: read, derive, decide,
// publish, log.
func (p *Publisher) reconcile(ctx context.Context, file string, inventory map[string]forem.Article, result *Result) error {
	rel := content.Rel(p.cfg.ContentRoot, file)
	post, err := content.Load(file, rel)
	if err != nil {
		return err
	}

	canonical := content.CanonicalURL(p.cfg.SiteURL, post.Rel)
	payload := intent(post, canonical)

	existing, found := inventory[canonical]
	if !found {
		if !p.cfg.DryRun {
			if _, err := p.client.CreateArticle(ctx, payload); err != nil {
				return err
			}
		}
		result.Created++
		result.Outcomes = append(result.Outcomes, Outcome{File: file, CanonicalURL: canonical, Action: ActionCreate})
		p.report(ActionCreate, canonical)
		return nil
	}

	if !p.cfg.DryRun {
		if _, err := p.client.UpdateArticle(ctx, existing.ID, payload); err != nil {
			return err
		}
	}
	result.Updated++
	result.Outcomes = append(result.Outcomes, Outcome{File: file, CanonicalURL: canonical, Action: ActionUpdate})
	p.report(ActionUpdate, canonical)
	return nil
}

// intent builds the outbound payload for a post. Updates use the same
// shape as creates: the local file is the sole source of truth, so every
// field overwrites the remote value.
func intent(post *content.Post, canonical string) forem.ArticlePayload {
	tags := []string(post.Meta.Tags)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	return forem.ArticlePayload{
		Title:        post.Meta.Title,
		BodyMarkdown: string(post.Body),
		Tags:         tags,
		Description:  post.Meta.Description,
		CanonicalURL: canonical,
		Published:    !post.Meta.Draft,
	}
}

// fail logs the error that aborts the run. Rate limiting gets its own
// warning so the operator knows waiting, not fixing, is the remedy.
func (p *Publisher) fail(err error) error {
	if errors.IsRateLimited(err) {
		logging.Warn().Err(err).Msg("Platform rate limit hit; wait before retrying")
	}
	return err
}

// report prints and logs the per-file outcome line.
func (p *Publisher) report(action Action, canonical string) {
	verb := "Created"
	if action == ActionUpdate {
		verb = "Updated"
	}
	if p.cfg.DryRun {
		verb = "Would create"
		if action == ActionUpdate {
			verb = "Would update"
		}
	}
	line := fmt.Sprintf("%s: %s", verb, canonical)
	fmt.Fprintln(p.out, line)
	logging.Info().Str("canonical_url", canonical).Str("action", string(action)).Msg(line)
}
