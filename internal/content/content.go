// Package content serves the studio's blog posts and portfolio gallery.
// Both are compiled into the binary: posts are markdown files with YAML front
// matter under blog/, the gallery is portfolio.yaml.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/onamkulam/interiors/internal/model"
)

//go:embed blog/*.md portfolio.yaml
var files embed.FS

// ErrNotFound is returned for an unknown slug.
var ErrNotFound = errors.New("content: not found")

const frontMatterDelim = "---\n"

// Store holds the parsed content. It is read-only after Load.
type Store struct {
	posts     []model.BlogPost
	bySlug    map[string]int
	portfolio []model.PortfolioCategory
}

// Load parses the embedded content.
func Load() (*Store, error) {
	return LoadFS(files)
}

// LoadFS parses blog/*.md and portfolio.yaml from fsys.
func LoadFS(fsys fs.FS) (*Store, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	names, err := fs.Glob(fsys, "blog/*.md")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	s := &Store{bySlug: make(map[string]int, len(names))}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		post, err := parsePost(md, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if _, dup := s.bySlug[post.Slug]; dup {
			return nil, fmt.Errorf("%s: duplicate slug %q", path.Base(name), post.Slug)
		}
		s.bySlug[post.Slug] = -1
		s.posts = append(s.posts, post)
	}

	sort.SliceStable(s.posts, func(i, j int) bool {
		if s.posts[i].Date.Equal(s.posts[j].Date) {
			return s.posts[i].Slug < s.posts[j].Slug
		}
		return s.posts[i].Date.After(s.posts[j].Date)
	})
	for i, p := range s.posts {
		s.bySlug[p.Slug] = i
	}

	raw, err := fs.ReadFile(fsys, "portfolio.yaml")
	if err != nil {
		return nil, fmt.Errorf("read portfolio: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s.portfolio); err != nil {
		return nil, fmt.Errorf("parse portfolio: %w", err)
	}
	return s, nil
}

func parsePost(md goldmark.Markdown, raw []byte) (model.BlogPost, error) {
	var post model.BlogPost

	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return post, err
	}
	if err := yaml.Unmarshal(meta, &post); err != nil {
		return post, fmt.Errorf("parse front matter: %w", err)
	}
	if post.Slug == "" || post.Title == "" {
		return post, errors.New("front matter needs slug and title")
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return post, fmt.Errorf("render markdown: %w", err)
	}
	post.HTML = buf.String()
	return post, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body.
func splitFrontMatter(raw []byte) (meta, body []byte, err error) {
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(raw, []byte(frontMatterDelim)) {
		return nil, nil, errors.New("missing front matter")
	}
	rest := raw[len(frontMatterDelim):]

	end := bytes.Index(rest, []byte("\n"+frontMatterDelim))
	if end < 0 {
		return nil, nil, errors.New("unterminated front matter")
	}
	return rest[:end+1], rest[end+1+len(frontMatterDelim):], nil
}

// Posts returns post summaries, newest first. An empty category returns all
// posts; otherwise matching is case-insensitive.
func (s *Store) Posts(category string) []model.BlogPost {
	out := make([]model.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p.Summary())
	}
	return out
}

// Post returns the full post for slug.
func (s *Store) Post(slug string) (model.BlogPost, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return model.BlogPost{}, ErrNotFound
	}
	return s.posts[i], nil
}

// Portfolio returns gallery categories. An empty category returns all.
func (s *Store) Portfolio(category string) []model.PortfolioCategory {
	out := make([]model.PortfolioCategory, 0, len(s.portfolio))
	for _, c := range s.portfolio {
		if category != "" && !strings.EqualFold(c.Category, category) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Categories lists the distinct blog categories in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
