// Package posts creates new blog posts from the default front matter template
// and re-dates the most recent post.
package posts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-blogcheck/internal/logging"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
)

const dateLayout = "2006-01-02"

var (
	ErrUnknownFormat = errors.New("posts: unknown post format")
	ErrInvalidDate   = errors.New("posts: date must be YYYY-MM-DD")
	ErrInvalidName   = errors.New("posts: post name is empty after normalisation")
	ErrNoPosts       = errors.New("posts: no posts to stamp")
)

const defaultFrontMatter = `---
layout: blog_post
title: ""
author:
by: advocate|contractor
communities: [devops,security,mobile,.net,java,javascript,go,php,python,ruby]
description: ""
tags: []
tweets:
- ""
- ""
- ""
image:
type: awareness|conversion
---
`

var templates = map[string]string{
	"md": defaultFrontMatter,
	"adoc": defaultFrontMatter + `:page-liquid:
:toc: macro
:experimental:
`,
}

// Formats lists the supported post formats.
func Formats() []string {
	out := make([]string, 0, len(templates))
	for format := range templates {
		out = append(out, format)
	}
	sort.Strings(out)
	return out
}

// Config locates the posts and blog image directories.
type Config struct {
	PostsDir      string
	BlogImagesDir string
	Now           func() time.Time
	Logger        interfaces.Logger
}

// Scaffolder creates and stamps posts on disk.
type Scaffolder struct {
	postsDir      string
	blogImagesDir string
	now           func() time.Time
	logger        interfaces.Logger
}

// NewScaffolder constructs a Scaffolder.
func NewScaffolder(cfg Config) *Scaffolder {
	s := &Scaffolder{
		postsDir:      cfg.PostsDir,
		blogImagesDir: cfg.BlogImagesDir,
		now:           cfg.Now,
		logger:        cfg.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = logging.NoOp()
	}
	return s
}

// CreateResult describes the outcome of Create.
type CreateResult struct {
	PostPath string
	ImageDir string
	Created  bool
}

// Create writes <date>-<slug>.<format> into the posts directory unless it
// already exists, and makes sure the post's image directory exists. Blank
// date means today.
func (s *Scaffolder) Create(ctx context.Context, name, format, date string) (*CreateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "md"
	}
	template, ok := templates[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	postSlug, err := slug.Normalize(name)
	if err != nil {
		return nil, fmt.Errorf("posts: normalise name %q: %w", name, err)
	}
	if postSlug == "" {
		return nil, ErrInvalidName
	}

	result := &CreateResult{
		PostPath: filepath.Join(s.postsDir, fmt.Sprintf("%s-%s.%s", day, postSlug, format)),
		ImageDir: filepath.Join(s.blogImagesDir, postSlug),
	}

	switch _, err := os.Stat(result.PostPath); {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(s.postsDir, 0o755); err != nil {
			return nil, fmt.Errorf("posts: create posts dir: %w", err)
		}
		if err := os.WriteFile(result.PostPath, []byte(template), 0o644); err != nil {
			return nil, fmt.Errorf("posts: write %s: %w", result.PostPath, err)
		}
		result.Created = true
	default:
		return nil, fmt.Errorf("posts: stat %s: %w", result.PostPath, err)
	}

	if err := os.MkdirAll(result.ImageDir, 0o755); err != nil {
		return nil, fmt.Errorf("posts: create image dir: %w", err)
	}

	s.logger.WithContext(ctx).Info("posts.create.completed",
		"post", result.PostPath,
		"image_dir", result.ImageDir,
		"created", result.Created,
	)
	return result, nil
}

// StampResult describes the outcome of Stamp.
type StampResult struct {
	From    string
	To      string
	Renamed bool
}

// Stamp renames the most recent post (last in lexical order) so its date
// prefix becomes date. Blank date means today.
func (s *Scaffolder) Stamp(ctx context.Context, date string) (*StampResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.postsDir)
	if err != nil {
		return nil, fmt.Errorf("posts: read %s: %w", s.postsDir, err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, ErrNoPosts
	}
	sort.Strings(names)

	last := names[len(names)-1]
	if len(last) < len(dateLayout) {
		return nil, fmt.Errorf("posts: %s has no date prefix", last)
	}
	updated := day + last[len(dateLayout):]

	result := &StampResult{From: last, To: updated}
	if last == updated {
		s.logger.WithContext(ctx).Info("posts.stamp.unchanged", "post", last)
		return result, nil
	}
	if err := os.Rename(filepath.Join(s.postsDir, last), filepath.Join(s.postsDir, updated)); err != nil {
		return nil, fmt.Errorf("posts: rename %s: %w", last, err)
	}
	result.Renamed = true
	s.logger.WithContext(ctx).Info("posts.stamp.completed", "from", last, "to", updated)
	return result, nil
}

func (s *Scaffolder) resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return date, nil
}
