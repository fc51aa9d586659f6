package blogcheck_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-blogcheck"
	"github.com/goliatone/go-blogcheck/pkg/testsupport"
	goerrors "github.com/goliatone/go-errors"
)

func newSite(tb testing.TB, posts map[string]string) blogcheck.Config {
	tb.Helper()
	root := tb.TempDir()
	cfg := blogcheck.DefaultConfig()
	cfg.Paths.PostsDir = filepath.Join(root, "_posts")
	cfg.Paths.ReferenceFile = filepath.Join(root, "reference.json")
	cfg.Paths.ImagesDir = filepath.Join(root, "img")
	cfg.Paths.BlogImagesDir = filepath.Join(root, "img", "blog")

	ref := `{"communities": ["devops", "security"], "types": ["awareness", "conversion"], "bys": ["advocate", "contractor"]}`
	testsupport.WriteTree(tb, root, map[string]string{"reference.json": ref})
	testsupport.WriteTree(tb, cfg.Paths.PostsDir, posts)
	testsupport.WriteTree(tb, cfg.Paths.BlogImagesDir, nil)
	return cfg
}

func TestModuleValidateFrontMatter(t *testing.T) {
	cfg := newSite(t, map[string]string{
		"2019-09-01-a.md": "---\ncommunities: [devops]\ntype: awareness\nby: advocate\ntags: [go]\ndescription: ok\n---\n",
	})
	var logs bytes.Buffer
	module, err := blogcheck.New(cfg, blogcheck.WithLogWriter(&logs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var report *blogcheck.FrontMatterReport
	err = module.ValidateFrontMatter(context.Background(), blogcheck.FrontMatterHooks{
		OnReport: func(r *blogcheck.FrontMatterReport) { report = r },
	})
	if err != nil {
		t.Fatalf("ValidateFrontMatter: %v", err)
	}
	if report == nil || len(report.Categories) != 4 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestModuleValidateFrontMatterViolation(t *testing.T) {
	cfg := newSite(t, map[string]string{
		"2019-09-01-a.md": "---\ncommunities: [finance]\n---\n",
	})
	module, err := blogcheck.New(cfg, blogcheck.WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var failure error
	err = module.ValidateFrontMatter(context.Background(), blogcheck.FrontMatterHooks{
		OnFailure: func(err error) { failure = err },
	})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	var violation *blogcheck.Violation
	if !errors.As(failure, &violation) || !strings.Contains(violation.Error(), "finance") {
		t.Fatalf("expected violation naming finance, got %v", failure)
	}
}

func TestModuleValidateImagesEmptyDirectory(t *testing.T) {
	cfg := newSite(t, nil)
	module, err := blogcheck.New(cfg, blogcheck.WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var report *blogcheck.ImageReport
	if err := module.ValidateImages(context.Background(), blogcheck.ImageHooks{
		OnReport: func(r *blogcheck.ImageReport) { report = r },
	}); err != nil {
		t.Fatalf("ValidateImages: %v", err)
	}
	if report == nil || report.Checked != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestModuleCreateAndStampPost(t *testing.T) {
	cfg := newSite(t, nil)
	module, err := blogcheck.New(cfg, blogcheck.WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	created, err := module.CreatePost(context.Background(), "launch", "", "2019-09-01")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if filepath.Base(created.PostPath) != "2019-09-01-launch.md" {
		t.Fatalf("unexpected post path %s", created.PostPath)
	}

	stamped, err := module.StampPost(context.Background(), "2019-10-02")
	if err != nil {
		t.Fatalf("StampPost: %v", err)
	}
	if stamped.To != "2019-10-02-launch.md" {
		t.Fatalf("unexpected stamp result %+v", stamped)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := blogcheck.DefaultConfig()
	cfg.Paths.PostsDir = ""
	if _, err := blogcheck.New(cfg); !errors.Is(err, blogcheck.ErrPostsDirRequired) {
		t.Fatalf("expected ErrPostsDirRequired, got %v", err)
	}
}

func TestWithRunIDIsStable(t *testing.T) {
	ctx := blogcheck.WithRunID(context.Background())
	if again := blogcheck.WithRunID(ctx); again != ctx {
		t.Fatal("expected existing run id to be kept")
	}
}
