// Command blogcheck validates the blog's post front matter and image assets,
// and scaffolds new posts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/goliatone/go-blogcheck"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "blogcheck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli := newCLI(stdout, stderr)
	cmd := cli.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		cli.printError(err)
		return 1
	}
	return 0
}

type styles struct {
	allowed  lipgloss.Style
	supplied lipgloss.Style
	warning  lipgloss.Style
	success  lipgloss.Style
}

type cli struct {
	stdout io.Writer
	stderr io.Writer
	out    styles
	err    styles

	configPath    string
	logLevel      string
	logProvider   string
	postsDir      string
	referenceFile string
	imagesDir     string
}

// reportedError marks failures whose message was already printed.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{
		stdout: stdout,
		stderr: stderr,
		out:    newStyles(lipgloss.NewRenderer(stdout)),
		err:    newStyles(lipgloss.NewRenderer(stderr)),
	}
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		allowed:  r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		supplied: r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		warning:  r.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		success:  r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	}
}

func (c *cli) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Validate blog post front matter",
		Long:          "blogcheck validates the YAML front matter of every blog post against the\nsite's allow-lists. Subcommands check image assets and scaffold posts.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runFrontMatter(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&c.logProvider, "log-provider", "", "Logger provider (console, gologger)")
	flags.StringVar(&c.postsDir, "posts-dir", "", "Override the posts directory")
	flags.StringVar(&c.referenceFile, "reference", "", "Override the reference data file")
	flags.StringVar(&c.imagesDir, "images-dir", "", "Override the images directory")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "frontmatter",
			Short: "Validate the front matter of every post",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.runFrontMatter(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "images",
			Short: "Check image assets for size, width and format",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.runImages(cmd.Context())
			},
		},
		c.postCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(c.stdout, "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

func (c *cli) postCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Scaffold and re-date posts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name> [format] [date]",
			Short: "Create a post from the default front matter template",
			Args:  cobra.RangeArgs(1, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runCreatePost(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "stamp [date]",
			Short: "Re-date the most recent post",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				date := ""
				if len(args) == 1 {
					date = args[0]
				}
				return c.runStampPost(cmd.Context(), date)
			},
		},
	)
	return cmd
}

func (c *cli) module() (*blogcheck.Module, error) {
	cfg, err := blogcheck.LoadConfig(c.configPath)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(c.logLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(c.logProvider); v != "" {
		cfg.Logging.Provider = v
	}
	if v := strings.TrimSpace(c.postsDir); v != "" {
		cfg.Paths.PostsDir = v
	}
	if v := strings.TrimSpace(c.referenceFile); v != "" {
		cfg.Paths.ReferenceFile = v
	}
	if v := strings.TrimSpace(c.imagesDir); v != "" {
		cfg.Paths.ImagesDir = v
	}
	return blogcheck.New(cfg, blogcheck.WithLogWriter(c.stderr))
}

func (c *cli) runFrontMatter(ctx context.Context) error {
	module, err := c.module()
	if err != nil {
		return err
	}

	var failure error
	err = module.ValidateFrontMatter(ctx, blogcheck.FrontMatterHooks{
		OnWarning: func(w blogcheck.FrontMatterWarning) {
			fmt.Fprintln(c.stderr, c.err.warning.Render(w.String()))
		},
		OnReport: func(report *blogcheck.FrontMatterReport) {
			for _, category := range report.Categories {
				fmt.Fprintf(c.stdout, "Finished validating all YAML front matter for %s.\n", category)
			}
		},
		OnFailure: func(err error) { failure = err },
	})
	if err == nil {
		return nil
	}
	if failure == nil {
		return err
	}

	var violation *blogcheck.Violation
	if !errors.As(failure, &violation) {
		return failure
	}
	fmt.Fprintln(c.stderr, violation.Format(
		func(s string) string { return c.err.allowed.Render(s) },
		func(s string) string { return c.err.supplied.Render(s) },
	))
	return &reportedError{err: err}
}

func (c *cli) runImages(ctx context.Context) error {
	module, err := c.module()
	if err != nil {
		return err
	}

	var report *blogcheck.ImageReport
	err = module.ValidateImages(ctx, blogcheck.ImageHooks{
		OnFinding: func(f blogcheck.ImageFinding) {
			style := c.err.warning
			if f.Severity == blogcheck.ImageSeverityIssue {
				style = c.err.supplied
			}
			fmt.Fprintln(c.stderr, style.Render(f.String()))
		},
		OnReport: func(r *blogcheck.ImageReport) { report = r },
	})
	if report != nil && !report.Valid() {
		fmt.Fprintf(c.stderr, "%d of %d images failed validation.\n", len(report.Issues), report.Checked)
		return &reportedError{err: err}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Finished validating %d images.\n", report.Checked)
	return nil
}

func (c *cli) runCreatePost(ctx context.Context, args []string) error {
	module, err := c.module()
	if err != nil {
		return err
	}
	name, format, date := args[0], "", ""
	if len(args) > 1 {
		format = args[1]
	}
	if len(args) > 2 {
		date = args[2]
	}

	result, err := module.CreatePost(ctx, name, format, date)
	if err != nil {
		return err
	}
	if result.Created {
		fmt.Fprintf(c.stdout, "Created %s\n", c.out.success.Render(result.PostPath))
	} else {
		fmt.Fprintf(c.stdout, "%s already exists\n", result.PostPath)
	}
	fmt.Fprintf(c.stdout, "Images go in %s\n", result.ImageDir)
	return nil
}

func (c *cli) runStampPost(ctx context.Context, date string) error {
	module, err := c.module()
	if err != nil {
		return err
	}
	result, err := module.StampPost(ctx, date)
	if err != nil {
		return err
	}
	if result.Renamed {
		fmt.Fprintf(c.stdout, "Renamed %s to %s\n", result.From, c.out.success.Render(result.To))
	} else {
		fmt.Fprintf(c.stdout, "%s is already up to date\n", result.From)
	}
	return nil
}

func (c *cli) printError(err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(c.stderr, "Error: %v\n", err)
}
