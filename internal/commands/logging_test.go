package commands

import (
	"testing"

	"github.com/goliatone/go-blogcheck/pkg/interfaces"
)

type recordingProvider struct {
	names []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return nil
}

func TestCommandLoggerScopesModule(t *testing.T) {
	provider := &recordingProvider{}
	if logger := CommandLogger(provider, " posts "); logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if len(provider.names) != 1 || provider.names[0] != "blogcheck.commands.posts" {
		t.Fatalf("unexpected logger names %v", provider.names)
	}

	CommandLogger(provider, "")
	if provider.names[1] != "blogcheck.commands.core" {
		t.Fatalf("expected core fallback, got %v", provider.names)
	}
}
