package commands

import (
	"strings"

	"github.com/goliatone/go-blogcheck/internal/logging"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
)

const commandModuleRoot = "blogcheck.commands"

// CommandLogger returns a module-scoped logger for command handlers with
// consistent component fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
