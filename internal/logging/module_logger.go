package logging

import (
	"context"

	"github.com/goliatone/go-footnotes/pkg/interfaces"
)

const (
	rootModule     = "footnotes"
	resolverModule = "footnotes.resolver"
	richtextModule = "footnotes.richtext"
	storageModule  = "footnotes.storage"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ServiceLogger returns the logger namespace reserved for the footnote service.
func ServiceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rootModule)
}

// ResolverLogger returns the logger namespace reserved for the marker resolver.
func ResolverLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, resolverModule)
}

// RichTextLogger returns the logger namespace reserved for rich text blocks.
func RichTextLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, richtextModule)
}

// StorageLogger returns the logger namespace reserved for repositories.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
