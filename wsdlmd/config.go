package wsdlmd

import (
	"net/http"

	"github.com/CognitoIQ/wsdlmd/category"
)

// A Config contains parameters for the documentation generation
// process. Users may modify the output of the wsdlmd package by
// using a Config's Option method to change these parameters.
type Config struct {
	input      string
	output     string
	logger     Logger
	loglevel   int
	client     *http.Client
	classifier category.Classifier

	// called after each generation in watch mode
	onGenerate func(files []string, err error)
}

// Types implementing the Logger interface can receive progress and
// debug information from the generation process. The Logger
// interface is implemented by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

func (cfg *Config) logf(format string, args ...interface{}) {
	if cfg.logger != nil {
		cfg.logger.Printf(format, args...)
	}
}

func (cfg *Config) verbosef(format string, args ...interface{}) {
	if cfg.loglevel > 0 {
		cfg.logf(format, args...)
	}
}

func (cfg *Config) debugf(format string, args ...interface{}) {
	if cfg.loglevel > 2 {
		cfg.logf(format, args...)
	}
}

// Option applies the provided Options to a Config, modifying the
// generation process. The return value of Option can be used to
// revert the effects of the final parameter.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// An Option modifies generation parameters. The return value of an
// Option can be used to undo its effect.
type Option func(*Config) Option

// DefaultOptions are the default options for documentation
// generation.
var DefaultOptions = []Option{
	Input("docs/Zep_V10.wsdl"),
	OutputDir("docs/wsdl"),
}

// Input sets the WSDL document to read. It may be a file name or an
// http or https URL.
func Input(name string) Option {
	return func(cfg *Config) Option {
		prev := cfg.input
		cfg.input = name
		return Input(prev)
	}
}

// OutputDir sets the directory the Markdown files are written to.
// The directory is created if it does not exist.
func OutputDir(dir string) Option {
	return func(cfg *Config) Option {
		prev := cfg.output
		cfg.output = dir
		return OutputDir(prev)
	}
}

// LogLevel sets the level of verbosity for log messages generated
// during the generation process.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

// LogOutput sets the destination for log messages generated during
// the generation process.
func LogOutput(dest Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = dest
		return LogOutput(prev)
	}
}

// HTTPClient sets the client used to fetch remote WSDL documents.
// If unset, http.DefaultClient is used.
func HTTPClient(client *http.Client) Option {
	return func(cfg *Config) Option {
		prev := cfg.client
		cfg.client = client
		return HTTPClient(prev)
	}
}

// Overrides files declarations whose names match one of the given
// patterns under the associated category, ahead of the built-in
// classification rules. Overrides replaces any previously
// configured overrides.
func Overrides(rules ...category.Override) Option {
	return func(cfg *Config) Option {
		prev := cfg.classifier.Overrides
		cfg.classifier.Overrides = rules
		return Overrides(prev...)
	}
}
