package wsdlmd

import (
	"context"
	"errors"
	"flag"

	"github.com/CognitoIQ/wsdlmd/internal/commandline"
)

// ErrUsage is returned by GenCLI when the command line is invalid.
var ErrUsage = errors.New("Usage: wsdlmd [-config file] [-o dir] [-r rule] [-v] [-watch] [file.wsdl]")

// GenCLI generates documentation as directed by a list of
// command-line arguments. It is intended to be called from the main
// function of any command-line interfaces to the wsdlmd package.
// Settings from a -config file are applied first, so flags given on
// the command line take precedence. In -watch mode GenCLI returns
// only once ctx is cancelled.
func (cfg *Config) GenCLI(ctx context.Context, arguments ...string) error {
	var (
		rules   commandline.RuleList
		fs      = flag.NewFlagSet("wsdlmd", flag.ContinueOnError)
		config  = fs.String("config", "", "YAML configuration file")
		output  = fs.String("o", "", "directory to write the Markdown files to")
		verbose = fs.Bool("v", false, "print verbose output")
		debug   = fs.Bool("vv", false, "print debug output")
		watch   = fs.Bool("watch", false, "regenerate whenever the input file changes")
	)
	fs.Var(&rules, "r", "classification override 'regex -> category' (can be used multiple times)")
	if err := fs.Parse(arguments); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return ErrUsage
	}
	if fs.NArg() > 1 {
		return ErrUsage
	}

	if *config != "" {
		fc, err := LoadConfigFile(*config)
		if err != nil {
			return err
		}
		opts, err := fc.Options()
		if err != nil {
			return err
		}
		cfg.Option(opts...)
	}

	if *debug {
		cfg.Option(LogLevel(5))
	} else if *verbose {
		cfg.Option(LogLevel(1))
	}
	if fs.NArg() == 1 {
		cfg.Option(Input(fs.Arg(0)))
	}
	if *output != "" {
		cfg.Option(OutputDir(*output))
	}
	if len(rules) > 0 {
		overrides, err := parseOverrides(rules)
		if err != nil {
			return err
		}
		cfg.Option(Overrides(overrides...))
	}

	if *watch {
		return cfg.Watch(ctx)
	}
	_, err := cfg.Generate()
	return err
}
