package wsdlmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CognitoIQ/wsdlmd/category"
	"github.com/CognitoIQ/wsdlmd/internal/commandline"
)

// A FileConfig is the decoded form of a YAML configuration file:
//
//	input: docs/Zep_V10.wsdl
//	output: docs/wsdl
//	verbose: true
//	overrides:
//	  - "^RequestHeader -> allgemein"
//
// Empty fields leave the corresponding setting unchanged.
type FileConfig struct {
	Input     string   `yaml:"input"`
	Output    string   `yaml:"output"`
	Verbose   bool     `yaml:"verbose"`
	Overrides []string `yaml:"overrides"`
}

// LoadConfigFile reads a YAML configuration file. Unknown keys are
// rejected; an empty file is a valid, empty configuration.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// Options converts the file's settings into Options.
func (fc *FileConfig) Options() ([]Option, error) {
	var opts []Option
	if fc.Input != "" {
		opts = append(opts, Input(fc.Input))
	}
	if fc.Output != "" {
		opts = append(opts, OutputDir(fc.Output))
	}
	if fc.Verbose {
		opts = append(opts, LogLevel(1))
	}
	if len(fc.Overrides) > 0 {
		var rules commandline.RuleList
		for _, s := range fc.Overrides {
			if err := rules.Set(s); err != nil {
				return nil, err
			}
		}
		overrides, err := parseOverrides(rules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, Overrides(overrides...))
	}
	return opts, nil
}

func parseOverrides(rules commandline.RuleList) ([]category.Override, error) {
	overrides := make([]category.Override, 0, len(rules))
	for _, r := range rules {
		c, err := category.Parse(r.To)
		if err != nil {
			return nil, fmt.Errorf("override %s: %w", r.From, err)
		}
		overrides = append(overrides, category.Override{Pattern: r.From, Category: c})
	}
	return overrides, nil
}
