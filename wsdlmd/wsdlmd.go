// Package wsdlmd generates Markdown documentation from a WSDL
// definition.
//
// The declarations of the document's embedded XML Schema and the
// operations of its port types are filed into business categories
// by name, and each non-empty category is written to its own
// Markdown file, alongside a README.md index:
//
//	var cfg wsdlmd.Config
//	cfg.Option(wsdlmd.DefaultOptions...)
//	cfg.Option(wsdlmd.Input("Zep_V10.wsdl"), wsdlmd.OutputDir("docs/wsdl"))
//	files, err := cfg.Generate()
//
// The package is split into stages that may be used on their own:
// package wsdl loads a document, package category classifies names
// and package markdown renders and writes the files.
package wsdlmd // import "github.com/CognitoIQ/wsdlmd/wsdlmd"

import (
	"errors"
	"strings"

	"github.com/CognitoIQ/wsdlmd/category"
	"github.com/CognitoIQ/wsdlmd/internal/ordered"
	"github.com/CognitoIQ/wsdlmd/markdown"
	"github.com/CognitoIQ/wsdlmd/wsdl"
)

// Generate reads the configured WSDL document and writes its
// documentation to the output directory. It returns the names of
// the files written, in the order they were written.
//
// Errors reading or parsing the input are returned before any file
// is written. A failure while writing leaves the files written so
// far in place.
func (cfg *Config) Generate() ([]string, error) {
	if cfg.input == "" {
		return nil, errors.New("no input document")
	}
	if cfg.output == "" {
		return nil, errors.New("no output directory")
	}
	cfg.logf("reading %s", cfg.input)
	def, err := cfg.load()
	if err != nil {
		return nil, err
	}
	cfg.verbosef("target namespace %s", def.TargetNS)
	cfg.logf("found %d simpleTypes, %d complexTypes, %d operations",
		len(def.SimpleTypes), len(def.ComplexTypes), len(def.Operations))
	cfg.warnUnnamed(def)

	docs := markdown.Group(def, &cfg.classifier)
	ordered.RangeMap(docs, func(c category.Category, d *markdown.Document) {
		cfg.debugf("%s: %d operations, %d complexTypes, %d simpleTypes",
			c, len(d.Operations), len(d.ComplexTypes), len(d.SimpleTypes))
	})

	cfg.logf("writing documentation to %s", cfg.output)
	var log markdown.Logger
	if cfg.logger != nil {
		log = cfg.logger
	}
	files, err := markdown.WriteFiles(cfg.output, docs, log)
	if err != nil {
		return files, err
	}
	cfg.verbosef("wrote %d files to %s", len(files), cfg.output)
	return files, nil
}

func (cfg *Config) load() (*wsdl.Definition, error) {
	if isURL(cfg.input) {
		return wsdl.Fetch(cfg.client, cfg.input)
	}
	return wsdl.LoadFile(cfg.input)
}

func isURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// Declarations without a name are documented under a blank
// heading; point them out so the schema can be fixed.
func (cfg *Config) warnUnnamed(def *wsdl.Definition) {
	for _, t := range def.SimpleTypes {
		if t.Name == "" {
			cfg.logf("warning: simpleType without a name (base %q)", t.Base)
		}
	}
	for _, t := range def.ComplexTypes {
		if t.Name == "" {
			cfg.logf("warning: complexType without a name (%d fields)", len(t.Elements))
		}
	}
	for _, op := range def.Operations {
		if op.Name == "" {
			cfg.logf("warning: operation without a name (input %q)", op.Input)
		}
	}
}
