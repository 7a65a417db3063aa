// Package markdown renders the declarations of a WSDL definition as
// Markdown documentation, one file per category plus an index.
//
// Rendering is deterministic: operations and types are sorted by
// name, files are written in a fixed order, and rendering the same
// definition twice produces byte-identical output.
package markdown // import "github.com/CognitoIQ/wsdlmd/markdown"

import (
	"github.com/CognitoIQ/wsdlmd/category"
	"github.com/CognitoIQ/wsdlmd/wsdl"
	"github.com/CognitoIQ/wsdlmd/xsd"
)

// A Document holds the declarations filed under one category.
// Within each slice, declarations keep the order in which they
// appear in the source document; sorting happens at render time.
type Document struct {
	Category     category.Category
	Operations   []wsdl.Operation
	ComplexTypes []xsd.ComplexType
	SimpleTypes  []xsd.SimpleType
}

// Len returns the number of declarations in d.
func (d *Document) Len() int {
	return len(d.Operations) + len(d.ComplexTypes) + len(d.SimpleTypes)
}

// A Classifier decides the category of a declaration name. It is
// implemented by *category.Classifier.
type Classifier interface {
	Classify(name string) category.Category
}

// Group files every declaration of def under its category. Only
// categories with at least one declaration are present in the
// result. If c is nil, category.Classify is used.
func Group(def *wsdl.Definition, c Classifier) map[category.Category]*Document {
	classify := category.Classify
	if c != nil {
		classify = c.Classify
	}
	docs := make(map[category.Category]*Document)
	doc := func(name string) *Document {
		cat := classify(name)
		d, ok := docs[cat]
		if !ok {
			d = &Document{Category: cat}
			docs[cat] = d
		}
		return d
	}
	for _, t := range def.SimpleTypes {
		d := doc(t.Name)
		d.SimpleTypes = append(d.SimpleTypes, t)
	}
	for _, t := range def.ComplexTypes {
		d := doc(t.Name)
		d.ComplexTypes = append(d.ComplexTypes, t)
	}
	for _, op := range def.Operations {
		d := doc(op.Name)
		d.Operations = append(d.Operations, op)
	}
	return docs
}
