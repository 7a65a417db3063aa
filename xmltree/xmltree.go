// Package xmltree converts XML documents as a tree of Go structs.
//
// The xmltree package provides routines for accessing an XML document
// as a tree and searching it by element name. Documents that declare
// a non-UTF-8 encoding in their prolog are transcoded while parsing.
package xmltree // import "github.com/CognitoIQ/wsdlmd/xmltree"

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

const recursionLimit = 3000

var errDeepXML = errors.New("xmltree: xml document too deeply nested")

// An Element represents a single element in an XML document. Elements
// may have zero or more children.
type Element struct {
	xml.StartElement
	// Character data appearing inside the element before its first
	// child element, with entities and CDATA sections decoded.
	Content  []byte
	Children []Element
}

// Attr gets the value of the first attribute whose name matches the
// space and local arguments. If space is the empty string, only
// attributes' local names are considered when looking for a match.
// If an attribute could not be found, the empty string is returned.
func (el *Element) Attr(space, local string) string {
	v, _ := el.LookupAttr(space, local)
	return v
}

// LookupAttr is like Attr, but its second return value reports
// whether the attribute is present at all.
func (el *Element) LookupAttr(space, local string) (string, bool) {
	for _, v := range el.StartElement.Attr {
		if v.Name.Local != local {
			continue
		}
		if space == "" || space == v.Name.Space {
			return v.Value, true
		}
	}
	return "", false
}

// Save some typing when scanning xml
type scanner struct {
	*xml.Decoder
	tok xml.Token
	err error
}

func (s *scanner) scan() bool {
	if s.err != nil {
		return false
	}
	s.tok, s.err = s.Token()
	return s.err == nil
}

// Parse builds a tree of Elements by reading an XML document. The
// byte slice passed to Parse is expected to be a valid XML document
// with a single root element.
func Parse(doc []byte) (*Element, error) {
	return ParseReader(bytes.NewReader(doc))
}

// ParseReader is like Parse, but reads the document from r.
func ParseReader(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	scanner := scanner{Decoder: d}
	root := new(Element)

	found := false
	for scanner.scan() {
		if start, ok := scanner.tok.(xml.StartElement); ok {
			root.StartElement = start.Copy()
			found = true
			break
		}
	}
	if scanner.err != nil && scanner.err != io.EOF {
		return nil, scanner.err
	}
	if !found {
		return nil, errors.New("xmltree: document has no root element")
	}
	if err := root.parse(&scanner, 0); err != nil {
		return nil, err
	}
	return root, nil
}

func (el *Element) parse(scanner *scanner, depth int) error {
	if depth > recursionLimit {
		return errDeepXML
	}
	for scanner.scan() {
		switch tok := scanner.tok.(type) {
		case xml.StartElement:
			child := Element{StartElement: tok.Copy()}
			if err := child.parse(scanner, depth+1); err != nil {
				return err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			if len(el.Children) == 0 {
				el.Content = append(el.Content, tok...)
			}
		case xml.EndElement:
			if tok.Name != el.Name {
				return fmt.Errorf("Expecting </%s>, got </%s>", el.Name.Local, tok.Name.Local)
			}
			return nil
		}
	}
	if scanner.err == io.EOF {
		return fmt.Errorf("xmltree: unexpected end of document inside <%s>", el.Name.Local)
	}
	return scanner.err
}

// The walk method calls the walkFunc for each of the Element's children.
func (el *Element) walk(fn walkFunc) {
	for i := 0; i < len(el.Children); i++ {
		fn(&el.Children[i])
	}
}

// walkFunc is the type of the function called for each of an Element's
// children.
type walkFunc func(*Element)

// SearchFunc traverses the Element tree in depth-first order and returns
// a slice of Elements for which the function fn returns true. The
// children of matching Elements are searched as well, so the result
// may contain both an Element and some of its descendants.
func (root *Element) SearchFunc(fn func(*Element) bool) []*Element {
	var results []*Element
	var search func(el *Element)

	search = func(el *Element) {
		if fn(el) {
			results = append(results, el)
		}
		el.walk(search)
	}
	root.walk(search)
	return results
}

// Search searches the Element tree for Elements with an xml tag
// matching the name and xml namespace. If space is the empty string,
// any namespace is matched.
func (root *Element) Search(space, local string) []*Element {
	return root.SearchFunc(isElem(space, local))
}

// FindAll returns the direct children of the Element whose tag
// matches space and local. If space is the empty string, any
// namespace is matched.
func (el *Element) FindAll(space, local string) []*Element {
	var results []*Element
	match := isElem(space, local)
	for i := range el.Children {
		if match(&el.Children[i]) {
			results = append(results, &el.Children[i])
		}
	}
	return results
}

// Find returns the first direct child of the Element whose tag
// matches space and local, or nil.
func (el *Element) Find(space, local string) *Element {
	match := isElem(space, local)
	for i := range el.Children {
		if match(&el.Children[i]) {
			return &el.Children[i]
		}
	}
	return nil
}

// FindDescendant returns the first descendant of the Element, in
// depth-first document order, whose tag matches space and local.
// It returns nil if there is no such element.
func (el *Element) FindDescendant(space, local string) *Element {
	var found *Element
	var search func(*Element) bool

	search = func(e *Element) bool {
		for i := range e.Children {
			c := &e.Children[i]
			if isElem(space, local)(c) {
				found = c
				return true
			}
			if search(c) {
				return true
			}
		}
		return false
	}
	search(el)
	return found
}

func isElem(space, local string) func(*Element) bool {
	return func(el *Element) bool {
		if local != el.Name.Local {
			return false
		}
		return space == "" || space == el.Name.Space
	}
}
