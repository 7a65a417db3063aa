package xsd

import "github.com/CognitoIQ/wsdlmd/xmltree"

// walk calls fn for each child of root that is in the XML Schema
// namespace, in document order. Elements from other namespaces,
// such as vendor annotations, are skipped.
func walk(root *xmltree.Element, fn func(*xmltree.Element)) {
	for i := 0; i < len(root.Children); i++ {
		if root.Children[i].Name.Space != schemaNS {
			continue
		}
		fn(&root.Children[i])
	}
}

// walkSequences calls fn for the elements of each <sequence> below
// root. Sequences are visited in document order, and for each one fn
// sees the elements whose nearest enclosing sequence it is. Elements
// of a nested sequence are therefore reported after all elements of
// the outer sequence, even when the nested sequence sits in the
// anonymous type of an earlier element.
func walkSequences(root *xmltree.Element, fn func(*xmltree.Element)) {
	for _, seq := range root.SearchFunc(isSequence) {
		var visit func(el *xmltree.Element)
		visit = func(el *xmltree.Element) {
			for i := range el.Children {
				child := &el.Children[i]
				if isSequence(child) {
					continue
				}
				if isElement(child) {
					fn(child)
				}
				visit(child)
			}
		}
		visit(seq)
	}
}
