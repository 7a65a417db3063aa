/*
wsdlmd splits a WSDL service description into Markdown documentation
that is easy to read for people and language models alike.

Usage:

	wsdlmd [-config file] [-o dir] [-r rule] [-v] [-vv] [-watch] [file.wsdl]

wsdlmd reads the XML Schema embedded in the WSDL document, together
with the operations of its port types, and files every simple type,
complex type and operation into one of a fixed set of categories
based on its name. One Markdown file is written per category that
has at least one declaration, named after the category with a
two-digit prefix (01-allgemein.md, 05-projekt.md, ..., 99-sonstige.md),
along with a README.md index linking them. Existing files of the same
name are overwritten.

The input defaults to docs/Zep_V10.wsdl and may also be an http or
https URL. The output directory defaults to docs/wsdl and can be
changed with the -o flag.

The -r flag can be used to file names under a category ahead of the
built-in rules. A rule is a string of the form

	regex -> category

For example, the rule

	^RequestHeader -> allgemein

documents RequestHeaderType with the general types instead of under
"sonstige". The flag may be used more than once; the first matching
rule wins.

The -config flag names a YAML file providing defaults for the input,
output directory, verbosity and override rules:

	input: docs/Zep_V10.wsdl
	output: docs/wsdl
	overrides:
	  - "^RequestHeader -> allgemein"

Flags given on the command line take precedence over the file.

With -watch, wsdlmd keeps running and regenerates the documentation
every time the input file changes.
*/
package main
