package jsonschema

import "strings"

// Specification identifies which JSON Schema draft a document is evaluated under.
// Ordinal comparison (Specification values increase from older to newer drafts) lets keyword
// gating logic express "available from Draft-07 onward" as a simple >= check.
type Specification int

const (
	UnknownSpecification Specification = iota
	DraftSpecification06
	DraftSpecification07
	DraftSpecification201909
)

// DefaultSpecification is used when a schema declares no $schema and the
// caller supplies no explicit override.
const DefaultSpecification = DraftSpecification201909

// specByURI maps every canonical and commonly-seen $schema URI to the
// Specification it identifies. Both the https and http forms are accepted
// since older schemas in the wild still use http.
var specByURI = map[string]Specification{
	"http://json-schema.org/draft-06/schema#":       DraftSpecification06,
	"http://json-schema.org/draft-06/schema":        DraftSpecification06,
	"https://json-schema.org/draft-06/schema#":      DraftSpecification06,
	"https://json-schema.org/draft-06/schema":       DraftSpecification06,
	"http://json-schema.org/draft-07/schema#":       DraftSpecification07,
	"http://json-schema.org/draft-07/schema":        DraftSpecification07,
	"https://json-schema.org/draft-07/schema#":      DraftSpecification07,
	"https://json-schema.org/draft-07/schema":       DraftSpecification07,
	"https://json-schema.org/draft/2019-09/schema":  DraftSpecification201909,
	"https://json-schema.org/draft/2019-09/schema#": DraftSpecification201909,
}

// String renders the Specification the way it would appear in a $schema URI.
func (s Specification) String() string {
	switch s {
	case DraftSpecification06:
		return "draft-06"
	case DraftSpecification07:
		return "draft-07"
	case DraftSpecification201909:
		return "draft/2019-09"
	default:
		return "unknown"
	}
}

// resolveSpecification looks up the Specification for a $schema URI, tolerating
// a missing trailing fragment marker.
func resolveSpecification(schemaURI string) (Specification, bool) {
	if schemaURI == "" {
		return UnknownSpecification, false
	}
	if spec, ok := specByURI[schemaURI]; ok {
		return spec, true
	}
	trimmed := strings.TrimSuffix(schemaURI, "#")
	spec, ok := specByURI[trimmed]
	return spec, ok
}

// detectSpecification resolves the active Specification for a schema resource
// root following the precedence spec.md requires: an explicit compiler
// override wins, then the document's own $schema, then the compiler's
// configured default.
func detectSpecification(compiler *Compiler, schemaURI string) (Specification, error) {
	if compiler != nil && compiler.Specification != UnknownSpecification {
		return compiler.Specification, nil
	}
	if schemaURI != "" {
		spec, ok := resolveSpecification(schemaURI)
		if !ok {
			return UnknownSpecification, &FatalError{Kind: KindUnknownSpecification, Err: ErrUnknownSpecification, Detail: schemaURI}
		}
		return spec, nil
	}
	if compiler != nil && compiler.DefaultSpecification != UnknownSpecification {
		return compiler.DefaultSpecification, nil
	}
	return DefaultSpecification, nil
}
