package jsonschema

import "sort"

// Locator pins a single evaluation outcome to the three coordinates that
// identify it: the evaluation path taken to reach it, the instance location
// it judged, and the absolute URI of the keyword responsible. It is a thin
// projection of the fields EvaluationResult already carries on every node.
type Locator struct {
	EvaluationPath          string
	AbsoluteKeywordLocation string
	InstanceLocation        string
}

// locate builds the Locator for an EvaluationResult node. The absolute
// keyword location is the node's own SchemaLocation, which evaluators set to
// the full URI of the keyword in the schema it lives in (so a $ref'd
// subschema reports the URI it actually lives at), or the node's schema URI
// when none was set.
func (e *EvaluationResult) locate() Locator {
	loc := Locator{
		EvaluationPath:   e.EvaluationPath,
		InstanceLocation: e.InstanceLocation,
	}
	if e.SchemaLocation != "" {
		loc.AbsoluteKeywordLocation = e.SchemaLocation
	} else if e.schema != nil {
		loc.AbsoluteKeywordLocation = e.schema.GetSchemaLocation("")
	}
	return loc
}

// BasicOutputError is one failed keyword in the basic output format.
type BasicOutputError struct {
	KeywordLocation         string `json:"keywordLocation"`
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation"`
	InstanceLocation        string `json:"instanceLocation"`
	Valid                   bool   `json:"valid"`
	Message                 string `json:"message,omitempty"`
}

// BasicOutput is the flat, errors-only wire format: a single validity flag
// plus one entry per failed keyword, nodes depth-first and the keywords of
// one node in name order.
type BasicOutput struct {
	Valid  bool               `json:"valid"`
	Errors []BasicOutputError `json:"errors,omitempty"`
}

// ToBasic flattens the hierarchical EvaluationResult into the basic output
// format. It walks Details depth-first, in the order every evaluate*
// helper already appends them, and emits one BasicOutputError per keyword
// recorded in a node's own Errors map.
func (e *EvaluationResult) ToBasic() *BasicOutput {
	out := &BasicOutput{Valid: e.Valid}
	e.collectBasicErrors(&out.Errors)
	return out
}

func (e *EvaluationResult) collectBasicErrors(errs *[]BasicOutputError) {
	loc := e.locate()

	for _, keyword := range sortedErrorKeywords(e.Errors) {
		err := e.Errors[keyword]
		*errs = append(*errs, BasicOutputError{
			KeywordLocation:         joinEvaluationPath(loc.EvaluationPath, keyword),
			AbsoluteKeywordLocation: loc.AbsoluteKeywordLocation,
			InstanceLocation:        loc.InstanceLocation,
			Valid:                   false,
			Message:                 err.Error(),
		})
	}

	for _, detail := range e.Details {
		detail.collectBasicErrors(errs)
	}
}

// joinEvaluationPath appends a keyword to an evaluation path the same way
// every evaluate* helper already builds sub-paths (SetEvaluationPath calls
// with a leading "/").
func joinEvaluationPath(path, keyword string) string {
	if path == "" {
		return "/" + keyword
	}
	return path + "/" + keyword
}

// sortedErrorKeywords returns the keys of an Errors map in a deterministic
// order so ToBasic is idempotent across calls on the same result.
func sortedErrorKeywords(errs map[string]*EvaluationError) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
