package jsonschema

// Kind categorizes how a keyword participates in evaluation: whether it can
// fail the instance on its own, whether it only produces annotations,
// whether it recurses into subschemas, or whether it only affects how other
// keywords are interpreted.
type Kind int

const (
	KindAssertion  Kind = iota // Can mark the instance invalid directly (type, enum, maxLength, ...).
	KindAnnotator              // Never fails; contributes annotations consumed by other keywords (title, examples, format, ...).
	KindApplicator             // Applies a subschema to all or part of the instance (allOf, properties, items, ...).
	KindControl                // Affects compilation/identification rather than evaluation (id, $anchor, $vocabulary, ...).
)

// KeywordDef records which draft range and vocabulary a keyword belongs to.
// MinSpec/MaxSpec bound the inclusive range of Specification values under
// which the keyword is recognized; a zero MaxSpec means "still current",
// i.e. valid through DraftSpecification201909.
type KeywordDef struct {
	Name     string
	MinSpec  Specification
	MaxSpec  Specification
	Vocabulary Vocabulary
	Kind     Kind
}

// registry lists every keyword in knownSchemaFields together with the draft
// range it was introduced (and, for the legacy "id" spelling, retired) in,
// grounded in the actual JSON Schema draft history rather than invented
// cutoffs. Keywords introduced no later than Draft-06 carry MinSpec
// DraftSpecification06, the oldest draft this module supports.
var registry = map[string]KeywordDef{
	"$id":              {"$id", DraftSpecification06, DraftSpecification201909, VocabCore, KindControl},
	"id":               {"id", DraftSpecification06, DraftSpecification06, VocabCore, KindControl},
	"$schema":          {"$schema", DraftSpecification06, DraftSpecification201909, VocabCore, KindControl},
	"$ref":             {"$ref", DraftSpecification06, DraftSpecification201909, VocabCore, KindApplicator},
	"$recursiveRef":    {"$recursiveRef", DraftSpecification201909, DraftSpecification201909, VocabCore, KindApplicator},
	"$anchor":          {"$anchor", DraftSpecification201909, DraftSpecification201909, VocabCore, KindControl},
	"$recursiveAnchor": {"$recursiveAnchor", DraftSpecification201909, DraftSpecification201909, VocabCore, KindControl},
	"$vocabulary":      {"$vocabulary", DraftSpecification201909, DraftSpecification201909, VocabCore, KindControl},
	"$defs":            {"$defs", DraftSpecification201909, DraftSpecification201909, VocabCore, KindControl},
	"definitions":      {"definitions", DraftSpecification06, DraftSpecification201909, VocabCore, KindControl},
	"$comment":         {"$comment", DraftSpecification07, DraftSpecification201909, VocabCore, KindAnnotator},

	"allOf":                 {"allOf", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"anyOf":                 {"anyOf", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"oneOf":                 {"oneOf", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"not":                   {"not", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"if":                    {"if", DraftSpecification07, DraftSpecification201909, VocabApplicator, KindApplicator},
	"then":                  {"then", DraftSpecification07, DraftSpecification201909, VocabApplicator, KindApplicator},
	"else":                  {"else", DraftSpecification07, DraftSpecification201909, VocabApplicator, KindApplicator},
	"dependentSchemas":      {"dependentSchemas", DraftSpecification201909, DraftSpecification201909, VocabApplicator, KindApplicator},
	"prefixItems":           {"prefixItems", DraftSpecification201909, DraftSpecification201909, VocabApplicator, KindApplicator},
	"items":                 {"items", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"contains":              {"contains", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"properties":            {"properties", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"patternProperties":     {"patternProperties", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"additionalProperties":  {"additionalProperties", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"propertyNames":         {"propertyNames", DraftSpecification06, DraftSpecification201909, VocabApplicator, KindApplicator},
	"unevaluatedItems":      {"unevaluatedItems", DraftSpecification201909, DraftSpecification201909, VocabApplicator, KindApplicator},
	"unevaluatedProperties": {"unevaluatedProperties", DraftSpecification201909, DraftSpecification201909, VocabApplicator, KindApplicator},

	"type":              {"type", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"enum":              {"enum", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"const":             {"const", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"multipleOf":        {"multipleOf", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"maximum":           {"maximum", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"exclusiveMaximum":  {"exclusiveMaximum", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"minimum":           {"minimum", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"exclusiveMinimum":  {"exclusiveMinimum", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"maxLength":         {"maxLength", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"minLength":         {"minLength", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"pattern":           {"pattern", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"maxItems":          {"maxItems", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"minItems":          {"minItems", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"uniqueItems":       {"uniqueItems", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"maxContains":       {"maxContains", DraftSpecification201909, DraftSpecification201909, VocabValidation, KindAssertion},
	"minContains":       {"minContains", DraftSpecification201909, DraftSpecification201909, VocabValidation, KindAssertion},
	"maxProperties":     {"maxProperties", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"minProperties":     {"minProperties", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"required":          {"required", DraftSpecification06, DraftSpecification201909, VocabValidation, KindAssertion},
	"dependentRequired": {"dependentRequired", DraftSpecification201909, DraftSpecification201909, VocabValidation, KindAssertion},

	"format": {"format", DraftSpecification06, DraftSpecification201909, VocabFormat, KindAnnotator},

	"contentEncoding":  {"contentEncoding", DraftSpecification07, DraftSpecification201909, VocabContent, KindAnnotator},
	"contentMediaType": {"contentMediaType", DraftSpecification07, DraftSpecification201909, VocabContent, KindAnnotator},
	"contentSchema":    {"contentSchema", DraftSpecification201909, DraftSpecification201909, VocabContent, KindApplicator},

	"title":       {"title", DraftSpecification06, DraftSpecification201909, VocabMetaData, KindAnnotator},
	"description": {"description", DraftSpecification06, DraftSpecification201909, VocabMetaData, KindAnnotator},
	"default":     {"default", DraftSpecification06, DraftSpecification201909, VocabMetaData, KindAnnotator},
	"deprecated":  {"deprecated", DraftSpecification201909, DraftSpecification201909, VocabMetaData, KindAnnotator},
	"readOnly":    {"readOnly", DraftSpecification07, DraftSpecification201909, VocabMetaData, KindAnnotator},
	"writeOnly":   {"writeOnly", DraftSpecification07, DraftSpecification201909, VocabMetaData, KindAnnotator},
	"examples":    {"examples", DraftSpecification06, DraftSpecification201909, VocabMetaData, KindAnnotator},
}

// activeKeywords returns the keywords available under the given draft and
// vocabulary set, keyed by name. initializeSchemaCore calls it for every
// schema node and stores the result on that node.
func (c *Compiler) activeKeywords(spec Specification, vocab Vocabulary) map[string]KeywordDef {
	active := make(map[string]KeywordDef, len(registry))
	for name, def := range registry {
		if spec < def.MinSpec || (def.MaxSpec != 0 && spec > def.MaxSpec) {
			continue
		}
		if def.Vocabulary != 0 && vocab&def.Vocabulary == 0 {
			continue
		}
		active[name] = def
	}
	return active
}

// keywordActive reports whether name is enabled for schema s, defaulting to
// enabled when s carries no active set (e.g. a Schema built without going
// through Compiler.Compile, such as in unit tests constructing literals).
func (s *Schema) keywordActive(name string) bool {
	if s == nil || s.active == nil {
		return true
	}
	_, ok := s.active[name]
	return ok
}
