package jsonschema

// Vocabulary is a bitset of the Draft-2019-09 vocabularies a schema resource
// declares active via "$vocabulary". Draft-06 and Draft-07 predate the
// vocabulary mechanism entirely, so resources under those drafts always
// resolve to AllVocabularies.
type Vocabulary uint8

const (
	VocabCore Vocabulary = 1 << iota
	VocabApplicator
	VocabValidation
	VocabMetaData
	VocabFormat
	VocabContent
)

// AllVocabularies is every vocabulary bit set, the default when a resource
// declares no "$vocabulary" of its own.
const AllVocabularies = VocabCore | VocabApplicator | VocabValidation | VocabMetaData | VocabFormat | VocabContent

// vocabularyURIs maps each Draft-2019-09 vocabulary URI to the bit it
// controls. Only the six vocabularies meta-schema.json declares are
// recognized; an unrecognized URI in "$vocabulary" contributes no bits but
// is not itself an error (a $schema-conformant implementation may simply not
// know about it).
var vocabularyURIs = map[string]Vocabulary{
	"https://json-schema.org/draft/2019-09/vocab/core":       VocabCore,
	"https://json-schema.org/draft/2019-09/vocab/applicator": VocabApplicator,
	"https://json-schema.org/draft/2019-09/vocab/validation": VocabValidation,
	"https://json-schema.org/draft/2019-09/vocab/meta-data":  VocabMetaData,
	"https://json-schema.org/draft/2019-09/vocab/format":     VocabFormat,
	"https://json-schema.org/draft/2019-09/vocab/content":    VocabContent,
}

// resolveVocabularySet turns a decoded "$vocabulary" map (URI -> required)
// into the Vocabulary bitset it enables. A vocabulary listed with a false
// value is treated as disabled and contributes no bits.
func resolveVocabularySet(vocab map[string]bool) Vocabulary {
	var v Vocabulary
	for uri, enabled := range vocab {
		if !enabled {
			continue
		}
		if bit, ok := vocabularyURIs[uri]; ok {
			v |= bit
		}
	}
	return v
}
