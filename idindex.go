package jsonschema

import "strconv"

// IDRecord formalizes the identity bookkeeping the teacher scatters across
// Schema.uri/baseURI/parent into one explicit record per schema node
// encountered during a Compile call: its resolved URI, its path from the
// document root, a back pointer to the Schema it describes, the raw $id/id
// value as written in the document, its base URI, and the id/URI of the
// resource root it belongs to.
type IDRecord struct {
	URI     string
	Path    string
	Schema  *Schema
	Raw     string
	Base    string
	RootID  string
	RootURI string
}

// buildIDIndex walks a freshly compiled schema tree and records one
// IDRecord per node, keyed by resolved URI when present and by root-relative
// path otherwise; a node with neither (a root without a URI) is not
// recorded. It runs once per Compile
// call, after initializeSchemaCore has resolved every node's uri/baseURI,
// mirroring id.go's validateSchemaIDs traversal.
func buildIDIndex(ids map[string]*IDRecord, root *Schema) {
	rootID := root.ID
	if rootID == "" {
		rootID = root.LegacyID
	}
	indexSchemaNode(ids, root, "", rootID, root.GetSchemaURI())
}

func indexSchemaNode(ids map[string]*IDRecord, s *Schema, path, rootID, rootURI string) {
	if s == nil {
		return
	}

	raw := s.ID
	if raw == "" {
		raw = s.LegacyID
	}

	record := &IDRecord{
		URI:     s.uri,
		Path:    path,
		Schema:  s,
		Raw:     raw,
		Base:    s.baseURI,
		RootID:  rootID,
		RootURI: rootURI,
	}

	key := s.uri
	if key == "" {
		key = path
	}
	if key != "" {
		ids[key] = record
	}

	for name, sub := range s.Defs {
		indexSchemaNode(ids, sub, path+"/$defs/"+name, rootID, rootURI)
	}
	for i, sub := range s.AllOf {
		indexSchemaNode(ids, sub, path+"/allOf/"+strconv.Itoa(i), rootID, rootURI)
	}
	for i, sub := range s.AnyOf {
		indexSchemaNode(ids, sub, path+"/anyOf/"+strconv.Itoa(i), rootID, rootURI)
	}
	for i, sub := range s.OneOf {
		indexSchemaNode(ids, sub, path+"/oneOf/"+strconv.Itoa(i), rootID, rootURI)
	}
	indexSchemaNode(ids, s.Not, path+"/not", rootID, rootURI)
	indexSchemaNode(ids, s.If, path+"/if", rootID, rootURI)
	indexSchemaNode(ids, s.Then, path+"/then", rootID, rootURI)
	indexSchemaNode(ids, s.Else, path+"/else", rootID, rootURI)
	for name, sub := range s.DependentSchemas {
		indexSchemaNode(ids, sub, path+"/dependentSchemas/"+name, rootID, rootURI)
	}
	for i, sub := range s.PrefixItems {
		indexSchemaNode(ids, sub, path+"/prefixItems/"+strconv.Itoa(i), rootID, rootURI)
	}
	indexSchemaNode(ids, s.Items, path+"/items", rootID, rootURI)
	indexSchemaNode(ids, s.Contains, path+"/contains", rootID, rootURI)
	indexSchemaNode(ids, s.AdditionalProperties, path+"/additionalProperties", rootID, rootURI)
	if s.Properties != nil {
		for name, sub := range *s.Properties {
			indexSchemaNode(ids, sub, path+"/properties/"+name, rootID, rootURI)
		}
	}
	if s.PatternProperties != nil {
		for pattern, sub := range *s.PatternProperties {
			indexSchemaNode(ids, sub, path+"/patternProperties/"+pattern, rootID, rootURI)
		}
	}
	indexSchemaNode(ids, s.PropertyNames, path+"/propertyNames", rootID, rootURI)
	indexSchemaNode(ids, s.UnevaluatedProperties, path+"/unevaluatedProperties", rootID, rootURI)
	indexSchemaNode(ids, s.UnevaluatedItems, path+"/unevaluatedItems", rootID, rootURI)
	indexSchemaNode(ids, s.ContentSchema, path+"/contentSchema", rootID, rootURI)
}
