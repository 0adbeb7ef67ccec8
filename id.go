package jsonschema

import "strings"

// validateSchemaIDs walks a compiled schema tree enforcing the Draft-2019-09
// rule that $id must be a URI reference with no fragment (other than the
// empty fragment). Draft-06 and Draft-07 permit a fragment-only $id as a
// plain anchor name, handled separately in initializeSchemaCore, so they are
// not subject to this check.
func validateSchemaIDs(s *Schema) error {
	if s == nil {
		return nil
	}

	if s.specification == DraftSpecification201909 && s.ID != "" {
		if idx := strings.IndexByte(s.ID, '#'); idx != -1 && s.ID[idx+1:] != "" {
			return &FatalError{
				Kind:   KindMalformedSchema,
				Err:    ErrMalformedSchemaID,
				Detail: "$id must not contain a non-empty fragment: " + s.ID,
			}
		}
	}

	for _, def := range s.Defs {
		if err := validateSchemaIDs(def); err != nil {
			return err
		}
	}
	for _, sub := range s.AllOf {
		if err := validateSchemaIDs(sub); err != nil {
			return err
		}
	}
	for _, sub := range s.AnyOf {
		if err := validateSchemaIDs(sub); err != nil {
			return err
		}
	}
	for _, sub := range s.OneOf {
		if err := validateSchemaIDs(sub); err != nil {
			return err
		}
	}
	if err := validateSchemaIDs(s.Not); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.If); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.Then); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.Else); err != nil {
		return err
	}
	for _, sub := range s.DependentSchemas {
		if err := validateSchemaIDs(sub); err != nil {
			return err
		}
	}
	for _, sub := range s.PrefixItems {
		if err := validateSchemaIDs(sub); err != nil {
			return err
		}
	}
	if err := validateSchemaIDs(s.Items); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.Contains); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.AdditionalProperties); err != nil {
		return err
	}
	if s.Properties != nil {
		for _, sub := range *s.Properties {
			if err := validateSchemaIDs(sub); err != nil {
				return err
			}
		}
	}
	if s.PatternProperties != nil {
		for _, sub := range *s.PatternProperties {
			if err := validateSchemaIDs(sub); err != nil {
				return err
			}
		}
	}
	if err := validateSchemaIDs(s.PropertyNames); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.UnevaluatedProperties); err != nil {
		return err
	}
	if err := validateSchemaIDs(s.UnevaluatedItems); err != nil {
		return err
	}
	return validateSchemaIDs(s.ContentSchema)
}
