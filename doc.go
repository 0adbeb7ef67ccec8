// Package jsonschema implements a high-performance Draft-06, Draft-07 and Draft-2019-09
// validator for Go, providing struct validation (structs are flattened to maps
// by their json tags) and a separated compile/validate workflow.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
