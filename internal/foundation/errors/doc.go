// Package errors provides the classified error primitives used across sitenav.
//
// Every failure that reaches the CLI is a ClassifiedError: it carries a broad
// category (config, validation, filesystem, ...), a severity and a small
// context map. Configuration problems record the offending field path under
// the "field" key so the user can find it in the YAML file.
//
// Example usage:
//
//	err := errors.ValidationError("sidebar group has no items").
//		WithField("themeConfig.sidebar[1].items").
//		Build()
package errors
