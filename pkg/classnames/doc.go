// Package classnames builds class attribute values for shadcn-style
// components.
//
// Cn accepts any mix of strings, nested slices, nil, booleans and Inputs:
//
//	classnames.Cn(
//		"inline-flex items-center rounded-md px-4 py-2",
//		classnames.When(disabled, "opacity-50"),
//		userClasses,
//	)
//
// Strings are split on whitespace, slices are flattened depth first, nil and
// booleans are skipped. Byte slices are read as strings. Nesting deeper than
// MaxDepth, and slices that contain themselves, contribute nothing. The
// resulting tokens are merged with twmerge so the
// caller's utilities win over the component defaults.
package classnames
