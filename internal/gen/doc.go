// Package gen emits zod schema source code from extracted classes and enums.
//
// Generation uses text/template over pre-rendered schema bodies. Output is
// deterministic: enum schemas come first in extraction order, then one
// object schema per class, each optionally followed by an inferred type
// alias.
//
// Refinement patterns, gated by the head of the mapped expression:
//   - string: .regex(), .min()/.max() from size, .email(), .min(1) for not-blank
//   - array: .min()/.max() from size
//   - number: .min()/.max(), .positive()/.negative(), decimal bounds
//   - any: a single trailing .optional()
package gen
