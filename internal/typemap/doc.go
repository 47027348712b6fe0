// Package typemap resolves declared type text into a zod schema expression.
//
// Mapping is recursive: arrays, list/set generics and map generics wrap the
// mapping of their element types, and leaves resolve to scalars, dates,
// enum schemas, lazy class references or z.unknown(). Diagnostics raised
// anywhere in the recursion are returned unlocated; the emitter attaches the
// class and field afterwards.
package typemap
