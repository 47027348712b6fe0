// Package dialect decides whether declaration text is written in the
// Java-like or the Kotlin-like dialect.
//
// Detection is evidence based: Kotlin-only constructs are recorded as hints
// and any Kotlin hint wins. Evidence collection never changes the text that
// is later extracted.
package dialect
