// Package annotation parses the annotation text attached to a field
// declaration into an immutable Set of validation and naming hints.
//
// Annotations are tokenized into fragments (@Qualified.Name(args)) and
// matched on their trailing simple name, so javax.validation, jakarta and
// unqualified spellings behave the same. Anything unrecognized is kept in
// Set.Raw and otherwise ignored.
package annotation
