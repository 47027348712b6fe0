// Package model holds the intermediate representation extracted from
// declaration text: classes with their fields, enums with their values, and
// the table of known symbol names used during type mapping.
package model
