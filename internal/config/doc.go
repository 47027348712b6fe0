// Package config loads converter settings from YAML or TOML files.
//
// Example YAML:
//
//	dialect: kotlin
//	diagnostics: json
//	jobs: 4
//	max_depth: 32
//	type_overrides:
//	  UUID: z.string().uuid()
//	output:
//	  header: "import { z } from 'zod'"
//	  comments: false
//	  type_aliases: true
//	  indent: "    "
package config
