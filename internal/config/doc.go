// Package config loads the csvpaths command configuration from YAML or TOML.
//
// # Schema
//
//	strict: false          # fail on any warning diagnostic
//	max_suggestions: 3     # "did you mean" alternatives per diagnostic
//	output:
//	  format: json         # json | yaml (decode output)
//	  indent: 2            # spaces per nesting level
//	  compact: false       # single-line JSON
//	log:
//	  level: info          # debug | info | warn | error
//	  format: text         # text | json
//
// The same keys are accepted in TOML, with output and log as tables.
// Unknown keys are rejected.
package config
