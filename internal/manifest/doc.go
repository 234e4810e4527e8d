// Package manifest provides the YAML schema, parsing, validation and
// building of chain manifests.
//
// A manifest declares the type table, the implicit conversions between
// those types, the step catalog and the members whose chains are checked.
//
// # Schema Overview
//
//	version: "1"
//	settings:
//	  workers: 4
//	  memoize: true
//	types:
//	  - name: Text
//	    kind: reference      # reference | value
//	    go: string           # optional binding to a Go type
//	  - name: Number
//	    kind: value
//	conversions:
//	  - from: Int
//	    to: Number
//	steps:
//	  - id: ParseNumber
//	    signatures:
//	      - input: Text
//	        output: Number
//	        transform: true
//	  - id: NotNull
//	    marker: strip        # strip | passthrough
//	members:
//	  - name: User.Age
//	    type: Text?
//	    chains:
//	      "": [NotNull, ParseNumber]
//	      strict: NotNull, ParseNumber
//
// # Type References
//
// A reference is a type name, optionally followed by "?". On reference kinds
// "?" means a nullable annotation; on value kinds it means a wrapped optional.
//
// # Go Bindings
//
// The optional "go" key binds a manifest type to a Go type ("string",
// "time.Time", "chainflow/store.Email") so that members discovered from Go
// source refer to the same type identity.
package manifest
