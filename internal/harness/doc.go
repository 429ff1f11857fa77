// Package harness runs comparison scenarios described in YAML.
//
// A scenario holds two small logs, the comparison policy and what the run
// should produce. The harness compares the logs exactly as the command line
// does, renders the text output, and checks the expectations.
//
// # Scenario Format
//
//	name: payload_differs
//	description: "Same signal, different value"
//	policy:
//	  ignore_time: false
//	  time_deviation: 0.1 # optional
//	left:
//	  name: file1.log
//	  lines:
//	    - "> 1.0,Foo,1,'a'"
//	right:
//	  name: file2.log
//	  file: logs/file2.log # instead of lines, relative to the scenario
//	expect:
//	  reports: 1
//	  matched: 0
//	  signals: 1
//	  blocks:
//	    - signal: 1
//	      lines:
//	        - "file1.log:1: > 1.0,Foo,1,'a'"
//	        - "file2.log:1: > 1.0,Foo,1,'b'"
//	  output: |
//	    Signal 1
//	    file1.log:1: > 1.0,Foo,1,'a'
//	    file2.log:1: > 1.0,Foo,1,'b'
//
// Every expect field is optional but at least one must be present.
// Decoding is strict: unknown fields are rejected.
//
// # Golden Files
//
// RunWithGolden compares the rendered text output with
// testdata/golden/{name}.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
