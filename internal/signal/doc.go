// Package signal extracts structured signal records from raw log lines.
//
// A signal line has the fixed shape
//
//	<dir> <time>,<name>,<id-or-placeholder>,<value>
//
// for example:
//
//	> 12.5,car.stop,4,'True'
//	< 0.250,phone.call,[SIGNUM],'active'
//
// Anything else (blank lines, comments, headers, state dumps, truncated
// lines) is not a signal line. That is an expected outcome, not an error:
// Parse reports it through its boolean result and callers skip the line.
package signal
