// Package align compares two signal logs position by position.
//
// The aligner is greedy and lookahead-free. It walks the left log line by
// line and, for every signal it finds there, pulls the next signal from the
// right log through a forward-only cursor. The two records are compared
// under a Policy; a difference produces a Report naming both lines. Once the
// right log runs out, every further left signal is reported alone, and once
// the left log runs out every remaining right signal is reported alone.
//
// Lines that are not signal lines are consumed silently on either side and
// never affect report numbering. Nothing is ever re-compared and the right
// cursor never moves backwards, so the two logs are assumed to be mostly in
// lockstep. This is not an edit-distance diff.
package align
