// Package property defines the polarity-tagged property claims attached to
// taxonomy nodes and the matching algebra used to test them.
//
// A claim is one of three forms:
//
//	+tag / tag   positive, inherited by descendants
//	-tag         negative, inherited by descendants, blocks positive matches
//	.tag         local, counts as positive on the declaring node only
//
// The prefix convention is interpreted exactly once, by Parse, when data enters
// the system. Everything past that point works with the Property value.
package property
