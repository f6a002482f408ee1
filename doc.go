// Package algotrace is a pair of trace-producing algorithm engines for
// teaching: every intermediate step is recorded so a player can replay it.
//
// What is inside?
//
//	karatsuba/     Karatsuba multiplication of decimal strings with the full
//	               recursion tree (pre-order arena, layout, levels, leaves)
//	closestpair/   incremental x-sweep for the closest pair of points with a
//	               snapshot at every arrival, comparison and improvement
//	playback/      generic frame cursor with timer-driven Play/Pause and Seek
//	input/         operand normalization, upload parsing, random inputs and
//	               sample-file generation
//	converters/    JSON documents and Mermaid flowcharts for renderers
//
// Both engines are pure and deterministic: the same input always produces
// the same result and the same trace. Neither depends on the other.
//
// The algotrace command (cmd/algotrace) prints, exports and replays traces
// and serves them over HTTP.
//
//	go install github.com/katalvlaran/algotrace/cmd/algotrace@latest
package algotrace
