// Package printer renders arena snapshots for terminals.
//
// The text format lists each block with its status, offset and payload size
// and draws a bar whose length is proportional to the block's share of the
// arena: ░ for free blocks, █ for used ones. An overview line draws every
// block on a single bar and is followed by totals.
//
// The JSON format writes the snapshot itself, the same document
// snapshot.Export produces.
package printer
