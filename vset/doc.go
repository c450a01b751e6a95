// Package vset provides fixed-universe vertex sets for the MIS engine.
//
// What:
//
//   - Set is a bit-per-vertex set over a universe of n vertices, where n is
//     the number of problem variables and never changes after construction.
//   - Bit storage and iteration come from github.com/soniakeys/bits; the
//     word-level algebra (union, difference, inclusion) walks the words directly.
//   - Hash returns a 64-bit xxhash fingerprint of the set, used as the
//     structural hash of a vertex-presence pattern.
//
// Semantics:
//
//   - Set has reference semantics: copying a Set value shares its words,
//     exactly like bits.Bits. Use Clone for an independent copy.
//   - Combining sets of different universes, or addressing a vertex outside
//     the universe, is a programmer error and panics.
//
// Complexity:
//
//   - Has/Add/Remove: O(1).
//   - Count, Union, Minus, SubsetOf, Equal, Hash: O(n/64).
//   - Each/Slice: O(n/64 + k) for k members.
package vset
