// Package collections defines the container capability contracts used by the
// station routing packages, together with small default implementations.
//
// The routing code never depends on a concrete container: the graph, the
// engine and the projector only talk to these interfaces, so a caller may
// plug in any implementation that honors the contract.
//
// Contracts:
//
//   - Map[K, V]  – key-unique mapping: Get, Put, ContainsKey, Keys, Values, Len.
//   - List[T]    – ordered dynamic sequence: Append, Len, Get, Contains.
//   - Stack[T]   – LIFO: Push, Pop, Top, IsEmpty, Len.
//   - Set[T]     – membership set: Add, Contains, Len.
//
// Default implementations:
//
//   - HashMap   – Go map plus an insertion-ordered key slice (deterministic enumeration).
//   - ArrayList – slice-backed sequence.
//   - ArrayStack – slice-backed stack; top is the last element.
//   - HashSet   – map[T]struct{}.
//
// None of the default implementations are safe for concurrent mutation.
package collections
