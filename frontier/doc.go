// Package frontier provides the pending-candidate queues used by the
// shortest-path engine.
//
// A Frontier holds (city, tentative distance) candidates and always yields
// the smallest distance first. Duplicate candidates for the same city are
// kept; the engine discards stale ones with its settle-once guard.
//
// Two implementations are provided:
//
//   - SortedStack: a stack kept in ascending order, minimum on top.
//     Insert moves every strictly smaller entry to a holding stack, pushes the
//     new entry and restores the held entries. Insert costs O(k) where k is
//     the number of entries smaller than the new one; RemoveMin is O(1).
//   - Heap: a container/heap min-heap. Insert and RemoveMin are O(log n).
//
// Both guarantee minimum-first extraction; the order among equal distances
// is unspecified.
package frontier
