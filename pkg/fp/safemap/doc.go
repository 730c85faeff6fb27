// Package safemap provides a keyed associative container with unique keys,
// insertion-ordered iteration, and Option-returning lookups, in two
// mutation disciplines:
//
//   - Persistent: Set/Delete/Clear return a new instance and leave the
//     receiver observably unchanged. Safe to share across readers.
//   - Mutable: Set/Delete/Clear alter the instance in place and return the
//     same reference for fluent chaining, in the manner of a builder. Not
//     synchronized; concurrent mutation needs external locking.
//
// Both variants share the read surface: Get/Has/Len, restartable
// insertion-ordered Entries/Keys/Values iterators, and eager ForEach.
// Mutable.Persistent and Persistent.Mutable convert between disciplines.
package safemap
