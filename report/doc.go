// SPDX-License-Identifier: MIT

// Package report renders core.Graph views and dijkstra results for humans.
//
// Two renderings are provided:
//
//   - Write* functions emit plain, column-aligned text to any io.Writer and
//     are stable enough to be golden-tested.
//   - *Table functions build bordered tables with lipgloss for terminals.
//
// Nothing here mutates the graph or keeps a reference to it.
package report
