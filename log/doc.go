// SPDX-License-Identifier: MIT

// Package log provides the small leveled logging interface used across graphz.
//
// The core packages never print. They accept a Logger through options
// (core.WithLogger, dijkstra.WithLogger) and default to NoOpLogger, so a
// library user pays nothing unless they opt in.
//
// Two adapters are provided:
//
//   - GologLogger wraps a *golog.Logger (github.com/kataras/golog). This is
//     the default backend of the graphz CLI.
//   - ZapLogger wraps a *zap.Logger (go.uber.org/zap) through its sugared
//     API, for hosts that already run zap.
//
// Example:
//
//	logger := log.NewGologLogger(golog.New())
//	logger.SetLevel(log.LogLevelDebug)
//	g, _ := core.NewGraph[int, float64](nil, core.WithLogger(logger), core.WithVerbose())
package log
