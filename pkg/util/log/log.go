// Package log holds the module's ambient logger, following the same
// package-level-Logger convention as github.com/grafana/tempo's
// pkg/util/log: callers that embed this module may reassign Logger before
// using either core; everything in this module logs through it rather
// than constructing loggers of its own.
package log

import (
	"os"

	"github.com/go-kit/log"
)

// Logger is the module-wide logger. It defaults to a minimal logfmt
// logger writing to stderr; an embedding application is expected to
// replace it (e.g. with a level-filtered, context-aware logger) before
// using the arena or the trace reader, the same way tempo's modules
// replace pkg/util/log.Logger during startup. Setting up sinks, levels,
// or destinations beyond this default is the embedder's job — it is not
// something either core does for itself.
var Logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
