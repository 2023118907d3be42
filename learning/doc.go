// Package learning turns explicit feedback into the ranking signals the
// scoring pipeline consumes: per-user learned profiles, the append-only
// interaction log, and the global successful-suggestion counters.
package learning
