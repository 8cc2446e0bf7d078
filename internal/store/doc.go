// Package store provides SQLite-backed caching of bridge payloads.
//
// The cache keys each R call by function name plus an argument digest and
// keeps the raw JSON payload, so a repeated CLI invocation serves the same
// table without spawning R again. CachedRuntime layers this behind the
// domain.Runtime interface; the library facade does not use it.
package store
