// Package driving defines the ports through which callers drive the
// application core. The ingestion pipeline (or the CLI adapter) consumes
// these interfaces; the core services implement them.
package driving
