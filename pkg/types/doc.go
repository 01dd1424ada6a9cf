// Package types defines the Collection and Store interfaces, the Record and
// Schema data model, configuration, and the standard errors shared by the
// islab admin client.
//
// A Collection is the remote side of one entity list (fetched, created,
// updated and deleted through the API server). A Schema describes the
// fields of that entity; list management and validation are derived from it.
package types
