// Package huey harvests Louisiana statutory laws from the Legislature's
// public document database. It enumerates numeric document identifiers,
// extracts structured fields (catch line, section identifier, sort key,
// body text) from each retrieved page, and persists canonical records
// for downstream use.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package huey
