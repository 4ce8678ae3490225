// Package debt verifies outstanding public-debt enrollment for batches of
// company identifiers. Identifiers are normalized to the strict fourteen
// digit form, queried against the divida_ativa table in chunks and the
// per-company enrollments collapsed into a single summary row each.
package debt
