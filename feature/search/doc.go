// Package search serves the main multi-filter company search used by the
// front end. Queries run against the per-region registry views, joined to
// the classification, dictionary and geography dimensions plus an
// aggregated debt subquery, under a hard wall-clock timeout and row cap.
package search
