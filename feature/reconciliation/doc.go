// Package reconciliation implements batch CNPJ reconciliation against the
// per-region registry views.
//
// Callers submit large lists of externally sourced rows (spreadsheet
// imports), each carrying a raw CNPJ plus arbitrary extra columns. The
// engine normalizes and deduplicates the identifiers, resolves the correct
// per-region view, looks the identifiers up in bounded batches and merges
// the authoritative registry fields back onto the caller rows.
//
// # Pipeline
//
//  1. Normalize every identifier with the lenient 14-digit policy; rows
//     that fail normalization are silently dropped from the work set.
//  2. Deduplicate by canonical identifier, last row wins.
//  3. Resolve the physical view name for (partition, UF), with a
//     case/suffix fallback when the exact name is absent.
//  4. Query in chunks of 400; any chunk failure aborts the whole request.
//  5. Merge registry fields over caller rows (registry fields win) and
//     report totals.
//
// Reports can optionally be archived to object storage for audit.
//
// # HTTP Endpoints
//
//   - POST /importacao/cnpjs : reconcile an imported identifier list
package reconciliation
