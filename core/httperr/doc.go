// Package httperr defines the error taxonomy shared by all features and
// its mapping onto HTTP responses.
//
// Three categories exist:
//
//   - Validation: bad or missing required input (400)
//   - NotFound: an expected physical source (table/view) is absent (404)
//   - Dependency: the backing store call failed or timed out (500)
//
// Store-level failures are caught once at the handler boundary and turned
// into a structured JSON body with "mensagem" and optional "detalhe"
// fields, matching the wire contract of the original API.
package httperr
