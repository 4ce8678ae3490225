// Package catalog serves the lookup lists backing the front end combos:
// municipalities, CNAE codes, registration statuses and the market
// sector/segment tree. Results are dictionary data that changes rarely,
// so every list is served through a TTL cache with singleflight guarding
// rebuilds.
package catalog
