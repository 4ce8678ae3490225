// Package database handles database connections and source inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// configure MySQL connections based on the application's configuration.
// A sqlite driver is supported for tests.
//
// # Connect
//
// Connect establishes a bounded connection pool (5 open connections by
// default). The cap is intentional: it is the admission-control limit for
// concurrent store work, so inbound requests beyond pool capacity queue
// for a connection instead of piling load onto MySQL.
//
// # Source Inspection
//
// The registry views are partitioned per region (v_empresas_ativas_rs,
// v_empresas_inativas_sp, ...). TableExists and ListTablesLike let callers
// verify a resolved view name before querying it, which backs the
// reconciliation view resolver's exact/fallback resolution.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	names, err := database.ListTablesLike(db, "v_empresas_inativas_%")
package database
