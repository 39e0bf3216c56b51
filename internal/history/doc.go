// Package history persists a record of generated projects in SQLite.
//
// Each generation run stores its run id, the written project path, the asset
// prefix, and entry/warning counts so `rigforge history` can show what was
// produced and when. The database is an audit trail, not working state:
// schema changes bump the version in schema.go and users clear the database
// to adopt the new schema.
package history
