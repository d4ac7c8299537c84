// Package storage persists billing schedules for the example application.
//
// The ScheduleStore supports multiple database adapters (pgx, sql.DB, sqlx)
// behind a small adapter interface, builds its SQL with goqu and maps the
// calendrical columns through the sqlconv wrappers, so every value read from
// the database passes the validating chrono factories.
package storage
