package booking

import "github.com/VitorMachadoSilva/ReservationSystem/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces for database access.
// Repositories work the same against *sql.DB, *dbmetrics.DB or an open tx.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
