package db

import (
	"database/sql"
	"fmt"
)

// InitDB opens the sqlite file with foreign keys turned on via the DSN and
// reads the pragma back to make sure the driver honored it. Membership and
// vote tables rely on cascading deletes, so a silently-off pragma would
// corrupt them over time.
func InitDB(databaseName string) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", databaseName+"?_foreign_keys=1")
	if err != nil {
		return nil, err
	}

	var enabled int
	if err := database.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		database.Close()
		return nil, fmt.Errorf("error checking foreign keys: %v", err)
	}
	if enabled != 1 {
		database.Close()
		return nil, fmt.Errorf("foreign keys are not enabled")
	}

	return database, nil
}

func CloseDB(databaseInstance *sql.DB) {
	if databaseInstance != nil {
		databaseInstance.Close()
		fmt.Println("Database connection closed")
	}
}
