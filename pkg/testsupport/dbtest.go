package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
)

var dbSequence atomic.Int64

// NewSQLiteMemoryDB opens a fresh in-memory SQLite database. Each call gets
// its own named database so parallel tests never share tables.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	name := fmt.Sprintf("file:footnotes_%d?mode=memory&cache=shared&_fk=1", dbSequence.Add(1))
	db, err := sql.Open("sqlite3", name)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
