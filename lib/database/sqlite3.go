package database

import (
	_ "embed"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema []byte

func connectSqlite3(databaseFile string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", databaseFile)
	if err != nil {
		return nil, errors.Wrapf(err, "file: %s", databaseFile)
	}
	return db, nil
}

func (d *Database) InitTables() error {
	db, err := connectSqlite3(d.databaseFile)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(string(schema)); err != nil {
		return errors.Wrapf(err, "file: %s", d.databaseFile)
	}

	return nil
}
