package database

import (
	"context"

	"github.com/cxxxr/chainsort/lib/primitive"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type Database struct {
	databaseFile string
	db           *sqlx.DB
	tx           *sqlx.Tx
	prepareStatements
}

type prepareStatements struct {
	insertChain *sqlx.NamedStmt

	resolveChainById    *sqlx.Stmt
	resolveChainByName  *sqlx.Stmt
	resolveAllChains    *sqlx.Stmt
	resolveSortedChains *sqlx.Stmt

	updateChainBody *sqlx.Stmt
}

func New(databaseFile string) *Database {
	return &Database{databaseFile: databaseFile}
}

func (d *Database) Connect() error {
	db, err := connectSqlite3(d.databaseFile)
	if err != nil {
		return err
	}
	d.db = db

	tx, err := db.Beginx()
	if err != nil {
		return errors.WithStack(err)
	}
	d.tx = tx

	if err := d.initializePrepareStatements(); err != nil {
		return err
	}

	return nil
}

func (d *Database) Close() error {
	err := d.tx.Commit()
	if err != nil {
		return errors.WithStack(err)
	}
	return d.db.Close()
}

const selectChain = `SELECT id, name, source, length, sorted, body FROM chain`

func (d *Database) initializePrepareStatements() error {
	ctx := context.Background()

	namedStmt, err := d.tx.PrepareNamedContext(
		ctx,
		`INSERT INTO chain (id, name, source, length, sorted, body)
VALUES (:id, :name, :source, :length, :sorted, :body)`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.insertChain = namedStmt

	stmt, err := d.tx.PreparexContext(ctx, selectChain+` WHERE id = ? LIMIT 1`)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveChainById = stmt

	stmt, err = d.tx.PreparexContext(ctx, selectChain+` WHERE name = ? LIMIT 1`)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveChainByName = stmt

	stmt, err = d.tx.PreparexContext(ctx, selectChain+` ORDER BY name`)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveAllChains = stmt

	stmt, err = d.tx.PreparexContext(ctx, selectChain+` WHERE sorted = ? ORDER BY name`)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveSortedChains = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`UPDATE chain SET body = ?, length = ?, sorted = ? WHERE id = ?`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.updateChainBody = stmt

	return nil
}

func (d *Database) InsertChain(record *Chain) error {
	_, err := d.insertChain.Exec(record)
	if err != nil {
		return errors.Wrapf(err, "chain: %s", record.Name)
	}
	return nil
}

func (d *Database) ResolveChainById(id primitive.ChainId) (*Chain, error) {
	var record Chain
	err := d.resolveChainById.Get(&record, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &record, nil
}

// ResolveChainByName returns nil without an error when no chain has the name.
func (d *Database) ResolveChainByName(name string) (*Chain, error) {
	var records []*Chain
	err := d.resolveChainByName.Select(&records, name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (d *Database) ResolveChainsByIds(ids []primitive.ChainId) ([]*Chain, error) {
	if len(ids) == 0 {
		return []*Chain{}, nil
	}

	query, params, err := sqlx.In(selectChain+` WHERE id in (?) ORDER BY name`, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []*Chain
	if err := d.tx.Select(&records, d.tx.Rebind(query), params...); err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (d *Database) ResolveAllChains() ([]*Chain, error) {
	var records []*Chain
	err := d.resolveAllChains.Select(&records)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (d *Database) resolveChainsBySorted(sorted bool) ([]*Chain, error) {
	var records []*Chain
	err := d.resolveSortedChains.Select(&records, sorted)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (d *Database) ResolveSortedChains() ([]*Chain, error) {
	return d.resolveChainsBySorted(true)
}

func (d *Database) ResolveUnsortedChains() ([]*Chain, error) {
	return d.resolveChainsBySorted(false)
}

func (d *Database) UpdateChainBody(record *Chain) error {
	_, err := d.updateChainBody.Exec(record.Body, record.Length, record.Sorted, record.Id)
	if err != nil {
		return errors.Wrapf(err, "chain: %s", record.Name)
	}
	return nil
}
