package solverdb

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/retrograde/internal/retrograde"
)

const keyPrefix = "snapshot:"

// DB wraps a BadgerDB instance holding one solved-position snapshot per
// game key. A snapshot is the (value, remoteness) pair for every position
// id, exactly what Solver.Snapshot/LoadSnapshot exchange, so a process can
// solve a game once and every later run against the same key resumes from
// the stored database instead of re-running Phases 1-3 (spec §6's "the
// database retains all positions for subsequent queries").
type DB struct {
	db *badger.DB
}

// Open opens (creating if necessary) a BadgerDB rooted at dir.
func Open(dir string) (*DB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("solverdb: opening database at %s: %w", dir, err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// snapshot is the on-disk encoding of a solved database: parallel
// value/remoteness slices in ascending id order, one gob blob per key.
type snapshot struct {
	Values     []retrograde.Value
	Remoteness []retrograde.Remoteness
}

// Save stores the (values, remoteness) snapshot for gameKey, overwriting
// any previous snapshot under that key.
func (d *DB) Save(gameKey string, values []retrograde.Value, remoteness []retrograde.Remoteness) error {
	if len(values) != len(remoteness) {
		return fmt.Errorf("solverdb: values (%d) and remoteness (%d) length mismatch", len(values), len(remoteness))
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snapshot{Values: values, Remoteness: remoteness}); err != nil {
		return fmt.Errorf("solverdb: encoding snapshot for %q: %w", gameKey, err)
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+gameKey), buf.Bytes())
	})
}

// Load retrieves the snapshot stored for gameKey. found is false if no
// snapshot has been saved under that key yet, in which case values and
// remoteness are nil and err is nil.
func (d *DB) Load(gameKey string) (values []retrograde.Value, remoteness []retrograde.Remoteness, found bool, err error) {
	err = d.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(keyPrefix + gameKey))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		found = true
		return item.Value(func(val []byte) error {
			var snap snapshot
			if decodeErr := gob.NewDecoder(bytes.NewReader(val)).Decode(&snap); decodeErr != nil {
				return decodeErr
			}
			values = snap.Values
			remoteness = snap.Remoteness
			return nil
		})
	})
	if err != nil {
		return nil, nil, false, fmt.Errorf("solverdb: loading snapshot for %q: %w", gameKey, err)
	}
	return values, remoteness, found, nil
}

// Delete removes any snapshot stored for gameKey. It is not an error for
// gameKey to already be absent.
func (d *DB) Delete(gameKey string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + gameKey))
	})
}
