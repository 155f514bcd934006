package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// tx is the private implementation of [Tx].
type tx struct {
	sqlTx *sql.Tx
	scope map[string]struct{}
	mode  Mode
}

// ObjectStore implements [Tx].
func (t *tx) ObjectStore(name string) (ObjectStore, error) {
	if _, ok := t.scope[name]; !ok {
		return nil, fmt.Errorf("%w: %q not in transaction scope", ErrUnknownObjectStore, name)
	}
	return &objectStore{tx: t, name: name}, nil
}

// objectStore is one named key-value table accessed inside a transaction.
// Values are stored JSON-encoded.
type objectStore struct {
	tx   *tx
	name string
}

func (s *objectStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	_, found, err := s.GetWithVersion(ctx, key, dest)
	return found, err
}

func (s *objectStore) GetWithVersion(ctx context.Context, key string, dest any) (int64, bool, error) {
	query, args, err := buildGetQuery(s.name, key)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	var (
		raw     []byte
		version int64
	)
	err = s.tx.sqlTx.QueryRowContext(ctx, query, args...).Scan(&raw, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrScanningRow, err)
	}

	if dest != nil {
		if err = json.Unmarshal(raw, dest); err != nil {
			return 0, false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrEncodingValue, err)
		}
	}
	return version, true, nil
}

func (s *objectStore) Put(ctx context.Context, key string, value any) error {
	raw, err := s.encodeForWrite(value)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertQuery(s.name, key, raw)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	if _, err = s.tx.sqlTx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}
	return nil
}

func (s *objectStore) Add(ctx context.Context, key string, value any) error {
	raw, err := s.encodeForWrite(value)
	if err != nil {
		return err
	}

	query, args, err := buildInsertQuery(s.name, key, raw)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	if _, err = s.tx.sqlTx.ExecContext(ctx, query, args...); err != nil {
		if isConstraintViolation(err) {
			return ErrKeyExists
		}
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}
	return nil
}

func (s *objectStore) PutIfVersion(ctx context.Context, key string, value any, version int64) (int64, error) {
	raw, err := s.encodeForWrite(value)
	if err != nil {
		return 0, err
	}

	query, args, err := buildUpdateIfVersionQuery(s.name, key, raw, version)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	res, err := s.tx.sqlTx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if affected == 0 {
		return 0, ErrVersionConflict
	}
	return version + 1, nil
}

func (s *objectStore) Delete(ctx context.Context, key string) error {
	if s.tx.mode != ReadWrite {
		return ErrTransactionReadOnly
	}

	query, args, err := buildDeleteQuery(s.name, key)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	if _, err = s.tx.sqlTx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}
	return nil
}

func (s *objectStore) Keys(ctx context.Context) ([]string, error) {
	query, args, err := buildKeysQuery(s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	rows, err := s.tx.sqlTx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return keys, nil
}

func (s *objectStore) encodeForWrite(value any) ([]byte, error) {
	if s.tx.mode != ReadWrite {
		return nil, ErrTransactionReadOnly
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return raw, nil
}
