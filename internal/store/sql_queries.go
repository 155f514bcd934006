// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// sqlite uses ? placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Store names reaching these builders are validated against knownStores
// first; they are interpolated as table names.

func buildGetQuery(store, key string) (string, []any, error) {
	return psql.
		Select("value", "version").
		From(store).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildInsertQuery(store, key string, value []byte) (string, []any, error) {
	return psql.
		Insert(store).
		Columns("key", "value", "version").
		Values(key, value, 1).
		ToSql()
}

func buildUpsertQuery(store, key string, value []byte) (string, []any, error) {
	return psql.
		Insert(store).
		Columns("key", "value", "version").
		Values(key, value, 1).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, version = " + store + ".version + 1").
		ToSql()
}

func buildUpdateIfVersionQuery(store, key string, value []byte, version int64) (string, []any, error) {
	return psql.
		Update(store).
		Set("value", value).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"key": key, "version": version}).
		ToSql()
}

func buildDeleteQuery(store, key string) (string, []any, error) {
	return psql.
		Delete(store).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildKeysQuery(store string) (string, []any, error) {
	return psql.
		Select("key").
		From(store).
		OrderBy("key").
		ToSql()
}
