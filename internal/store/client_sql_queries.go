// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-metadata-console/models"
)

const metadataCacheTable = "metadata_cache"

const (
	upsertMetadata = `
		INSERT INTO metadata_cache (
			id,
			name,
			description,
			payload,
			viewed_at
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			payload = excluded.payload,
			viewed_at = excluded.viewed_at;`

	deleteMetadata = `
		DELETE FROM metadata_cache
		WHERE id = ?;`
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// nameFilter matches names containing nameContains as a plain substring, the
// way the catalog's nameContains parameter does.
func nameFilter(nameContains string) sq.Sqlizer {
	name := strings.TrimSpace(nameContains)
	if name == "" {
		return nil
	}
	return sq.Expr(`name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(name)+"%")
}

// buildListQuery selects one page of cached payloads, most recently viewed
// first.
func buildListQuery(req models.ListRequest) (string, []any, error) {
	q := sqlite.
		Select("payload").
		From(metadataCacheTable).
		OrderBy("viewed_at DESC", "id")

	if f := nameFilter(req.NameContains); f != nil {
		q = q.Where(f)
	}
	if req.Size > 0 {
		q = q.Limit(uint64(req.Size)).Offset(uint64(max(req.Page, 0) * req.Size))
	}

	return q.ToSql()
}

func buildCountQuery(req models.ListRequest) (string, []any, error) {
	q := sqlite.
		Select("COUNT(*)").
		From(metadataCacheTable)

	if f := nameFilter(req.NameContains); f != nil {
		q = q.Where(f)
	}

	return q.ToSql()
}

func buildPruneQuery(cutoff time.Time) (string, []any, error) {
	return sqlite.
		Delete(metadataCacheTable).
		Where(sq.Lt{"viewed_at": cutoff.Unix()}).
		ToSql()
}
