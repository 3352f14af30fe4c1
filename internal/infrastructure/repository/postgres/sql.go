package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

const uniqueViolationCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

// encodeIDs renders ids in the canonical form used by the id column.
func encodeIDs(ids []id.U64ID) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		out = append(out, v.Encode())
	}
	return out
}
