package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	qb "github.com/riskibarqy/fut-draft/internal/platform/querybuilder"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func selectColumns(model any) []string {
	cols, err := qb.Columns(model)
	if err != nil {
		panic(fmt.Sprintf("postgres: select columns: %v", err))
	}
	return cols
}
