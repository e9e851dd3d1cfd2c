package postgres

import (
	"database/sql"
	"fmt"

	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// listSuffix renders the ORDER BY / LIMIT / OFFSET tail of a list
// query. Sort columns not in the allowlist fall back to created_at to
// keep filter input out of the SQL.
func listSuffix(f *types.QueryFilter, sortable ...string) string {
	sort := f.GetSort()
	if !lo.Contains(sortable, sort) {
		sort = "created_at"
	}
	order := "DESC"
	if f.GetOrder() == types.OrderAsc {
		order = "ASC"
	}
	suffix := fmt.Sprintf(" ORDER BY %s %s", sort, order)
	if !f.IsUnlimited() {
		suffix += fmt.Sprintf(" LIMIT %d OFFSET %d", f.GetLimit(), f.GetOffset())
	}
	return suffix
}

// requireRowAffected converts a zero-row write into a not found error.
func requireRowAffected(result sql.Result, entity, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("No %s exists with ID %s", entity, id).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
