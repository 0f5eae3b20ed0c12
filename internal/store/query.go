package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseListingsSelect = `SELECT ` + listingColumns + `
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

const baseOrdersSelect = `SELECT ` + orderColumns + `
FROM orders`

// clampPage normalizes limit and offset.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.SellerID != nil {
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", paramIdx))
		args = append(args, *q.SellerID)
		paramIdx++
	}

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, string(*q.Status))
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit, offset := clampPage(q.Limit, q.Offset)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC, id LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

// ToSQL builds the data query for an order query.
func (q *OrderQuery) ToSQL() (dataSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Participant != nil {
		conditions = append(conditions,
			fmt.Sprintf("(buyer_id = $%d OR seller_id = $%d)", paramIdx, paramIdx),
		)
		args = append(args, *q.Participant)
		paramIdx++
	}

	if q.State != nil {
		conditions = append(conditions, fmt.Sprintf("state = $%d", paramIdx))
		args = append(args, string(*q.State))
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit, offset := clampPage(q.Limit, q.Offset)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC, id LIMIT %d OFFSET %d",
		baseOrdersSelect, whereClause, limit, offset,
	)

	return dataSQL, args
}
