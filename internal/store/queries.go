package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const listingColumns = `id, seller_id, service_name, price_per_unit, unit_description, endpoint_url,
	total_units, available_units, reserved_units, sold_units, status,
	credential_sealed, created_at, updated_at`

const orderColumns = `id, listing_id, buyer_id, seller_id, units, unit_price, amount, state,
	COALESCE(dispute_reason, ''), COALESCE(dispute_evidence, ''), dispute_opened_at,
	COALESCE(counter_reason, ''), COALESCE(counter_evidence, ''), countered_at,
	dispute_deadline, counter_deadline,
	COALESCE(resolution_decision, ''), COALESCE(resolution_source, ''), resolved_at,
	version, created_at, updated_at`

const activeDeadline = `CASE WHEN state = 'ACCEPTED' THEN dispute_deadline ELSE counter_deadline END`

const tokenColumns = `id, order_id, buyer_id, seller_id, amount, status, created_at, settled_at`

const reviewColumns = `id, order_id, buyer_id, seller_id, score, COALESCE(comment, ''), created_at`

// Listing queries.
const (
	queryInsertListing = `
		INSERT INTO listings (
			id, seller_id, service_name, price_per_unit, unit_description, endpoint_url,
			total_units, available_units, reserved_units, sold_units, status,
			credential_sealed, created_at, updated_at
		) VALUES (
			@id, @seller_id, @service_name, @price_per_unit, @unit_description, @endpoint_url,
			@total_units, @available_units, 0, 0, @status,
			@credential_sealed, @created_at, @created_at
		)`

	queryGetListingByID = `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	queryListingExists = `SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1)`

	// Inventory updates are single conditional statements so concurrent
	// reservations against one listing can never oversell.
	queryReserveUnits = `
		UPDATE listings SET
			available_units = available_units - $2,
			reserved_units = reserved_units + $2,
			status = CASE WHEN available_units - $2 = 0 THEN 'sold_out' ELSE 'active' END,
			updated_at = now()
		WHERE id = $1 AND available_units >= $2`

	queryRestoreUnits = `
		UPDATE listings SET
			available_units = available_units + $2,
			reserved_units = reserved_units - $2,
			status = 'active',
			updated_at = now()
		WHERE id = $1 AND reserved_units >= $2`

	queryCommitUnits = `
		UPDATE listings SET
			reserved_units = reserved_units - $2,
			sold_units = sold_units + $2,
			updated_at = now()
		WHERE id = $1 AND reserved_units >= $2`
)

// Order queries.
const (
	queryInsertOrder = `
		INSERT INTO orders (
			id, listing_id, buyer_id, seller_id, units, unit_price, amount, state,
			version, created_at, updated_at
		) VALUES (
			@id, @listing_id, @buyer_id, @seller_id, @units, @unit_price, @amount, @state,
			1, @created_at, @updated_at
		)`

	queryGetOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	queryOrderExists = `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`

	queryUpdateOrder = `
		UPDATE orders SET
			state = @state,
			dispute_reason = NULLIF(@dispute_reason, ''),
			dispute_evidence = NULLIF(@dispute_evidence, ''),
			dispute_opened_at = @dispute_opened_at,
			counter_reason = NULLIF(@counter_reason, ''),
			counter_evidence = NULLIF(@counter_evidence, ''),
			countered_at = @countered_at,
			dispute_deadline = @dispute_deadline,
			counter_deadline = @counter_deadline,
			resolution_decision = NULLIF(@resolution_decision, ''),
			resolution_source = NULLIF(@resolution_source, ''),
			resolved_at = @resolved_at,
			version = version + 1,
			updated_at = @updated_at
		WHERE id = @id AND version = @version
		RETURNING version`

	// Due orders are keyed by (active deadline, id) so a sweep can resume
	// after orders it could not settle instead of rereading them.
	queryListExpiredOrders = `SELECT ` + orderColumns + `
		FROM orders
		WHERE ((state = 'ACCEPTED' AND dispute_deadline < $1)
		    OR (state = 'DISPUTED' AND counter_deadline < $1))
		  AND (` + activeDeadline + `, id) > ($2::timestamptz, $3::text)
		ORDER BY ` + activeDeadline + `, id
		LIMIT $4`
)

// Escrow token queries.
const (
	queryInsertToken = `
		INSERT INTO escrow_tokens (
			id, order_id, buyer_id, seller_id, amount, status, created_at
		) VALUES (
			@id, @order_id, @buyer_id, @seller_id, @amount, @status, @created_at
		)`

	queryGetTokenByOrder = `SELECT ` + tokenColumns + ` FROM escrow_tokens WHERE order_id = $1`

	queryListTokensByBuyer = `SELECT ` + tokenColumns + `
		FROM escrow_tokens
		WHERE buyer_id = $1
		ORDER BY created_at DESC, id`

	queryTokenExists = `SELECT EXISTS(SELECT 1 FROM escrow_tokens WHERE order_id = $1)`

	querySetTokenStatus = `
		UPDATE escrow_tokens SET status = $3, settled_at = $4
		WHERE order_id = $1 AND status = $2`
)

// Review queries.
const (
	queryInsertReview = `
		INSERT INTO reviews (
			id, order_id, buyer_id, seller_id, score, comment, created_at
		) VALUES (
			@id, @order_id, @buyer_id, @seller_id, @score, NULLIF(@comment, ''), @created_at
		)`

	queryListReviewsBySeller = `SELECT ` + reviewColumns + `
		FROM reviews
		WHERE seller_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`

	querySellerRatingStats = `
		SELECT COUNT(*), COALESCE(SUM(score), 0)
		FROM reviews
		WHERE seller_id = $1`
)

// paidOrder matches orders past CREATED that were not cancelled.
const paidOrder = `o.state NOT IN ('CREATED', 'CANCELLED')`

// Summary queries.
const (
	queryAccountTotals = `
		WITH mine AS (
			SELECT
				o.buyer_id = $1 AS bought,
				o.seller_id = $1 AS sold,
				` + paidOrder + ` AS paid,
				o.state = 'CREATED' AS pending,
				o.amount,
				t.status
			FROM orders o
			LEFT JOIN escrow_tokens t ON t.order_id = o.id
			WHERE o.buyer_id = $1 OR o.seller_id = $1
		)
		SELECT
			COUNT(*) FILTER (WHERE bought AND paid),
			COALESCE(SUM(amount) FILTER (WHERE bought AND paid), 0)::bigint,
			COUNT(*) FILTER (WHERE bought AND pending),
			COALESCE(SUM(amount) FILTER (WHERE bought AND pending), 0)::bigint,
			COUNT(*) FILTER (WHERE bought AND status = 'RELEASED_TO_BUYER'),
			COALESCE(SUM(amount) FILTER (WHERE bought AND status = 'RELEASED_TO_BUYER'), 0)::bigint,
			COUNT(*) FILTER (WHERE sold AND paid),
			COALESCE(SUM(amount) FILTER (WHERE sold AND paid), 0)::bigint,
			COUNT(*) FILTER (WHERE sold AND paid AND status = 'RESERVED'),
			COALESCE(SUM(amount) FILTER (WHERE sold AND paid AND status = 'RESERVED'), 0)::bigint,
			COUNT(*) FILTER (WHERE sold AND paid AND status = 'RELEASED_TO_SELLER'),
			COALESCE(SUM(amount) FILTER (WHERE sold AND paid AND status = 'RELEASED_TO_SELLER'), 0)::bigint,
			COUNT(*) FILTER (WHERE sold AND paid AND status = 'RELEASED_TO_BUYER'),
			COALESCE(SUM(amount) FILTER (WHERE sold AND paid AND status = 'RELEASED_TO_BUYER'), 0)::bigint
		FROM mine`

	queryListingTotals = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM listings`

	queryOrderTotals = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE ` + paidOrder + `),
			COUNT(*) FILTER (WHERE o.state = 'CREATED'),
			COUNT(*) FILTER (WHERE o.dispute_opened_at IS NOT NULL),
			COUNT(*) FILTER (WHERE t.status = 'RELEASED_TO_SELLER'),
			COUNT(*) FILTER (WHERE t.status = 'RELEASED_TO_BUYER'),
			COALESCE(SUM(o.amount) FILTER (WHERE ` + paidOrder + `), 0)::bigint,
			COUNT(*) FILTER (WHERE o.created_at >= $1),
			COUNT(*) FILTER (WHERE o.created_at >= $1 AND ` + paidOrder + `),
			COALESCE(SUM(o.amount) FILTER (WHERE o.created_at >= $1 AND ` + paidOrder + `), 0)::bigint
		FROM orders o
		LEFT JOIN escrow_tokens t ON t.order_id = o.id`

	queryTopSellers = `
		SELECT o.seller_id, COUNT(*), SUM(o.amount)::bigint AS total
		FROM orders o
		WHERE ` + paidOrder + ` AND o.created_at >= $1
		GROUP BY o.seller_id
		ORDER BY total DESC, o.seller_id
		LIMIT $2`

	queryTopBuyers = `
		SELECT o.buyer_id, COUNT(*), SUM(o.amount)::bigint AS total
		FROM orders o
		WHERE ` + paidOrder + ` AND o.created_at >= $1
		GROUP BY o.buyer_id
		ORDER BY total DESC, o.buyer_id
		LIMIT $2`
)
