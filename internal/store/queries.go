package store

// SQL query constants organized by entity.
// PostgresStore methods reference these constants; SQLite has its own set
// in sqlite_queries.go.

// Variant queries.
const (
	queryFindVariant = `
		SELECT monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		FROM variants
		WHERE monitor_id = $1 AND product_id = $2 AND variant_id = $3`

	queryInsertVariant = `
		INSERT INTO variants (
			monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		) VALUES (
			@monitor_id, @product_id, @variant_id, @title, @brand, @available, @price, @created_at, @updated_at
		)
		ON CONFLICT (monitor_id, product_id, variant_id) DO NOTHING`

	queryUpdateVariant = `
		UPDATE variants SET
			title = @title,
			brand = @brand,
			available = @available,
			price = @price,
			updated_at = @updated_at
		WHERE monitor_id = @monitor_id AND product_id = @product_id AND variant_id = @variant_id`

	queryListVariantsByMonitor = `
		SELECT monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		FROM variants
		WHERE monitor_id = $1
		ORDER BY product_id, variant_id`

	queryListVariantsByProduct = `
		SELECT monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		FROM variants
		WHERE monitor_id = $1 AND product_id = $2
		ORDER BY variant_id`

	queryDeleteVariant = `
		DELETE FROM variants
		WHERE monitor_id = $1 AND product_id = $2 AND variant_id = $3`
)

// Monitor queries.
const (
	queryCreateMonitor = `
		INSERT INTO monitors (
			id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		) VALUES (
			@id, @name, @url, @kind, @query, @currency, @channel, @transport, @enabled, @created_at, @updated_at
		)
		ON CONFLICT (id) DO NOTHING`

	queryGetMonitor = `
		SELECT id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		FROM monitors
		WHERE id = $1`

	queryListMonitorsAll = `
		SELECT id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		FROM monitors
		ORDER BY created_at, id`

	queryListMonitorsEnabled = `
		SELECT id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		FROM monitors
		WHERE enabled = true
		ORDER BY created_at, id`

	queryUpdateMonitor = `
		UPDATE monitors SET
			name = @name,
			url = @url,
			kind = @kind,
			query = @query,
			currency = @currency,
			channel = @channel,
			transport = @transport,
			enabled = @enabled,
			updated_at = now()
		WHERE id = @id
		RETURNING created_at, updated_at`

	queryDeleteMonitor = `DELETE FROM monitors WHERE id = $1`

	queryDeleteMonitorVariants = `DELETE FROM variants WHERE monitor_id = $1`

	querySetMonitorEnabled = `
		UPDATE monitors SET enabled = $2, updated_at = now()
		WHERE id = $1`
)
