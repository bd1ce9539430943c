package store

// SQLite query constants. Timestamps are stored as RFC 3339 text and
// booleans as integers.

const (
	sqliteFindVariant = `
		SELECT monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		FROM variants
		WHERE monitor_id = ? AND product_id = ? AND variant_id = ?`

	sqliteInsertVariant = `
		INSERT INTO variants (
			monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (monitor_id, product_id, variant_id) DO NOTHING`

	sqliteUpdateVariant = `
		UPDATE variants SET title = ?, brand = ?, available = ?, price = ?, updated_at = ?
		WHERE monitor_id = ? AND product_id = ? AND variant_id = ?`

	sqliteListVariantsByMonitor = `
		SELECT monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		FROM variants
		WHERE monitor_id = ?
		ORDER BY product_id, variant_id`

	sqliteListVariantsByProduct = `
		SELECT monitor_id, product_id, variant_id, title, brand, available, price, created_at, updated_at
		FROM variants
		WHERE monitor_id = ? AND product_id = ?
		ORDER BY variant_id`

	sqliteDeleteVariant = `
		DELETE FROM variants WHERE monitor_id = ? AND product_id = ? AND variant_id = ?`

	sqliteCreateMonitor = `
		INSERT INTO monitors (
			id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	sqliteGetMonitor = `
		SELECT id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		FROM monitors
		WHERE id = ?`

	sqliteListMonitorsAll = `
		SELECT id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		FROM monitors
		ORDER BY created_at, id`

	sqliteListMonitorsEnabled = `
		SELECT id, name, url, kind, query, currency, channel, transport, enabled, created_at, updated_at
		FROM monitors
		WHERE enabled = 1
		ORDER BY created_at, id`

	sqliteUpdateMonitor = `
		UPDATE monitors SET
			name = ?, url = ?, kind = ?, query = ?, currency = ?,
			channel = ?, transport = ?, enabled = ?, updated_at = ?
		WHERE id = ?`

	sqliteDeleteMonitor = `DELETE FROM monitors WHERE id = ?`

	sqliteDeleteMonitorVariants = `DELETE FROM variants WHERE monitor_id = ?`

	sqliteSetMonitorEnabled = `UPDATE monitors SET enabled = ?, updated_at = ? WHERE id = ?`
)
