package sqldb

import "context"

const getConfigValue = `
SELECT key, value, updated_at FROM config_parameters WHERE key = $1
`

func (q *Queries) GetConfigValue(ctx context.Context, db DBTX, key string) (ConfigParameter, error) {
	row := db.QueryRow(ctx, getConfigValue, key)
	var p ConfigParameter
	err := row.Scan(&p.Key, &p.Value, &p.UpdatedAt)
	return p, err
}

const upsertConfigValue = `
INSERT INTO config_parameters (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`

func (q *Queries) UpsertConfigValue(ctx context.Context, db DBTX, key, value string) error {
	_, err := db.Exec(ctx, upsertConfigValue, key, value)
	return err
}

const listConfigValues = `
SELECT key, value, updated_at FROM config_parameters ORDER BY key ASC
`

func (q *Queries) ListConfigValues(ctx context.Context, db DBTX) ([]ConfigParameter, error) {
	rows, err := db.Query(ctx, listConfigValues)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ConfigParameter
	for rows.Next() {
		var p ConfigParameter
		if err := rows.Scan(&p.Key, &p.Value, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
