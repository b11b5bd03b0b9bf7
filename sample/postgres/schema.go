package postgres

import "github.com/jmoiron/sqlx"

func createSampleTable(db *sqlx.DB) error {
	var schema = `
	CREATE TABLE IF NOT EXISTS sample (
	id uuid DEFAULT uuid_generate_v4() PRIMARY KEY,
	series_id uuid NOT NULL,
	value NUMERIC(20, 8) NOT NULL,
	created_at timestamp DEFAULT now()
	)
	`
	_, err := db.Exec(schema)
	if err != nil {
		return err
	}
	return nil
}
