package postgres

import (
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/peterbourgon/ff"
)

type Config struct {
	Host         string
	Port         int
	User         string
	Password     string
	DatabaseName string
}

// DSN renders the config as a lib/pq connection string
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable",
		c.Host,
		c.Port,
		c.User,
		c.DatabaseName,
	)
	if c.Password != "" {
		dsn += fmt.Sprintf(" password=%s", c.Password)
	}
	return dsn
}

// connect to Postgres and return a database handle representing a pool of connections
// The caller must register the "postgres" driver, e.g. by importing github.com/lib/pq
func Connect(config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %v", err)
	}

	err = setup(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Parse the flags in the flag set from args.
// Additional options may be provided to parse from environment variables, but flags get priority.
//
// Example .env file
// 	POSTGRES_HOST=localhost
// 	POSTGRES_PORT=5432
// 	POSTGRES_USER=alice
// 	POSTGRES_DB_NAME=samples_dev
func Parse(args []string) (*Config, error) {
	var err error

	postgresFlags := flag.NewFlagSet("postgres", flag.ContinueOnError)
	var (
		host     = postgresFlags.String("host", "localhost", "host to connect to")
		port     = postgresFlags.Int("port", 5432, "port to bind to")
		user     = postgresFlags.String("user", "", "user to sign in as")
		password = postgresFlags.String("password", "", "password of the user")
		dbName   = postgresFlags.String("db_name", "", "name of the database")
	)

	err = ff.Parse(postgresFlags, args,
		ff.WithIgnoreUndefined(true),
		ff.WithEnvVarPrefix("POSTGRES"),
	)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:         *host,
		Port:         *port,
		User:         *user,
		Password:     *password,
		DatabaseName: *dbName,
	}, nil
}

// configures the database settings
func setup(db *sqlx.DB) error {
	// install extension for creating UUIDs
	_, err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	if err != nil {
		return fmt.Errorf("adding UUID extension: %v", err)
	}

	// set default timezone to UTC
	_, err = db.Exec("SET timezone to 'UTC'")
	if err != nil {
		return fmt.Errorf("setting database default timezone: %v", err)
	}

	err = createSampleTable(db)
	if err != nil {
		return fmt.Errorf("creating db tables: %v", err)
	}

	return nil
}
