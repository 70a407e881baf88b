package postgres

//nolint:revive
import (
	"fmt"
	"haven/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func (e endpoint) dsn() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := endpoint{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   pg.Prefix + pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
	}

	read := endpoint{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   pg.Prefix + pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
	}

	conn := &Connection{
		Write: connect(config, write),
	}

	// A missing read replica shares the primary pool.
	if read.host == "" || read.dsn() == write.dsn() {
		conn.Read = conn.Write
	} else {
		conn.Read = connect(config, read)
	}

	return conn
}

func (c *Connection) Close() {
	if c.Read != nil && c.Read != c.Write {
		_ = c.Read.Close()
	}

	if c.Write != nil {
		_ = c.Write.Close()
	}
}

func connect(config *config.Config, target endpoint) *sqlx.DB {
	pool := config.DB.Postgres.Pool
	maxRetry := max(1, config.DB.Postgres.MaxRetry)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", target.dsn())
		if err == nil {
			log.
				Info().
				Str("name", target.name).
				Str("host", target.host).
				Str("dbName", target.dbName).
				Msg("Connected to database")

			sqlDB.SetMaxOpenConns(pool.MaxOpen)
			sqlDB.SetMaxIdleConns(pool.MaxIdle)
			sqlDB.SetConnMaxLifetime(time.Duration(pool.MaxLifetimeMinutes) * time.Minute)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Str("dbName", target.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("name", target.name).Msg("Could not connect to database")

	return nil
}
