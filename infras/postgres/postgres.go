package postgres

//nolint:revive
import (
	"carehub/config"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnection = 10
	maxOpenConnection = 20
	connMaxLifetime   = 30 * time.Minute
)

// Connection holds the read replica pool and the primary pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	role     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func (e endpoint) dsn() string {
	u := url.URL{
		Scheme: driverName,
		User:   url.UserPassword(e.username, e.password),
		Host:   net.JoinHostPort(e.host, e.port),
		Path:   e.dbName,
	}

	query := u.Query()
	if e.sslMode != "" {
		query.Set("sslmode", e.sslMode)
	}

	u.RawQuery = query.Encode()

	return u.String()
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := endpoint{
		role:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   pg.Prefix + pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
	}

	read := endpoint{
		role:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   pg.Prefix + pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
	}

	if read.host == "" {
		read = write
		read.role = "read"
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// WriteDSN is the primary connection string, used by the migrator.
func WriteDSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	return endpoint{
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   pg.Prefix + pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
	}.dsn()
}

func connect(ep endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	maxRetry = max(maxRetry, 1)

	for attempt := range maxRetry {
		db, err := sqlx.Connect(driverName, ep.dsn())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnection)
			db.SetMaxOpenConns(maxOpenConnection)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().
				Str("role", ep.role).
				Str("host", ep.host).
				Str("dbName", ep.dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", ep.role).
			Str("host", ep.host).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	log.Fatal().Str("role", ep.role).Msg("Giving up connecting to database")

	return nil
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if c.Read == c.Write {
		return c.Write.Close() //nolint:wrapcheck
	}

	return errors.Join(c.Read.Close(), c.Write.Close())
}
