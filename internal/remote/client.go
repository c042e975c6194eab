package remote

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ricettario/internal/log"
)

// Backend is the surface the provisioning wizard drives. Only the wizard
// talks to the remote store; recipe CRUD never does.
type Backend interface {
	Ping(ctx context.Context) error
	TableExists(ctx context.Context, table string) (bool, error)
	ProvisionSchema(ctx context.Context) error
	Close() error
}

// Client is a thin postgres client for the provisioning path.
type Client struct {
	dsn  string
	gorm *gorm.DB
	sql  *sql.DB
	log  zerolog.Logger
}

// New validates the credential pair and constructs a client. It does not
// dial; reachability is only established by Ping.
func New(projectURL, anonKey string) (*Client, error) {
	dsn, err := dsnFor(projectURL, anonKey)
	if err != nil {
		return nil, err
	}
	return &Client{dsn: dsn, log: log.WithComponent("remote")}, nil
}

// Dial is the wizard's dialer hook.
func Dial(projectURL, anonKey string) (Backend, error) { return New(projectURL, anonKey) }

// dsnFor derives a postgres DSN from the stored credential pair. A
// postgres:// URL is taken as-is (anon key injected as password when the URL
// carries no user info); an https project URL is mapped to its database host.
func dsnFor(projectURL, anonKey string) (string, error) {
	projectURL = strings.TrimSpace(projectURL)
	anonKey = strings.TrimSpace(anonKey)
	if projectURL == "" || anonKey == "" {
		return "", ErrInvalidCredentials
	}
	u, err := url.Parse(projectURL)
	if err != nil || u.Host == "" {
		return "", errors.WithMessage(ErrInvalidCredentials, "malformed project url")
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		if u.User == nil {
			u.User = url.UserPassword("postgres", anonKey)
		}
		return u.String(), nil
	case "https", "http":
		return fmt.Sprintf("postgres://postgres:%s@db.%s:5432/postgres?sslmode=require",
			url.QueryEscape(anonKey), u.Hostname()), nil
	default:
		return "", errors.WithMessage(ErrInvalidCredentials, "unsupported scheme "+u.Scheme)
	}
}

func (c *Client) open(ctx context.Context) error {
	if c.gorm != nil {
		return nil
	}
	gdb, err := gorm.Open(postgres.Open(c.dsn), &gorm.Config{})
	if err != nil {
		return errors.WithMessage(ErrUnreachable, err.Error())
	}
	sdb, err := gdb.DB()
	if err != nil {
		return errors.WithMessage(ErrUnreachable, err.Error())
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(2)
	sdb.SetMaxIdleConns(1)
	c.gorm = gdb
	c.sql = sdb
	return nil
}

// Ping establishes the connection and verifies reachability.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.open(ctx); err != nil {
		return err
	}
	if err := c.sql.PingContext(ctx); err != nil {
		return errors.WithMessage(ErrUnreachable, err.Error())
	}
	return nil
}

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// TableExists reports whether table exists. It prefers the server-side
// check_table_exists RPC; when that is unavailable it falls back to a bounded
// probe query. Absence of proof of existence is treated as non-existence.
func (c *Client) TableExists(ctx context.Context, table string) (bool, error) {
	if !identPattern.MatchString(table) {
		return false, errors.WithMessage(ErrExecutionFailed, "invalid table name "+table)
	}
	if err := c.open(ctx); err != nil {
		return false, err
	}
	var exists bool
	err := c.gorm.WithContext(ctx).Raw(`SELECT check_table_exists(?)`, table).Scan(&exists).Error
	if err == nil {
		return exists, nil
	}
	c.log.Debug().Err(err).Msg("check_table_exists rpc unavailable, probing")
	probe := c.gorm.WithContext(ctx).Exec(fmt.Sprintf(`SELECT id FROM %s LIMIT 1`, table)).Error
	if probe == nil {
		return true, nil
	}
	if isUndefinedTable(probe) {
		return false, nil
	}
	// fail closed on any other probe error
	c.log.Warn().Err(probe).Str("table", table).Msg("probe query failed, treating table as absent")
	return false, nil
}

// ProvisionSchema executes the fixed schema-creation script through the
// execute_sql RPC. Re-invoking against an already-provisioned backend fails;
// callers must not invoke it once TableExists reported true.
func (c *Client) ProvisionSchema(ctx context.Context) error {
	if err := c.open(ctx); err != nil {
		return err
	}
	err := c.gorm.WithContext(ctx).Exec(`SELECT execute_sql(?)`, recipesDDL).Error
	if err == nil {
		return nil
	}
	if isUndefinedFunction(err) {
		return errors.WithMessage(ErrRPCUnavailable, err.Error())
	}
	return errors.WithMessage(ErrExecutionFailed, err.Error())
}

func (c *Client) Close() error {
	if c.sql == nil {
		return nil
	}
	return c.sql.Close()
}
