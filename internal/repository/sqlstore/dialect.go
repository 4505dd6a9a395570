package sqlstore

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Dialect captures the differences between the supported SQL backends.
// Statements are always written with "?" placeholders and rebound on execution.
type Dialect struct {
	name        string
	driver      string
	defaultPort string
	// numbered placeholders ($1, $2, ...) instead of "?".
	numbered bool
	// returning reads generated ids with INSERT ... RETURNING id instead of LastInsertId.
	returning bool
}

var (
	Postgres = Dialect{name: "postgres", driver: "postgres", defaultPort: "5432", numbered: true, returning: true}
	MySQL    = Dialect{name: "mysql", driver: "mysql", defaultPort: "3306"}
	SQLite   = Dialect{name: "sqlite", driver: "sqlite"}
)

// DialectFor resolves a DB_DRIVER value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
}

func (d Dialect) Name() string   { return d.name }
func (d Dialect) Driver() string { return d.driver }

// Rebind rewrites "?" placeholders into the dialect's native form.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// ConnParams are the discrete connection settings a DSN is built from.
type ConnParams struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// DSN builds a driver-specific data source name.
func (d Dialect) DSN(p ConnParams) string {
	port := p.Port
	if port == "" {
		port = d.defaultPort
	}

	switch d.name {
	case Postgres.name:
		u := url.URL{
			Scheme:   "postgres",
			Host:     net.JoinHostPort(p.Host, port),
			Path:     "/" + p.Database,
			RawQuery: "sslmode=disable",
		}
		if p.User != "" {
			u.User = url.UserPassword(p.User, p.Password)
		}
		return u.String()
	case MySQL.name:
		cfg := mysql.NewConfig()
		cfg.User = p.User
		cfg.Passwd = p.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(p.Host, port)
		cfg.DBName = p.Database
		cfg.ParseTime = true
		// Report matched rows, so an update that changes nothing is not mistaken for a missing row.
		cfg.ClientFoundRows = true
		return cfg.FormatDSN()
	default:
		return p.Database
	}
}
