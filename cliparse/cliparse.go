package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DevSessionSecret is the fallback HMAC key used when SESSION_SECRET is
// not configured. Fine for development, never for a real deployment.
const DevSessionSecret = "parish-directory-dev-secret"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	PoolSize     int
	StaticDir    string

	SessionSecret          string
	SessionSecretDefaulted bool
	SessionMaxAge          time.Duration

	// Basic auth filter is active only when both are set
	BasicAuthUser string
	BasicAuthPass string

	Production bool
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("parish-directory", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory with the built admin client")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		// Provider-style parts (PG*) with generic fallbacks (DB_*).
		// No parts at all leaves the URL empty: the store starts down
		// rather than killing the process.
		cfg.DatabaseURL = composeDatabaseURL()
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	cfg.PoolSize = 10
	if sizeStr := os.Getenv("DB_POOL_SIZE"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			return Config{}, errors.New("invalid DB_POOL_SIZE env variable")
		}
		cfg.PoolSize = size
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
		if cfg.StaticDir == "" {
			cfg.StaticDir = "./public"
		}
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = DevSessionSecret
		cfg.SessionSecretDefaulted = true
	}

	cfg.SessionMaxAge = 6 * time.Hour
	if ageStr := os.Getenv("SESSION_MAX_AGE"); ageStr != "" {
		secs, err := strconv.Atoi(ageStr)
		if err != nil || secs < 1 {
			return Config{}, errors.New("invalid SESSION_MAX_AGE env variable")
		}
		cfg.SessionMaxAge = time.Duration(secs) * time.Second
	}

	cfg.BasicAuthUser = os.Getenv("BASIC_AUTH_USER")
	cfg.BasicAuthPass = os.Getenv("BASIC_AUTH_PASS")
	if (cfg.BasicAuthUser == "") != (cfg.BasicAuthPass == "") {
		return Config{}, errors.New("BASIC_AUTH_USER and BASIC_AUTH_PASS must be set together")
	}

	cfg.Production = os.Getenv("APP_ENV") == "production"

	return cfg, nil
}

// composeDatabaseURL builds a postgres URL from discrete host/user/
// password/database/port variables. Returns "" when no host is set.
func composeDatabaseURL() string {
	host := envOr("PGHOST", "DB_HOST")
	if host == "" {
		return ""
	}

	user := envOr("PGUSER", "DB_USER")
	pass := envOr("PGPASSWORD", "DB_PASSWORD")
	name := envOr("PGDATABASE", "DB_NAME")
	port := envOr("PGPORT", "DB_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   host + ":" + port,
		Path:   "/" + name,
	}
	if user != "" {
		if pass != "" {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String()
}

func envOr(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
