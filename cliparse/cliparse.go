package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultAdminPhone is the bootstrap phone number. A new user signing up
// through /auth/setup-login with this phone receives the admin flag.
const DefaultAdminPhone = "111111111"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminPhone   string
}

// ParseFlags validates flags, falling back to environment variables.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mealvote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AdminPhone, "admin-phone", "", "Bootstrap admin phone number")

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
			cfg.Port = 3180 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "meals.db" // sqlite file next to the binary
	}

	if cfg.AdminPhone == "" {
		cfg.AdminPhone = os.Getenv("ADMIN_PHONE")
	}
	if cfg.AdminPhone == "" {
		cfg.AdminPhone = DefaultAdminPhone
	}

	return cfg, nil
}
