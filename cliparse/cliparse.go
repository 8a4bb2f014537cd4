package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/campus-vote/models"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	SessionSecret     string
	IdentitySalt      string
	AdminID           string
	AdminPasswordHash string
	InitialStatus     string
	KafkaBrokers      []string
	KafkaTopic        string
}

// ParseFlags validates flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var brokers string

	fs := flag.NewFlagSet("campus-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.InitialStatus, "initial-status", "", "Election status for a fresh deployment (open or closed)")
	fs.StringVar(&brokers, "kafka-brokers", "", "Comma-separated Kafka brokers for the audit mirror (optional)")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", "", "Kafka topic for audit events")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing key (prefer env)")
	fs.StringVar(&cfg.IdentitySalt, "identity-salt", "", "Voter identity derivation salt (prefer env)")
	fs.StringVar(&cfg.AdminID, "admin-id", "", "Admin login ID (prefer env)")
	fs.StringVar(&cfg.AdminPasswordHash, "admin-password-hash", "", "Bcrypt hash of the admin password (prefer env)")

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
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.InitialStatus == "" {
		cfg.InitialStatus = os.Getenv("ELECTION_INITIAL")
		if cfg.InitialStatus == "" {
			cfg.InitialStatus = models.ElectionClosed
		}
	}
	if cfg.InitialStatus != models.ElectionOpen && cfg.InitialStatus != models.ElectionClosed {
		return Config{}, errors.New("ELECTION_INITIAL must be open or closed")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.IdentitySalt == "" {
		cfg.IdentitySalt = os.Getenv("IDENTITY_SALT")
	}
	if cfg.IdentitySalt == "" {
		return Config{}, errors.New("IDENTITY_SALT required")
	}

	if cfg.AdminID == "" {
		cfg.AdminID = os.Getenv("ADMIN_ID")
	}
	if cfg.AdminID == "" {
		return Config{}, errors.New("ADMIN_ID required")
	}

	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, errors.New("ADMIN_PASSWORD_HASH required")
	}

	// Audit mirror is optional; topic defaults when brokers are set
	if brokers == "" {
		brokers = os.Getenv("KAFKA_BROKERS")
	}
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
		if cfg.KafkaTopic == "" {
			cfg.KafkaTopic = os.Getenv("KAFKA_TOPIC")
		}
		if cfg.KafkaTopic == "" {
			cfg.KafkaTopic = "election-audit"
		}
	}

	return cfg, nil
}
