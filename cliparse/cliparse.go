package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBlacklist is the shipped set of barred contact identifiers.
// Deployments override it with BLACKLISTED_CONTACTS.
var DefaultBlacklist = []string{
	"93928",
	"6245893",
	"65938897",
	"63264986",
	"62317605",
}

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	AdminPIN         string
	AdminSessionSalt string
	ServiceRoleKey   string
	Blacklist        []string
	RedisURL         string
	KafkaBrokers     []string
	KafkaTopic       string
}

// ParseFlags validates flags and environment and returns the runtime
// configuration. A .env file in the working directory is loaded first;
// CLI flags take precedence over environment variables.
func ParseFlags(args []string) (Config, error) {
	// Ignore a missing .env; env vars may come from the environment.
	_ = godotenv.Load()

	var cfg Config
	var blacklist string
	var brokers string

	fs := flag.NewFlagSet("vota-locales", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPIN, "admin-pin", "", "Admin PIN (prefer env)")
	fs.StringVar(&cfg.AdminSessionSalt, "session-salt", "", "Admin session salt (prefer env)")
	fs.StringVar(&cfg.ServiceRoleKey, "service-role-key", "", "Elevated service-role key (prefer env)")

	// Vote integrity
	fs.StringVar(&blacklist, "blacklist", "", "Comma-separated blacklisted contacts")

	// Optional collaborators
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "Redis URL for page-cache invalidation")
	fs.StringVar(&brokers, "kafka-brokers", "", "Comma-separated kafka brokers for the vote stream")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", "", "Kafka topic for the vote stream")

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
			cfg.Port = 3328 // default
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
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.AdminPIN == "" {
		cfg.AdminPIN = os.Getenv("ADMIN_PIN")
	}
	if cfg.AdminPIN == "" {
		return Config{}, errors.New("ADMIN_PIN required")
	}

	if cfg.AdminSessionSalt == "" {
		cfg.AdminSessionSalt = os.Getenv("ADMIN_SESSION_SALT")
	}
	if cfg.AdminSessionSalt == "" {
		return Config{}, errors.New("ADMIN_SESSION_SALT required")
	}

	// Optional: remove-votes refuses to run without it, everything else
	// works.
	if cfg.ServiceRoleKey == "" {
		cfg.ServiceRoleKey = os.Getenv("SERVICE_ROLE_KEY")
	}

	if blacklist == "" {
		blacklist = os.Getenv("BLACKLISTED_CONTACTS")
	}
	if blacklist == "" {
		cfg.Blacklist = DefaultBlacklist
	} else {
		cfg.Blacklist = splitList(blacklist)
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}
	if brokers == "" {
		brokers = os.Getenv("KAFKA_BROKERS")
	}
	cfg.KafkaBrokers = splitList(brokers)
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = os.Getenv("KAFKA_TOPIC")
		if cfg.KafkaTopic == "" {
			cfg.KafkaTopic = "votes"
		}
	}

	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
