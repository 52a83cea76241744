package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver name ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-password-hash-cost bcrypt work factor
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("go-cal-keeper", flag.ContinueOnError)

	var (
		serverAddress    string
		databaseDSN      string
		databaseDriver   string
		jsonConfigPath   string
		requestTimeout   time.Duration
		passwordHashCost int
	)

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt work factor for password hashing")

	// unknown flags are reported but must not abort config building
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			PasswordHashCost: passwordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
