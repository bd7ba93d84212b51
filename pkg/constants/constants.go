// Package constants provides shared constants for the unit-economics application.
package constants

// Financial constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100

	// CurrencyPlaces is the number of decimal places shown for money amounts
	CurrencyPlaces = 2

	// PercentPlaces is the number of decimal places shown for percentages
	PercentPlaces = 1
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Storage backend constants
const (
	// StorageBackendFile stores snapshots as a YAML file
	StorageBackendFile = "file"

	// StorageBackendSQLite stores snapshots in a SQLite database
	StorageBackendSQLite = "sqlite"

	// StorageBackendRedis stores snapshots in Redis
	StorageBackendRedis = "redis"

	// DefaultSnapshotName is the name used when a storage config omits one
	DefaultSnapshotName = "default"

	// DefaultSnapshotFile is the default path of the file store
	DefaultSnapshotFile = "unit-economics-snapshot.yaml"

	// DefaultSQLitePath is the default path of the SQLite store
	DefaultSQLitePath = "unit-economics.db"

	// DefaultRedisAddress is the default Redis address
	DefaultRedisAddress = "localhost:6379"

	// DefaultRedisKeyPrefix prefixes every snapshot key written to Redis
	DefaultRedisKeyPrefix = "unit-economics:snapshot:"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the editor API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultRequestsPerSecond is the default steady-state API request rate
	DefaultRequestsPerSecond = 20.0

	// DefaultRequestBurst is the default API request burst size
	DefaultRequestBurst = 40
)
