package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	CORSAllowedOrigins      []string
	SwaggerEnabled          bool
	LogLevel                logging.Level
	CatalogSource           string
	CatalogFile             string
	CatalogSeedEnabled      bool
	CatalogWarmupWorkers    int
	DBURL                   string
	DBDisablePreparedBinary bool
	CacheEnabled            bool
	CacheTTL                time.Duration
	CatalogCircuitEnabled   bool
	CatalogCircuitFailures  int
	CatalogCircuitOpenFor   time.Duration
	CatalogCircuitHalfOpen  int
	DraftSubstituteSlots    int
	DraftReserveSlots       int
	DraftCandidatePoolSize  int
	DraftFormationOptions   int
	MetricsEnabled          bool
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
	MCPAddr                 string
	MCPPath                 string
	MCPAPIKey               string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(getEnv("SERVICE_NAME", "fut-draft")),
		ServiceVersion:     strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		HTTPAddr:           strings.TrimSpace(getEnv("HTTP_ADDR", ":8080")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:     swaggerEnabled,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := loadCatalog(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadDraft(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	cfg.MCPAddr = strings.TrimSpace(getEnv("MCP_ADDR", ":8090"))
	cfg.MCPPath = strings.TrimSpace(getEnv("MCP_PATH", "/mcp"))
	cfg.MCPAPIKey = strings.TrimSpace(getEnv("MCP_API_KEY", ""))
	if !strings.HasPrefix(cfg.MCPPath, "/") {
		return Config{}, fmt.Errorf("MCP_PATH must start with /: %q", cfg.MCPPath)
	}
	if appEnv == EnvProd && cfg.MCPAPIKey == "" {
		return Config{}, fmt.Errorf("MCP_API_KEY is required when APP_ENV=%s", EnvProd)
	}

	return cfg, nil
}

func loadCatalog(cfg *Config) error {
	source, err := parseCatalogSource(getEnv("CATALOG_SOURCE", CatalogSourceMemory))
	if err != nil {
		return err
	}
	cfg.CatalogSource = source
	cfg.CatalogFile = strings.TrimSpace(getEnv("CATALOG_FILE", ""))
	if source == CatalogSourceFile && cfg.CatalogFile == "" {
		return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", CatalogSourceFile)
	}

	cfg.DBURL = strings.TrimSpace(getEnv("DB_URL", ""))
	if source == CatalogSourcePostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when CATALOG_SOURCE=%s", CatalogSourcePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	seedEnabled, err := strconv.ParseBool(getEnv("CATALOG_SEED_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CATALOG_SEED_ENABLED: %w", err)
	}
	cfg.CatalogSeedEnabled = seedEnabled

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	circuitEnabled, err := strconv.ParseBool(getEnv("CATALOG_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CATALOG_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailures, err := getEnvAsInt("CATALOG_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return fmt.Errorf("parse CATALOG_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailures < 1 {
		return fmt.Errorf("CATALOG_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenFor, err := time.ParseDuration(getEnv("CATALOG_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("parse CATALOG_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenFor <= 0 {
		return fmt.Errorf("CATALOG_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpen, err := getEnvAsInt("CATALOG_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return fmt.Errorf("parse CATALOG_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpen < 1 {
		return fmt.Errorf("CATALOG_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.CatalogCircuitEnabled = circuitEnabled
	cfg.CatalogCircuitFailures = circuitFailures
	cfg.CatalogCircuitOpenFor = circuitOpenFor
	cfg.CatalogCircuitHalfOpen = circuitHalfOpen

	warmupWorkers, err := getEnvAsInt("CATALOG_WARMUP_WORKERS", 3)
	if err != nil {
		return fmt.Errorf("parse CATALOG_WARMUP_WORKERS: %w", err)
	}
	if warmupWorkers < 1 {
		return fmt.Errorf("CATALOG_WARMUP_WORKERS must be >= 1")
	}
	cfg.CatalogWarmupWorkers = warmupWorkers

	return nil
}

func loadDraft(cfg *Config) error {
	substitutes, err := getEnvAsInt("DRAFT_SUBSTITUTE_SLOTS", 7)
	if err != nil {
		return fmt.Errorf("parse DRAFT_SUBSTITUTE_SLOTS: %w", err)
	}
	if substitutes < 0 {
		return fmt.Errorf("DRAFT_SUBSTITUTE_SLOTS must be >= 0")
	}
	reserves, err := getEnvAsInt("DRAFT_RESERVE_SLOTS", 5)
	if err != nil {
		return fmt.Errorf("parse DRAFT_RESERVE_SLOTS: %w", err)
	}
	if reserves < 0 {
		return fmt.Errorf("DRAFT_RESERVE_SLOTS must be >= 0")
	}
	poolSize, err := getEnvAsInt("DRAFT_CANDIDATE_POOL_SIZE", 5)
	if err != nil {
		return fmt.Errorf("parse DRAFT_CANDIDATE_POOL_SIZE: %w", err)
	}
	if poolSize < 1 || poolSize > 5 {
		return fmt.Errorf("DRAFT_CANDIDATE_POOL_SIZE must be between 1 and 5")
	}
	formationOptions, err := getEnvAsInt("DRAFT_FORMATION_OPTIONS", 5)
	if err != nil {
		return fmt.Errorf("parse DRAFT_FORMATION_OPTIONS: %w", err)
	}
	if formationOptions < 1 {
		return fmt.Errorf("DRAFT_FORMATION_OPTIONS must be >= 1")
	}

	cfg.DraftSubstituteSlots = substitutes
	cfg.DraftReserveSlots = reserves
	cfg.DraftCandidatePoolSize = poolSize
	cfg.DraftFormationOptions = formationOptions
	return nil
}

func loadObservability(cfg *Config) error {
	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}
	cfg.MetricsEnabled = metricsEnabled

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	cfg.PprofEnabled = pprofEnabled
	cfg.PprofAddr = pprofAddr

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	cfg.UptraceEnabled = uptraceEnabled
	cfg.UptraceDSN = uptraceDSN

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}
	cfg.PyroscopeEnabled = pyroscopeEnabled
	cfg.PyroscopeServerAddress = pyroscopeServerAddress
	cfg.PyroscopeUploadRate = pyroscopeUploadRate
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}
	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseCatalogSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case CatalogSourceMemory, CatalogSourceFile, CatalogSourcePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid CATALOG_SOURCE %q: valid values are %s, %s, %s",
			v, CatalogSourceMemory, CatalogSourceFile, CatalogSourcePostgres)
	}
}
