package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "jobscout"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"
)

// DefaultWorkdayTargets is queried when a request supplies no workday parameter.
const DefaultWorkdayTargets = "pwc.wd3.myworkdayjobs.com:Global_Experienced_Careers:pwc"

// Config contains process-wide defaults for the aggregation pipeline and the
// HTTP server. Values are resolved file < env; request parameters override all.
type Config struct {
	DefaultQuery   string `json:"default_query"`
	WorkdayTargets string `json:"workday_targets"`
	ListenAddr     string `json:"listen_addr"`
	RequestTimeout int    `json:"request_timeout_seconds"`
	AmazonPageSize int    `json:"amazon_page_size"`
	AmazonMaxPages int    `json:"amazon_max_pages"`
}

func DefaultConfig() Config {
	return Config{
		DefaultQuery:   envString("JOBSCOUT_DEFAULT_QUERY", "Full Stack"),
		WorkdayTargets: envString("JOBSCOUT_WORKDAY_TARGETS", DefaultWorkdayTargets),
		ListenAddr:     envString("JOBSCOUT_LISTEN_ADDR", ":5057"),
		RequestTimeout: envInt("JOBSCOUT_REQUEST_TIMEOUT", 30),
		AmazonPageSize: envInt("JOBSCOUT_AMAZON_PAGE_SIZE", 50),
		AmazonMaxPages: envInt("JOBSCOUT_AMAZON_MAX_PAGES", 5),
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte(""), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// MongoURI assembles the Atlas connection string from the environment.
// Returns false when the deployment runs without persistence configured.
func MongoURI() (string, bool) {
	user := strings.TrimSpace(os.Getenv("MONGODB_USER"))
	password := strings.TrimSpace(os.Getenv("MONGODB_PASSWORD"))
	host := strings.TrimSpace(os.Getenv("MONGODB_HOST"))
	db := strings.TrimSpace(os.Getenv("MONGODB_DB"))
	if user == "" || password == "" || host == "" {
		return "", false
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s", user, password, host, db), true
}

// GeminiAPIKey is required for strict validation and job insights.
func GeminiAPIKey() string {
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
}

func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("JOBSCOUT_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
