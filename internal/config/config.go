package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
	"gopkg.in/yaml.v3"
)

const defaultPageSize = "1MiB"

type Config struct {
	ScenariosDir string `yaml:"scenarios_dir" toml:"scenarios_dir"`
	TargetsDir   string `yaml:"targets_dir" toml:"targets_dir"`
	RunsDBPath   string `yaml:"runs_db" toml:"runs_db"`
	LogLevel     string `yaml:"log_level" toml:"log_level"`
	LogFormat    string `yaml:"log_format" toml:"log_format"`
	Workers      int    `yaml:"workers" toml:"workers"`
	OutDir       string `yaml:"out_dir" toml:"out_dir"`
	PageSize     string `yaml:"parquet_page_size" toml:"parquet_page_size"`

	// PageSizeBytes is derived from PageSize by Validate.
	PageSizeBytes int64 `yaml:"-" toml:"-"`
}

// Load reads DATAZ_* variables from the environment, falling back to a .env
// file in the working directory and then to defaults.
func Load() *Config {
	dotEnv, _ := readDotEnv(".env")
	get := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value := dotEnv[key]; value != "" {
			return value
		}
		return defaultValue
	}

	workers, err := strconv.Atoi(get("DATAZ_WORKERS", ""))
	if err != nil {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Config{
		ScenariosDir: get("DATAZ_SCENARIOS_DIR", "./scenarios"),
		TargetsDir:   get("DATAZ_TARGETS_DIR", "./targets"),
		RunsDBPath:   get("DATAZ_RUNS_DB", "./dataz-runs.sqlite"),
		LogLevel:     get("DATAZ_LOG_LEVEL", "info"),
		LogFormat:    get("DATAZ_LOG_FORMAT", "console"),
		Workers:      workers,
		OutDir:       get("DATAZ_OUT_DIR", "./out"),
		PageSize:     get("DATAZ_PARQUET_PAGE_SIZE", defaultPageSize),
	}
}

// LoadFile overlays the YAML or TOML file at path onto c. Keys missing from
// the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		_, err = toml.Decode(string(data), c)
	default:
		return fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports every problem at once and resolves derived values.
func (c *Config) Validate() error {
	var errs []string

	if c.ScenariosDir == "" {
		errs = append(errs, "scenarios_dir is required")
	}
	if c.TargetsDir == "" {
		errs = append(errs, "targets_dir is required")
	}
	if c.RunsDBPath == "" {
		errs = append(errs, "runs_db is required")
	}
	if c.Workers <= 0 {
		errs = append(errs, "workers must be greater than 0")
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, "log_format must be console or json")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "log_level must be debug, info, warn or error")
	}
	if c.PageSize == "" {
		c.PageSize = defaultPageSize
	}
	if n, err := units.RAMInBytes(c.PageSize); err != nil || n <= 0 {
		errs = append(errs, fmt.Sprintf("parquet_page_size %q is not a positive size", c.PageSize))
	} else {
		c.PageSizeBytes = n
	}

	if len(errs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("invalid config:\n")
	for _, e := range errs {
		sb.WriteString(" - ")
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	return fmt.Errorf("%s", strings.TrimRight(sb.String(), "\n"))
}

// readDotEnv parses KEY=VALUE lines. A missing file is not an error.
func readDotEnv(path string) (map[string]string, error) {
	env := make(map[string]string)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, err
	}

	for line := range strings.SplitSeq(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		val = strings.TrimSpace(val)
		if strings.HasPrefix(val, "\"") {
			unquoted, err := strconv.Unquote(val)
			if err != nil {
				return nil, fmt.Errorf("failed to unquote %s: %w", key, err)
			}
			val = unquoted
		}
		env[key] = val
	}
	return env, nil
}
