package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultHost               = "127.0.0.1"
	defaultPort               = 8080
	defaultMaxRequestBodySize = "1KB"
	defaultShutdownTimeout    = 10 * time.Second

	// DefaultCost is the work factor used when an identifier carries none.
	DefaultCost = 4

	defaultQueueFactor     = 4
	defaultScryptR         = 8
	defaultScryptP         = 1
	defaultScryptMaxMemory = 1024 * 1024
	defaultArgon2Memory    = 19 * 1024
	defaultArgon2Threads   = 1
	defaultArgon2MaxMemory = 256 * 1024
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
			ShutdownTimeout   time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Hashing HashingConfig `json:"hashing" yaml:"hashing"`
}

// HashingConfig tunes the hash engine and the worker pool that runs it.
type HashingConfig struct {
	// DefaultCost applies when the algorithm identifier has no usable cost segment
	DefaultCost int `json:"defaultCost" yaml:"defaultCost"`

	// Workers is the number of goroutines running hash computations
	Workers int `json:"workers" yaml:"workers"`

	// QueueSize is how many jobs may wait for a free worker
	QueueSize int `json:"queueSize" yaml:"queueSize"`

	Scrypt ScryptConfig `json:"scrypt" yaml:"scrypt"`
	Argon2 Argon2Config `json:"argon2" yaml:"argon2"`
}

// ScryptConfig holds the scrypt parameters that are not per-request.
type ScryptConfig struct {
	R int `json:"r" yaml:"r"`
	P int `json:"p" yaml:"p"`

	// MaxMemory in KiB bounds 128*r*N on both hash and verify
	MaxMemory uint64 `json:"maxMemory" yaml:"maxMemory"`
}

// Argon2Config holds the Argon2id parameters that are not per-request.
type Argon2Config struct {
	// Memory cost in KiB for new hashes
	Memory uint32 `json:"memory" yaml:"memory"`

	Threads uint8 `json:"threads" yaml:"threads"`

	// MaxMemory rejects artifacts demanding more memory than this on verify
	MaxMemory uint32 `json:"maxMemory" yaml:"maxMemory"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := path
			if !filepath.IsAbs(path) {
				abs = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: HASHING_DEFAULTCOST -> hashing.defaultCost (not hashing.defaultcost)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every zero value that has a sensible default.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.Host) == "" {
		cfg.HTTP.Host = defaultHost
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Timeouts.ShutdownTimeout == 0 {
		cfg.HTTP.Timeouts.ShutdownTimeout = defaultShutdownTimeout
	}

	h := &cfg.Hashing
	if h.DefaultCost == 0 {
		h.DefaultCost = DefaultCost
	}
	if h.Workers <= 0 {
		h.Workers = runtime.NumCPU()
	}
	if h.QueueSize <= 0 {
		h.QueueSize = h.Workers * defaultQueueFactor
	}
	if h.Scrypt.R == 0 {
		h.Scrypt.R = defaultScryptR
	}
	if h.Scrypt.P == 0 {
		h.Scrypt.P = defaultScryptP
	}
	if h.Scrypt.MaxMemory == 0 {
		h.Scrypt.MaxMemory = defaultScryptMaxMemory
	}
	if h.Argon2.Memory == 0 {
		h.Argon2.Memory = defaultArgon2Memory
	}
	if h.Argon2.Threads == 0 {
		h.Argon2.Threads = defaultArgon2Threads
	}
	if h.Argon2.MaxMemory == 0 {
		h.Argon2.MaxMemory = defaultArgon2MaxMemory
	}
}

// Default returns a configuration built purely from code defaults.
func Default() *Config {
	cfg := new(Config)
	cfg.Env.ServiceName = "hashsvc"
	cfg.Env.Log.Level = "info"
	applyDefaults(cfg)

	return cfg
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
