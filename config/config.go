// Package config loads the library's declarative configuration from layered
// TOML files and the process environment, once per process.
//
// Sources are merged in order, later sources winning:
//
//  1. application.toml
//  2. sql-types.toml (deprecated name, still honored with a warning)
//  3. sqltypes.toml
//  4. the file named by the SQLTYPES_CONFIG_PATH environment variable
//     (deprecated: SQL_TYPES_CONFIG)
//  5. SQLTYPES_* environment variables, mapped to dotted keys
//     (SQLTYPES_MAPPER -> sqltypes.mapper)
//
// Nested TOML tables flatten to dotted keys, so
//
//	[sqltypes]
//	mapper = "msgpack"
//
// and `sqltypes.mapper = "msgpack"` are equivalent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/SergeiKhmelevSPA/sqltypes/mapper"
)

const (
	// PathEnvVar names the environment variable holding an extra config file path.
	PathEnvVar = "SQLTYPES_CONFIG_PATH"
	// DeprecatedPathEnvVar is the old name for PathEnvVar.
	DeprecatedPathEnvVar = "SQL_TYPES_CONFIG"

	// FileName is the library's own configuration file.
	FileName = "sqltypes.toml"
	// DeprecatedFileName is the old name for FileName.
	DeprecatedFileName = "sql-types.toml"
	// ApplicationFileName is the application-wide configuration file, loaded
	// first so the library files can override it.
	ApplicationFileName = "application.toml"

	envPrefix = "SQLTYPES_"
)

// Key is a configuration property with a current and an optional deprecated
// name. Resolving through the deprecated name logs a warning once.
type Key struct {
	Name       string
	Deprecated string
}

// Keys understood by the library itself. Applications may define their own.
var (
	// KeyMapper selects the process mapper by registered name.
	KeyMapper = Key{Name: "sqltypes.mapper", Deprecated: "sqltypes.json.mapper"}
)

// Config holds the merged configuration. It is immutable after Load.
type Config struct {
	values map[string]string
	logger *zap.Logger
	warned sync.Map // deprecated key name -> struct{}
}

type settings struct {
	dir       string
	logger    *zap.Logger
	lookupEnv func(string) (string, bool)
	environ   func() []string
}

type Option func(*settings)

// WithDir sets the directory searched for the candidate files. Defaults to
// the current working directory.
func WithDir(dir string) Option { return func(s *settings) { s.dir = dir } }

// WithLogger sets the logger used for load warnings and errors. Defaults to
// the global zap logger.
func WithLogger(l *zap.Logger) Option { return func(s *settings) { s.logger = l } }

// WithLookupEnv replaces os.LookupEnv, for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(s *settings) { s.lookupEnv = fn }
}

// WithEnviron replaces os.Environ, for tests.
func WithEnviron(fn func() []string) Option { return func(s *settings) { s.environ = fn } }

// Load builds a Config from the layered sources. Unreadable or malformed
// files are logged and skipped; a missing file is not an error.
func Load(opts ...Option) *Config {
	s := settings{dir: ".", lookupEnv: os.LookupEnv, environ: os.Environ}
	for _, f := range opts {
		f(&s)
	}
	if s.logger == nil {
		s.logger = zap.L()
	}
	c := &Config{values: make(map[string]string), logger: s.logger}

	customPath, fromDeprecatedVar := s.lookupEnv(DeprecatedPathEnvVar)
	if fromDeprecatedVar {
		s.logger.Warn("deprecated environment variable",
			zap.String("deprecated", DeprecatedPathEnvVar),
			zap.String("use", PathEnvVar))
	} else {
		customPath, _ = s.lookupEnv(PathEnvVar)
	}

	paths := []string{
		filepath.Join(s.dir, ApplicationFileName),
		filepath.Join(s.dir, DeprecatedFileName),
		filepath.Join(s.dir, FileName),
	}
	if customPath != "" {
		paths = append(paths, customPath)
	}
	for _, path := range paths {
		if err := c.loadFile(path); err != nil {
			s.logger.Error("can't load configuration file",
				zap.String("path", path), zap.Error(err))
			continue
		}
		if filepath.Base(path) == DeprecatedFileName {
			if _, err := os.Stat(path); err == nil {
				s.logger.Warn("deprecated configuration file name",
					zap.String("deprecated", DeprecatedFileName),
					zap.String("use", FileName))
			}
		}
	}

	for _, kv := range s.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) {
			continue
		}
		if name == PathEnvVar {
			continue
		}
		key := "sqltypes." + strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(name, envPrefix)), "_", ".")
		c.values[key] = value
	}

	c.applyMapper()
	return c
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return err
	}
	flatten("", raw, c.values)
	return nil
}

func flatten(prefix string, raw map[string]any, out map[string]string) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, out)
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			s = fmt.Sprintf("%v", v)
		}
		out[key] = s
	}
}

// applyMapper selects the process mapper when configured.
func (c *Config) applyMapper() {
	name, ok := c.resolve(KeyMapper)
	if !ok {
		return
	}
	if err := mapper.SetDefault(name); err != nil {
		c.logger.Error("can't select configured mapper",
			zap.String("mapper", name), zap.Error(err))
	}
}

// resolve returns the raw value for key, preferring the current name and
// falling back to the deprecated one.
func (c *Config) resolve(key Key) (string, bool) {
	if v, ok := c.values[key.Name]; ok {
		return v, true
	}
	if key.Deprecated == "" {
		return "", false
	}
	v, ok := c.values[key.Deprecated]
	if ok {
		if _, dup := c.warned.LoadOrStore(key.Deprecated, struct{}{}); !dup {
			c.logger.Warn("deprecated configuration property",
				zap.String("deprecated", key.Deprecated),
				zap.String("use", key.Name))
		}
	}
	return v, ok
}

// Has reports whether key is set under either of its names.
func (c *Config) Has(key Key) bool {
	_, ok := c.resolve(key)
	return ok
}

// String returns the string value for key.
func (c *Config) String(key Key) (string, bool) { return c.resolve(key) }

// Int returns the int value for key. A set but malformed value is logged and
// reported as absent.
func (c *Config) Int(key Key) (int, bool) {
	raw, ok := c.resolve(key)
	if !ok {
		return 0, false
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		c.logger.Error("malformed integer property", zap.String("key", key.Name), zap.Error(err))
		return 0, false
	}
	return v, true
}

// Int64 returns the int64 value for key.
func (c *Config) Int64(key Key) (int64, bool) {
	raw, ok := c.resolve(key)
	if !ok {
		return 0, false
	}
	v, err := cast.ToInt64E(raw)
	if err != nil {
		c.logger.Error("malformed integer property", zap.String("key", key.Name), zap.Error(err))
		return 0, false
	}
	return v, true
}

// Bool returns the bool value for key.
func (c *Config) Bool(key Key) (bool, bool) {
	raw, ok := c.resolve(key)
	if !ok {
		return false, false
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		c.logger.Error("malformed boolean property", zap.String("key", key.Name), zap.Error(err))
		return false, false
	}
	return v, true
}

// Duration returns the duration value for key, parsed in time.ParseDuration
// syntax.
func (c *Config) Duration(key Key) (time.Duration, bool) {
	raw, ok := c.resolve(key)
	if !ok {
		return 0, false
	}
	v, err := cast.ToDurationE(raw)
	if err != nil {
		c.logger.Error("malformed duration property", zap.String("key", key.Name), zap.Error(err))
		return 0, false
	}
	return v, true
}

// Values returns a copy of the merged key/value set.
func (c *Config) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// Default returns the process-wide configuration, loading it on first use.
func Default() *Config {
	defaultOnce.Do(func() { defaultCfg = Load() })
	return defaultCfg
}
