package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanRulev/nihongo.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `mapstructure:"env" validate:"oneof=development production"`
	LogLevel   string           `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Store      StoreConfig      `mapstructure:"store"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
	Translator TranslatorConfig `mapstructure:"translator"`
}

type StoreConfig struct {
	Backend string   `mapstructure:"backend" validate:"oneof=file sqlite postgres mysql"`
	Path    string   `mapstructure:"path" validate:"required"`
	DB      DBConfig `mapstructure:"db"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port" validate:"omitempty,numeric"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type SchedulerConfig struct {
	Strategy string `mapstructure:"strategy" validate:"oneof=leitner frequency"`
	MaxBox   uint   `mapstructure:"max_box" validate:"min=2,max=16"`
	RandSeed int64  `mapstructure:"rand_seed"`
}

type QuizConfig struct {
	Count int  `mapstructure:"count" validate:"min=1,max=1000"`
	Exact bool `mapstructure:"exact"`
}

type TranslatorConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
	Source  string        `mapstructure:"source" validate:"required"`
	Target  string        `mapstructure:"target" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "warn")

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.path", "cards.json")
	v.SetDefault("store.db.conn.host", "")
	v.SetDefault("store.db.conn.port", "")
	v.SetDefault("store.db.conn.user", "")
	v.SetDefault("store.db.conn.password", "")
	v.SetDefault("store.db.conn.name", "")
	v.SetDefault("store.db.conn.ssl", "disable")
	v.SetDefault("store.db.cfg.max_open_conns", 4)
	v.SetDefault("store.db.cfg.max_idle_conns", 2)
	v.SetDefault("store.db.cfg.conn_max_life_time", "5m")
	v.SetDefault("store.db.cfg.conn_max_idle_time", "1m")

	v.SetDefault("scheduler.strategy", "leitner")
	v.SetDefault("scheduler.max_box", 5)
	v.SetDefault("scheduler.rand_seed", 0)

	v.SetDefault("quiz.count", 10)
	v.SetDefault("quiz.exact", false)

	v.SetDefault("translator.enabled", false)
	v.SetDefault("translator.base_url", "https://api.mymemory.translated.net")
	v.SetDefault("translator.timeout", "5s")
	v.SetDefault("translator.source", "ja")
	v.SetDefault("translator.target", "fr")
}

// Init reads configFile, or config.yaml from the usual places when it is
// empty. Environment variables use the NIHONGO_ prefix, e.g.
// NIHONGO_STORE_PATH for store.path.
func Init(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NIHONGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("store.db.conn.password", "NIHONGO_STORE_DB_CONN_PASSWORD", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("store.db.conn.user", "NIHONGO_STORE_DB_CONN_USER", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}

	if configFile == "" {
		configFile = os.Getenv("NIHONGO_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "nihongo"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "nihongo"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and the connection settings the chosen
// backend needs. Call it again after overriding fields from flags.
func (c *Config) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}

	switch c.Store.Backend {
	case "postgres", "mysql":
		conn := c.Store.DB.Conn
		if conn.Host == "" || conn.User == "" || conn.Name == "" {
			return fmt.Errorf("validation failed: store.db.conn host, user and name are required for %s", c.Store.Backend)
		}
	}
	return nil
}
