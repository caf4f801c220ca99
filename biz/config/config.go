package config

import (
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	envRunMode = "RUN_ENV"

	ModeDevelopment = "development"
	ModeProduction  = "production"

	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	defaultAddr     = ":3000"
	defaultHashCost = 10
)

// Mode returns the runtime mode selected by RUN_ENV, development by default.
func Mode() string {
	if mode := os.Getenv(envRunMode); mode != "" {
		return mode
	}
	return ModeDevelopment
}

// FilePath returns the config file of the given mode inside dir.
func FilePath(dir, mode string) string {
	return filepath.Join(dir, "deploy."+mode+".yml")
}

// Load reads a yaml config file. ${VAR} references are expanded from the
// environment before parsing.
func Load(path string) (*ServiceConf, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	conf := &ServiceConf{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), conf); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	conf.setDefaults()

	if err := conf.validate(); err != nil {
		return nil, err
	}

	hlog.Debugf("config debug: %+v", conf.Server)
	return conf, nil
}

func (c *ServiceConf) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMongo
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "users"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "users"
	}
	if c.Hash.Cost <= 0 {
		c.Hash.Cost = defaultHashCost
	}
}

func (c *ServiceConf) validate() error {
	switch c.Storage.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo storage driver")
		}
	case DriverMySQL:
		if c.MySQL.IP == "" || c.MySQL.DBName == "" {
			return errors.New("mysql.ip and mysql.db_name are required for the mysql storage driver")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("sqlite.path is required for the sqlite storage driver")
		}
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// RedisEnabled reports whether a redis endpoint is configured.
func (c *ServiceConf) RedisEnabled() bool {
	return c.Redis.IP != ""
}

type ServiceConf struct {
	Server    ServerConf      `yaml:"server"`
	Storage   StorageConf     `yaml:"storage"`
	MySQL     MySQLConf       `yaml:"mysql"`
	SQLite    SQLiteConf      `yaml:"sqlite"`
	Mongo     MongoConf       `yaml:"mongo"`
	Redis     RedisConf       `yaml:"redis"`
	CORS      CORSConf        `yaml:"cors"`
	RateLimit []RateLimitConf `yaml:"rate_limit"`
	Logger    LoggerConf      `yaml:"logger"`
	Hash      HashConf        `yaml:"hash"`
}

type ServerConf struct {
	Addr string `yaml:"addr"`
}

type StorageConf struct {
	Driver string `yaml:"driver"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SQLiteConf struct {
	Path string `yaml:"path"`
}

type MongoConf struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type RateLimitConf struct {
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

type HashConf struct {
	Cost int `yaml:"cost"`
}
