package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Model      ModelConfig
	Kubernetes KubernetesConfig
	Dataset    DatasetConfig
	Database   DatabaseConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

// ModelConfig selects where the artifact is read from: "file", "http" or "configmap".
type ModelConfig struct {
	Source             string
	Path               string
	URL                string
	FetchTimeout       time.Duration
	ConfigMapNamespace string
	ConfigMapName      string
	ConfigMapKey       string
}

type KubernetesConfig struct {
	InCluster      bool
	KubeConfigPath string
}

// DatasetConfig selects the exploration data source: "file", "postgres" or "none".
type DatasetConfig struct {
	Source  string
	Path    string
	Table   string
	OrderBy string
	MaxRows int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN builds a postgres URL with user, password and database escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("MODEL_SOURCE", "file")
	v.SetDefault("MODEL_PATH", "model_car_price.json")
	v.SetDefault("MODEL_URL", "")
	v.SetDefault("MODEL_FETCH_TIMEOUT", "30s")
	v.SetDefault("MODEL_CONFIGMAP_NAMESPACE", "default")
	v.SetDefault("MODEL_CONFIGMAP_NAME", "car-price-model")
	v.SetDefault("MODEL_CONFIGMAP_KEY", "model.json")
	v.SetDefault("KUBERNETES_IN_CLUSTER", false)
	v.SetDefault("KUBERNETES_KUBECONFIG", "")
	v.SetDefault("DATASET_SOURCE", "file")
	v.SetDefault("DATASET_PATH", "CarPrice.csv")
	v.SetDefault("DATASET_TABLE", "car_price")
	v.SetDefault("DATASET_ORDER_BY", "")
	v.SetDefault("DATASET_MAX_ROWS", 1000)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "car_price")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 1)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")

	// Env
	v.AutomaticEnv()

	fetchTimeout, err := time.ParseDuration(v.GetString("MODEL_FETCH_TIMEOUT"))
	if err != nil {
		fetchTimeout = 30 * time.Second
	}

	lifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 5 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Model: ModelConfig{
			Source:             v.GetString("MODEL_SOURCE"),
			Path:               v.GetString("MODEL_PATH"),
			URL:                v.GetString("MODEL_URL"),
			FetchTimeout:       fetchTimeout,
			ConfigMapNamespace: v.GetString("MODEL_CONFIGMAP_NAMESPACE"),
			ConfigMapName:      v.GetString("MODEL_CONFIGMAP_NAME"),
			ConfigMapKey:       v.GetString("MODEL_CONFIGMAP_KEY"),
		},
		Kubernetes: KubernetesConfig{
			InCluster:      v.GetBool("KUBERNETES_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBERNETES_KUBECONFIG"),
		},
		Dataset: DatasetConfig{
			Source:  v.GetString("DATASET_SOURCE"),
			Path:    v.GetString("DATASET_PATH"),
			Table:   v.GetString("DATASET_TABLE"),
			OrderBy: v.GetString("DATASET_ORDER_BY"),
			MaxRows: v.GetInt("DATASET_MAX_ROWS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
	}

	switch cfg.Model.Source {
	case "file", "configmap":
	case "http":
		if cfg.Model.URL == "" {
			return nil, fmt.Errorf("MODEL_URL is required when MODEL_SOURCE is http")
		}
	default:
		return nil, fmt.Errorf("unknown MODEL_SOURCE %q", cfg.Model.Source)
	}
	switch cfg.Dataset.Source {
	case "file", "postgres", "none":
	default:
		return nil, fmt.Errorf("unknown DATASET_SOURCE %q", cfg.Dataset.Source)
	}

	return cfg, nil
}
