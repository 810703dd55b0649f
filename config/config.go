// console/config/config.go
package config

import (
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	API           APIConfiguration
	Cache         CacheConfiguration
	Polling       PollingConfiguration
	Session       SessionConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Audit         AuditConfiguration
	Jobs          JobsConfiguration
}

// ServerConfiguration stores the console listen address and rate limit settings
type ServerConfiguration struct {
	Host              string
	Port              string
	RateLimitRequests int
	RateLimitDuration time.Duration
}

// Addr is the console listen address. The console acts with the operator's
// backend token, so it binds to loopback unless server.host says otherwise.
func (s ServerConfiguration) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// APIConfiguration stores the backend gateway settings
type APIConfiguration struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	RateLimit  float64
	RateBurst  int
}

// CacheConfiguration stores the per-service cache TTLs
type CacheConfiguration struct {
	ListTTL   time.Duration
	DetailTTL time.Duration
	StatsTTL  time.Duration
}

type PollingConfiguration struct {
	Interval time.Duration
}

// SessionConfiguration selects where the auth session is persisted ("memory" or "redis")
type SessionConfiguration struct {
	Store     string
	Namespace string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Enabled       bool
	Addr          string
	Password      string
	DB            int
	EncryptionKey string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

type AuditConfiguration struct {
	Enabled  bool
	Index    string
	LogLimit int
}

type JobsConfiguration struct {
	Enabled           bool
	OverdueSchedule   string
	ContractsSchedule string
	Timeout           time.Duration
}

var config *Configuration

func InitConfig() error {
	// .env files are optional; real environment variables win over them
	envFiles := []string{".env"}
	if env := os.Getenv("CONSOLE_ENV"); env != "" {
		envFiles = append([]string{".env." + env}, envFiles...)
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			log.Printf("Could not load %s: %v", f, err)
		}
	}

	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// SetDefaults registers the default value of every key. Tests call it
// directly to get a usable configuration without a file.
func SetDefaults() {
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", "8090")
	viper.SetDefault("server.rateLimitRequests", 100)
	viper.SetDefault("server.rateLimitDuration", "1m")

	viper.SetDefault("api.baseURL", "http://localhost:8080/api")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("api.retries", 2)
	viper.SetDefault("api.retryDelay", "1s")
	viper.SetDefault("api.rateLimit", 20.0)
	viper.SetDefault("api.rateBurst", 40)

	viper.SetDefault("cache.listTTL", "5m")
	viper.SetDefault("cache.detailTTL", "15m")
	viper.SetDefault("cache.statsTTL", "3m")
	viper.SetDefault("polling.interval", "30s")

	viper.SetDefault("session.store", "memory")
	viper.SetDefault("session.namespace", "console")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("redis.poolTimeout", "4s")
	viper.SetDefault("redis.sessionTTL", "24h")
	viper.SetDefault("dues.lockTTL", "2m")

	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("audit.enabled", false)
	viper.SetDefault("audit.index", "console-activity")
	viper.SetDefault("audit.logLimit", 1000)

	viper.SetDefault("jobs.enabled", false)
	viper.SetDefault("jobs.overdueSchedule", "0 1 * * *")
	viper.SetDefault("jobs.contractsSchedule", "30 1 * * *")
	viper.SetDefault("jobs.timeout", "5m")

	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("log.level", "info")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 retrieves a float64 value from the configuration
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
