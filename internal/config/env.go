package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	Port    string `envconfig:"PORT" default:"5000"`
	GinMode string `envconfig:"GIN_MODE"`

	DBHost         string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort         string `envconfig:"DB_PORT" default:"3306"`
	DBUser         string `envconfig:"DB_USER" default:"root"`
	DBPassword     string `envconfig:"DB_PASSWORD"`
	DBName         string `envconfig:"DB_NAME" default:"carpool"`
	DBEnsureSchema bool   `envconfig:"DB_ENSURE_SCHEMA" default:"false"`

	// Empty means every origin is allowed.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"carpool.events"`

	UserCacheTTL time.Duration `envconfig:"USER_CACHE_TTL" default:"1m"`
}

// AppAddr is the listen address derived from Port.
func (e Env) AppAddr() string {
	p := strings.TrimSpace(e.Port)
	if p == "" {
		p = "5000"
	}
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("[CONFIG] loaded .env")
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, err
	}
	env.GinMode = strings.TrimSpace(env.GinMode)
	return env, nil
}
