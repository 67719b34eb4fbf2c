package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	LogLevel        string
	OperatorWorkers int

	// AMQPURL is optional; change events are only published when it is set.
	AMQPURL      string
	AMQPExchange string
}

// LoadDotEnv copies variables from the given .env file into the process
// environment without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         "info",
		OperatorWorkers:  1,
		AMQPExchange:     "finance-tracker",
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")
	overrideString(&env.AMQPURL, "AMQP_URL")
	overrideString(&env.AMQPExchange, "AMQP_EXCHANGE")

	if envWorkers := os.Getenv("OPERATOR_WORKERS"); len(envWorkers) != 0 {
		workers, err := strconv.Atoi(envWorkers)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", envWorkers, err)
		}
		if workers < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %d: must be at least 1", workers)
		}
		env.OperatorWorkers = workers
	}

	if port, err := strconv.Atoi(env.HTTPPort); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %q", env.HTTPPort)
	}

	return &env, nil
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
