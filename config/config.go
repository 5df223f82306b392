// Package config loads the harness settings from an optional YAML file and COURSES_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "COURSES"

type Config struct {
	HTTPClient HTTPClient `mapstructure:"http_client" validate:"required"`
	TestUser   TestUser   `mapstructure:"test_user" validate:"required"`
	TestData   TestData   `mapstructure:"test_data" validate:"required"`
	Log        Log        `mapstructure:"log" validate:"required"`
	Faker      Faker      `mapstructure:"faker"`
	ReportDir  string     `mapstructure:"report_dir" validate:"required"`
}

// HTTPClient describes how to reach the service under test.
type HTTPClient struct {
	URL     string        `mapstructure:"url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// ClientURL is URL with exactly one trailing slash. Static file URLs returned by the
// service are built from it.
func (h HTTPClient) ClientURL() string {
	return strings.TrimRight(h.URL, "/") + "/"
}

// TestUser is the account the private clients log in with. The suite creates it when it
// does not exist yet.
type TestUser struct {
	Email    string `mapstructure:"email" validate:"required,email"`
	Password string `mapstructure:"password" validate:"required"`
}

type TestData struct {
	ImagePNGFile string `mapstructure:"image_png_file" validate:"required"`
}

type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Faker controls generated request defaults. Seed 0 means a different random sequence on
// every run.
type Faker struct {
	Seed int64 `mapstructure:"seed"`
}

var defaults = map[string]interface{}{
	"http_client.url":          "http://localhost:8000",
	"http_client.timeout":      "100s",
	"test_user.email":          "user@gmail.com",
	"test_user.password":       "password",
	"test_data.image_png_file": "testdata/image.png",
	"log.level":                "info",
	"log.format":               "console",
	"faker.seed":               0,
	"report_dir":               "allure-results",
}

// Load reads configuration. If path is empty only defaults and the environment are used;
// otherwise the file must exist. Environment variables such as COURSES_HTTP_CLIENT_URL
// take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct rules and reports every failing key.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
}

// Properties renders the settings as flat key=value pairs, in a fixed order. The password is
// masked.
func (c *Config) Properties() []string {
	return []string{
		"http_client.url=" + c.HTTPClient.URL,
		"http_client.timeout=" + c.HTTPClient.Timeout.String(),
		"test_user.email=" + c.TestUser.Email,
		"test_user.password=***",
		"test_data.image_png_file=" + c.TestData.ImagePNGFile,
		"log.level=" + c.Log.Level,
		"log.format=" + c.Log.Format,
		fmt.Sprintf("faker.seed=%d", c.Faker.Seed),
		"report_dir=" + c.ReportDir,
	}
}
