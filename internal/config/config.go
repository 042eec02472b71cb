package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig     `validate:"required"`
	Server     ServerConfig         `validate:"required"`
	Logging    LoggingConfig        `validate:"required"`
	Postgres   PostgresConfig       `validate:"required"`
	PDFShift   PDFShiftConfig       `validate:"required"`
	Calendar   GoogleCalendarConfig `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// PDFShiftConfig holds the credentials for the external HTML to PDF
// conversion service. The API key is resolved at process startup and
// must never be compiled into source.
type PDFShiftConfig struct {
	APIKey         string `validate:"required"`
	Endpoint       string `validate:"required"`
	TimeoutSeconds int
}

type GoogleCalendarConfig struct {
	BaseURL        string `validate:"required"`
	TimeoutSeconds int
}

func NewConfig() (*Configuration, error) {
	// Load .env if present so local runs pick up secrets without exporting them
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/healthmoney")

	v.SetEnvPrefix("HEALTHMONEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeAPI))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	// Registering the key lets AutomaticEnv surface it during Unmarshal;
	// the value itself always comes from HEALTHMONEY_PDFSHIFT_APIKEY.
	v.SetDefault("pdfshift.apikey", "")
	v.SetDefault("pdfshift.endpoint", "https://api.pdfshift.io/v3/convert/pdf")
	v.SetDefault("pdfshift.timeoutseconds", 30)
	v.SetDefault("calendar.baseurl", "https://www.googleapis.com/calendar/v3")
	v.SetDefault("calendar.timeoutseconds", 15)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		PDFShift: PDFShiftConfig{
			Endpoint:       "https://api.pdfshift.io/v3/convert/pdf",
			TimeoutSeconds: 30,
		},
		Calendar: GoogleCalendarConfig{
			BaseURL:        "https://www.googleapis.com/calendar/v3",
			TimeoutSeconds: 15,
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User, c.Password, c.DBName, c.Host, c.Port, c.SSLMode,
	)
}

func (c PDFShiftConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c GoogleCalendarConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
