package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configPathEnv = "SPEAKER_DIRECTORY_CONFIG"

// StoreConfig selects and parameterizes the document store driver.
type StoreConfig struct {
	Driver      string `yaml:"driver"`   // "file" or "postgres"
	FilePath    string `yaml:"filePath"` // file driver
	DatabaseURL string `yaml:"databaseUrl"`
}

// AdminConfig holds the single admin credential. PasswordHash is a bcrypt
// hash; the plaintext password never appears in configuration.
type AdminConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"passwordHash"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwtSecret"`
	TokenTTLHours  int           `yaml:"tokenTtlHours"`
	tokenTTLParsed time.Duration `yaml:"-"`
}

// TokenTTL returns the configured token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.tokenTTLParsed > 0 {
		return a.tokenTTLParsed
	}
	return 12 * time.Hour
}

// GenAIConfig defines how to contact the text-completion API.
type GenAIConfig struct {
	Endpoint       string `yaml:"endpoint"`
	Model          string `yaml:"model"`
	APIKey         string `yaml:"apiKey"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout returns the bounded timeout applied to upstream calls.
func (g GenAIConfig) Timeout() time.Duration {
	if g.TimeoutSeconds > 0 {
		return time.Duration(g.TimeoutSeconds) * time.Second
	}
	return 20 * time.Second
}

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
}

// MailerConfig holds outbound email settings. Provider "ses" uses AWS SES;
// anything else falls back to a no-op mailer.
type MailerConfig struct {
	Provider    string    `yaml:"provider"`
	FromAddress string    `yaml:"fromAddress"`
	FromName    string    `yaml:"fromName"`
	AdminEmail  string    `yaml:"adminEmail"` // nomination notices go here
	SES         SESConfig `yaml:"ses"`
}

// Config holds all configuration for the application.
type Config struct {
	Environment    string       `yaml:"-"`
	Port           string       `yaml:"port"`
	AllowedOrigins []string     `yaml:"allowedOrigins"`
	Store          StoreConfig  `yaml:"store"`
	Admin          AdminConfig  `yaml:"admin"`
	Auth           AuthConfig   `yaml:"auth"`
	GenAI          GenAIConfig  `yaml:"genai"`
	Mailer         MailerConfig `yaml:"mailer"`
}

// Load reads the optional YAML file named by SPEAKER_DIRECTORY_CONFIG, then
// applies environment variables on top. Outside production a .env file is
// loaded first so local development needs no exported variables.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := defaultConfig()
	cfg.Environment = env

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Auth.tokenTTLParsed = time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Port: "8080",
		Store: StoreConfig{
			Driver:   "file",
			FilePath: "data/directory.json",
		},
		Auth: AuthConfig{
			TokenTTLHours: 12,
		},
		GenAI: GenAIConfig{
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			Model:          "gemini-1.5-flash",
			TimeoutSeconds: 20,
		},
		Mailer: MailerConfig{
			Provider: "noop",
		},
	}
}

func (c *Config) applyEnvOverrides() {
	setString(&c.Port, "PORT")
	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.FilePath, "STORE_FILE_PATH")
	setString(&c.Store.DatabaseURL, "DATABASE_URL")
	setString(&c.Admin.Username, "ADMIN_USERNAME")
	setString(&c.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.GenAI.Endpoint, "GENAI_ENDPOINT")
	setString(&c.GenAI.Model, "GENAI_MODEL")
	setString(&c.GenAI.APIKey, "GENAI_API_KEY")
	setString(&c.Mailer.Provider, "MAILER_PROVIDER")
	setString(&c.Mailer.FromAddress, "MAILER_FROM_ADDRESS")
	setString(&c.Mailer.FromName, "MAILER_FROM_NAME")
	setString(&c.Mailer.AdminEmail, "MAILER_ADMIN_EMAIL")
	setString(&c.Mailer.SES.Region, "AWS_SES_REGION")
	setString(&c.Mailer.SES.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&c.Mailer.SES.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")

	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Auth.TokenTTLHours = n
		}
	}
	if v := os.Getenv("GENAI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.GenAI.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitOrigins(v)
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
