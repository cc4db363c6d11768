package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod" validate:"oneof=local dev test prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Backend    Backend    `yaml:"backend"`
	Redis      Redis      `yaml:"redis"`
	Cache      Cache      `yaml:"cache"`
	Auth       Auth       `yaml:"auth"`
	Site       Site       `yaml:"site"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout          time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
	StaticDir        string        `yaml:"static_dir" env-default:"./static"`
}

type Backend struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-required:"true" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

// Redis is optional. With an empty address responses are not cached.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type Cache struct {
	SiteTTL     time.Duration `yaml:"site_ttl" env-default:"5m"`
	PreviewTTL  time.Duration `yaml:"preview_ttl" env-default:"1h"`
	TemplateTTL time.Duration `yaml:"template_ttl" env-default:"5m"`
}

// Auth configures how viewers are recognised. Without a secret token
// signatures are not verified locally and the backend stays the authority.
type Auth struct {
	Secret     string `yaml:"secret" env:"JWT_SECRET"`
	CookieName string `yaml:"cookie_name" env-default:"access_token"`
}

// Site holds the public URLs the pages link to. The admin bar is shown
// unless HideAdminBar is set.
type Site struct {
	MediaURL         string `yaml:"media_url" env:"MEDIA_URL"`
	ListingURL       string `yaml:"listing_url" env-default:"/salons"`
	TemplatesURL     string `yaml:"templates_url" env-default:"/templates"`
	LoginURL         string `yaml:"login_url" env-default:"/login"`
	PortalURL        string `yaml:"portal_url" env-default:"/portal"`
	PlaceholderCover string `yaml:"placeholder_cover" env-default:"/static/placeholder-cover.svg"`
	PlaceholderAbout string `yaml:"placeholder_about" env-default:"/static/placeholder-about.svg"`
	PlaceholderLogo  string `yaml:"placeholder_logo"`
	HideAdminBar     bool   `yaml:"hide_admin_bar" env:"HIDE_ADMIN_BAR"`
}

var validate = validator.New()

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// LoadByPath reads the YAML file at configPath, applies environment
// overrides (after loading an optional .env file) and validates the result.
func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("env file reading error: %w", err)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("config reading error: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &cfg, nil
}

// ResolvePath returns the config path from the command line flag or the
// CONFIG_PATH environment variable, the flag taking priority.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}
