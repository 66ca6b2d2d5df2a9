package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageBackendFile       = "file"
	StorageBackendGitHub     = "github"
	StorageBackendPostgreSQL = "postgresql"

	UploadBackendDisk  = "disk"
	UploadBackendMinio = "minio"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	JWT        JWT        `yaml:"jwt"`
	Storage    Storage    `yaml:"storage"`
	Admin      Admin      `yaml:"admin"`
	Upload     Upload     `yaml:"upload"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
}

type JWT struct {
	Secret         string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env-default:"24h"`
}

// Storage selects the document store backend. Exactly one backend section is
// consulted, matching the Backend value.
type Storage struct {
	Backend    string        `yaml:"backend" env-default:"file"`
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	File       FileStorage   `yaml:"file"`
	GitHub     GitHub        `yaml:"github"`
	PostgreSQL PostgreSQL    `yaml:"postgresql"`
}

type FileStorage struct {
	Path string `yaml:"path" env-default:"data/store.json"`
}

type GitHub struct {
	Token        string        `yaml:"token" env:"GITHUB_TOKEN"`
	Owner        string        `yaml:"owner"`
	Repo         string        `yaml:"repo"`
	FilePath     string        `yaml:"file_path" env-default:"Data.json"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"15s"`
}

type PostgreSQL struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type Admin struct {
	// InitialPassword seeds the very first document only; afterwards the
	// stored hash is authoritative.
	InitialPassword string `yaml:"initial_password" env:"ADMIN_INITIAL_PASSWORD" env-default:"admin123"`
}

type Upload struct {
	Backend string `yaml:"backend" env-default:"disk"`
	Dir     string `yaml:"dir" env-default:"uploads"`
	// PublicBaseURL is the origin image paths are prefixed with in API
	// responses, e.g. "https://shop.example.com". Empty keeps them
	// origin-relative.
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
	StaticURL     string `yaml:"static_url" env-default:"/static"`
	MaxSizeMB     int64  `yaml:"max_size_mb" env-default:"5"`
	Minio         Minio  `yaml:"minio"`
	MinioBucket   string `yaml:"minio_bucket" env-default:"store-images"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	PublicURL       string `yaml:"public_url"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
