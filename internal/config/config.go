package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Demo struct {
		Email     string `yaml:"email"`
		ReportDir string `yaml:"reportDir"`
	} `yaml:"demo"`

	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`

	OpenAI struct {
		APIKey      string `yaml:"apiKey"`
		Model       string `yaml:"model"`
		VisionModel string `yaml:"visionModel"`
	} `yaml:"openai"`

	Extraction struct {
		// ImageStrategy is "tesseract" or "vision".
		ImageStrategy string `yaml:"imageStrategy"`
		TesseractPath string `yaml:"tesseractPath"`
		TesseractLang string `yaml:"tesseractLang"`
		DebugDir      string `yaml:"debugDir"`
	} `yaml:"extraction"`

	Database struct {
		// Driver is "mysql", "postgres" or empty to disable the dictionary.
		Driver   string `yaml:"driver"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Mongo struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongo"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	Limits struct {
		CallTimeoutSeconds int `yaml:"callTimeoutSeconds"`
		RateCapacity       int `yaml:"rateCapacity"`
		RateRefillPerSec   int `yaml:"rateRefillPerSec"`
		MaxUploadMB        int `yaml:"maxUploadMB"`
	} `yaml:"limits"`
}

// Load reads the yaml config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Demo.Email == "" {
		c.Demo.Email = "smp@gmail.com"
	}
	if c.Demo.ReportDir == "" {
		c.Demo.ReportDir = "demo_reports"
	}
	if c.Store.Path == "" {
		c.Store.Path = "analysis_storage.json"
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.OpenAI.VisionModel == "" {
		c.OpenAI.VisionModel = c.OpenAI.Model
	}
	if c.Extraction.ImageStrategy == "" {
		c.Extraction.ImageStrategy = "tesseract"
	}
	if c.Extraction.TesseractPath == "" {
		c.Extraction.TesseractPath = "tesseract"
	}
	if c.Extraction.TesseractLang == "" {
		c.Extraction.TesseractLang = "eng+tam"
	}
	if c.Limits.CallTimeoutSeconds == 0 {
		c.Limits.CallTimeoutSeconds = 60
	}
	if c.Limits.RateCapacity == 0 {
		c.Limits.RateCapacity = 20
	}
	if c.Limits.RateRefillPerSec == 0 {
		c.Limits.RateRefillPerSec = 1
	}
	if c.Limits.MaxUploadMB == 0 {
		c.Limits.MaxUploadMB = 32
	}
}

// MySQLDSN builds the DSN for the legal term dictionary on MySQL.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds the DSN for the legal term dictionary on PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
