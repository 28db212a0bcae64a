package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	LLM        LLMConfig        `yaml:"llm"`
	Reader     ReaderConfig     `yaml:"reader"`
	Briefing   BriefingConfig   `yaml:"briefing"`
	Notion     NotionConfig     `yaml:"notion"`
	Usage      UsageConfig      `yaml:"usage"`
	Mongo      MongoConfig      `yaml:"mongo"`
	SQLite     SQLiteConfig     `yaml:"sqlite"`
	Extraction ExtractionConfig `yaml:"extraction"`

	Secrets Secrets `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LLMConfig selects the chat provider and the models used for each stage.
type LLMConfig struct {
	// Provider is "openai" (default) or "google".
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	ChunkModel  string `yaml:"chunk_model"`
	SpeechModel string `yaml:"speech_model"`
	SpeechVoice string `yaml:"speech_voice"`

	Quota QuotaConfig `yaml:"quota"`
}

// QuotaConfig limits outbound LLM calls. Values <= 0 disable the limit.
type QuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

// ReaderConfig describes the person the briefing and summaries are written for.
type ReaderConfig struct {
	Persona string `yaml:"persona"`
}

// BriefingConfig controls the daily edition. Schedule is the local
// wall-clock time of the run, "HH:MM", in Timezone.
type BriefingConfig struct {
	Publication string `yaml:"publication"`
	Schedule    string `yaml:"schedule"`
	Timezone    string `yaml:"timezone"`
	RunNowURL   string `yaml:"run_now_url"`
}

type NotionConfig struct {
	DatabaseID          string `yaml:"database_id"`
	NewspaperDatabaseID string `yaml:"newspaper_database_id"`
	FrontPageID         string `yaml:"front_page_id"`
}

type UsageConfig struct {
	// Backend is one of "file", "sqlite", "mongo" or "memory".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type ExtractionConfig struct {
	RenderFallback bool   `yaml:"render_fallback"`
	ChromePath     string `yaml:"chrome_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Secrets are read from the environment only.
type Secrets struct {
	OpenAIAPIKey        string
	GeminiAPIKey        string
	NotionAPIKey        string
	SpotifyClientID     string
	SpotifyClientSecret string
	YouTubeAPIKey       string
	CronSecret          string
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}

	c.applyEnv()
	c.applyDefaults()
	config = &c
}

// SetConfig replaces the global configuration. Used by tests and tools
// that build their configuration in code.
func SetConfig(c AppConfig) {
	c.applyDefaults()
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func (c *AppConfig) applyEnv() {
	c.Secrets = Secrets{
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		NotionAPIKey:        os.Getenv("NOTION_API_KEY"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		YouTubeAPIKey:       os.Getenv("YOUTUBE_API_KEY"),
		CronSecret:          os.Getenv("CRON_SECRET"),
	}

	overrides := map[string]*string{
		"NOTION_DATABASE_ID":              &c.Notion.DatabaseID,
		"NOTION_NEWSPAPER_DATABASE_ID":    &c.Notion.NewspaperDatabaseID,
		"NOTION_RENO_TIMES_FRONT_PAGE_ID": &c.Notion.FrontPageID,
		"RENO_TIMES_RUN_NOW_URL":          &c.Briefing.RunNowURL,
		"MONGO_URI":                       &c.Mongo.URI,
		"LOG_LEVEL":                       &c.Logging.Level,
		"CHROME_PATH":                     &c.Extraction.ChromePath,
	}
	for key, dst := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.ChunkModel == "" {
		c.LLM.ChunkModel = c.LLM.Model
	}
	if c.LLM.SpeechModel == "" {
		c.LLM.SpeechModel = "tts-1"
	}
	if c.LLM.SpeechVoice == "" {
		c.LLM.SpeechVoice = "alloy"
	}
	if c.Briefing.Publication == "" {
		c.Briefing.Publication = "The Reno Times"
	}
	if c.Briefing.Schedule == "" {
		c.Briefing.Schedule = "06:00"
	}
	if c.Briefing.Timezone == "" {
		c.Briefing.Timezone = "America/Los_Angeles"
	}
	if c.Usage.Backend == "" {
		c.Usage.Backend = "file"
	}
	if c.Usage.Path == "" {
		c.Usage.Path = filepath.Join("data", "usage.json")
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "deep_summarizer"
	}
	if c.SQLite.Path == "" {
		c.SQLite.Path = filepath.Join("data", "usage.db")
	}
	if c.Extraction.TimeoutSeconds <= 0 {
		c.Extraction.TimeoutSeconds = 30
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
