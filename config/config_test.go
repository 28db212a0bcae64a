package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	assert.NoError(t, Require("NOTION_API_KEY", "secret"))

	err := Require("NOTION_NEWSPAPER_DATABASE_ID", "  ")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSetting))
	assert.Contains(t, err.Error(), "NOTION_NEWSPAPER_DATABASE_ID")

	var missing *MissingSettingError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, "NOTION_NEWSPAPER_DATABASE_ID", missing.Name)
}

func TestSetConfigAppliesDefaults(t *testing.T) {
	SetConfig(AppConfig{})
	cfg := GetConfig()

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ChunkModel)
	assert.Equal(t, "The Reno Times", cfg.Briefing.Publication)
	assert.Equal(t, "file", cfg.Usage.Backend)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("NOTION_NEWSPAPER_DATABASE_ID", "db-123")
	t.Setenv("CRON_SECRET", "s3cret")

	c := AppConfig{Notion: NotionConfig{NewspaperDatabaseID: "from-yaml"}}
	c.applyEnv()

	assert.Equal(t, "db-123", c.Notion.NewspaperDatabaseID)
	assert.Equal(t, "s3cret", c.Secrets.CronSecret)
}
