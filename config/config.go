package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"inspiration_drawer/drawer"
	"inspiration_drawer/ingest"
)

const (
	// MinBoxes and MaxBoxes bound how many boxes a config may hold.
	MinBoxes = 1
	MaxBoxes = 15

	DefaultPath = "config.json"
	envPrefix   = "DRAWER"
)

var (
	ErrNoBoxes      = errors.New("at least one box is required")
	ErrTooManyBoxes = fmt.Errorf("at most %d boxes are allowed", MaxBoxes)
)

// Config 是抽籤機的完整設定，明確傳給各元件，不依賴全域狀態。
type Config struct {
	Boxes      []BoxConfig `json:"boxes" mapstructure:"boxes"`
	LogPath    string      `json:"log_path" mapstructure:"log_path"`
	Store      string      `json:"store" mapstructure:"store"`
	Seed       int64       `json:"seed,omitempty" mapstructure:"seed"`
	ServerAddr string      `json:"server_addr,omitempty" mapstructure:"server_addr"`
	LLM        *LLMConfig  `json:"llm,omitempty" mapstructure:"llm"`
}

// BoxConfig describes one box. ItemsFile, when set, replaces Items with
// the content of a .txt, .md or .pdf file.
type BoxConfig struct {
	Title     string `json:"title" mapstructure:"title"`
	Items     string `json:"items" mapstructure:"items"`
	Count     int    `json:"count" mapstructure:"count"`
	ItemsFile string `json:"items_file,omitempty" mapstructure:"items_file"`
}

// LLMConfig 選填；設定後由模型推薦故事名稱。
type LLMConfig struct {
	Provider    string  `json:"provider,omitempty" mapstructure:"provider"`
	Model       string  `json:"model,omitempty" mapstructure:"model"`
	APIKey      string  `json:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL     string  `json:"base_url,omitempty" mapstructure:"base_url"`
	Temperature float64 `json:"temperature,omitempty" mapstructure:"temperature"`
}

// DefaultBoxes are the boxes a fresh install starts with.
func DefaultBoxes() []BoxConfig {
	return []BoxConfig{
		{Title: "角色身份", Items: "勇者, 刺客, 科學家", Count: 1},
		{Title: "角色屬性", Items: "火, 冰, 雷, 光", Count: 1},
		{Title: "角色性格", Items: "冷靜, 衝動, 傲嬌", Count: 1},
		{Title: "世界觀", Items: "後末日, 魔法現代, 賽博龐克", Count: 1},
		{Title: "主題劇情", Items: "背叛與救贖, 拯救世界, 命運對抗", Count: 1},
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Boxes:      DefaultBoxes(),
		LogPath:    "draw_log.json",
		Store:      "json",
		ServerAddr: ":8080",
	}
}

// Load reads path through viper, layered over the defaults and under
// DRAWER_* environment variables. A missing file at DefaultPath is fine;
// any other missing path is an error.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("boxes", def.Boxes)
	v.SetDefault("log_path", def.LogPath)
	v.SetDefault("store", def.Store)
	v.SetDefault("seed", 0)
	v.SetDefault("server_addr", def.ServerAddr)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"llm.provider", "llm.model", "llm.api_key", "llm.base_url", "llm.temperature"} {
		_ = v.BindEnv(key)
	}

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.LLM != nil && cfg.LLM.Provider == "" {
		cfg.LLM = nil
	}
	if err := cfg.resolveItemFiles(filepath.Dir(path)); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolveItemFiles(baseDir string) error {
	for i := range c.Boxes {
		b := &c.Boxes[i]
		if b.ItemsFile == "" {
			continue
		}
		p := b.ItemsFile
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		items, err := ingest.ReadItems(p)
		if err != nil {
			return fmt.Errorf("box %q: %w", b.Title, err)
		}
		b.Items = items
	}
	return nil
}

// Validate checks the box bounds, the store backend and the llm block.
func (c Config) Validate() error {
	if err := ValidateBoxes(c.DrawBoxes()); err != nil {
		return err
	}
	switch c.Store {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown store %q (want json or sqlite)", c.Store)
	}
	if c.LogPath == "" {
		return errors.New("log_path is required")
	}
	if c.LLM != nil {
		switch c.LLM.Provider {
		case "openai", "deepseek", "mock":
		default:
			return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
		}
	}
	return nil
}

// ValidateBoxes enforces MinBoxes..MaxBoxes.
func ValidateBoxes(boxes []drawer.Box) error {
	if len(boxes) < MinBoxes {
		return ErrNoBoxes
	}
	if len(boxes) > MaxBoxes {
		return ErrTooManyBoxes
	}
	return nil
}

// DrawBoxes converts the configured boxes for the sampler.
func (c Config) DrawBoxes() []drawer.Box {
	boxes := make([]drawer.Box, 0, len(c.Boxes))
	for _, b := range c.Boxes {
		boxes = append(boxes, drawer.Box{Title: b.Title, Items: b.Items, Count: b.Count})
	}
	return boxes
}

// WriteDefault writes the built-in configuration to path, refusing to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Default()); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}
