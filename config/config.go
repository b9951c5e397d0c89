package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kenpath/agribpp/pkg/common"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// RelayConfig controls the asynchronous on_search/on_select forwarding.
// Delivery is best effort: no retry, no backpressure, failures only logged.
type RelayConfig struct {
	CallbackURL string `yaml:"callback_url" json:"callback_url"`
	DelayMs     int    `yaml:"delay_ms" json:"delay_ms"`
	TimeoutMs   int    `yaml:"timeout_ms" json:"timeout_ms"`
	Workers     int    `yaml:"workers" json:"workers"`
}

// BppConfig carries the platform identity injected into normalized contexts.
type BppConfig struct {
	ID     string `yaml:"id" json:"id"`
	URI    string `yaml:"uri" json:"uri"`
	Domain string `yaml:"domain" json:"domain"`
}

type AppConfig struct {
	System   SysConfig   `yaml:"system" json:"system"`
	Web      WebConfig   `yaml:"web" json:"web"`
	Database DBConfig    `yaml:"database" json:"database"`
	Logger   LogConfig   `yaml:"logger" json:"logger"`
	Relay    RelayConfig `yaml:"relay" json:"relay"`
	Bpp      BppConfig   `yaml:"bpp" json:"bpp"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "agribpp",
		Location: "Asia/Kolkata",
		Workdir:  "/var/agribpp",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 3000,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "localhost",
		Port:     5432,
		Name:     "beckn_agriculture",
		User:     "postgres",
		Passwd:   "password",
		MaxConn:  20,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/agribpp/agribpp.log",
	},
	Relay: RelayConfig{
		CallbackURL: "https://bpp-client.kenpath.ai",
		DelayMs:     1000,
		TimeoutMs:   10000,
		Workers:     8,
	},
	Bpp: BppConfig{
		ID:     "kenpath-agriculture-bpp",
		URI:    "https://bpp-client.kenpath.ai",
		Domain: "agristack:oan",
	},
}

func setEnvValue(name string, val *string) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig reads the yaml configuration file and applies environment
// overrides. A missing file falls back to defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" && common.FileExists(cfile) {
		if data, err := os.ReadFile(cfile); err == nil {
			// Unmarshal over the defaults so a partial yaml only
			// overrides the fields it names.
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "config parse error: %v, using defaults\n", err)
				*cfg = *DefaultAppConfig
			}
		}
	}

	setEnvValue("AGRIBPP_WORKDIR", &cfg.System.Workdir)
	setEnvValue("AGRIBPP_LOCATION", &cfg.System.Location)
	setEnvBoolValue("AGRIBPP_DEBUG", &cfg.System.Debug)
	setEnvValue("AGRIBPP_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("PORT", &cfg.Web.Port)
	setEnvValue("DB_HOST", &cfg.Database.Host)
	setEnvIntValue("DB_PORT", &cfg.Database.Port)
	setEnvValue("DB_NAME", &cfg.Database.Name)
	setEnvValue("DB_USER", &cfg.Database.User)
	setEnvValue("DB_PASSWORD", &cfg.Database.Passwd)
	setEnvValue("AGRIBPP_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvValue("AGRIBPP_RELAY_CALLBACK_URL", &cfg.Relay.CallbackURL)
	setEnvIntValue("AGRIBPP_RELAY_DELAY_MS", &cfg.Relay.DelayMs)
	setEnvValue("AGRIBPP_BPP_ID", &cfg.Bpp.ID)
	setEnvValue("AGRIBPP_BPP_URI", &cfg.Bpp.URI)

	return cfg
}

// InitDirs ensures the working directory layout exists.
func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(c.System.Workdir, 0o755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "metrics"), 0o755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "logs"), 0o755)
}
