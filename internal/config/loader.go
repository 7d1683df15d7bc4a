package config

import (
	"fmt"
	"time"

	"github.com/sundsvall-io/party-assets/internal/db"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string
}

// PartyConfig holds settings for the party service client.
type PartyConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StaticAssetInfo holds the fixed asset fields applied to every imported row.
type StaticAssetInfo struct {
	Origin         string
	Type           string
	Description    string
	MunicipalityID string
}

// PR3ImportConfig gates and parameterizes the PR3 import pipeline.
type PR3ImportConfig struct {
	Enabled         bool
	StaticAssetInfo StaticAssetInfo
}

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig
	Database  db.Config
	Party     PartyConfig
	PR3Import PR3ImportConfig
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Database: db.DefaultConfig(),
		Party: PartyConfig{
			BaseURL: "http://localhost:9090",
			Timeout: 15 * time.Second,
		},
		PR3Import: PR3ImportConfig{
			Enabled: true,
			StaticAssetInfo: StaticAssetInfo{
				Origin:         "PR3",
				Type:           "PARKINGPERMIT",
				Description:    "Parkeringstillstånd",
				MunicipalityID: "2281",
			},
		},
	}
}

// Load reads config.yaml from the given path, with environment overrides
// (PARTYASSETS_DATABASE_HOST, PARTYASSETS_PR3IMPORT_ENABLED, ...).
func Load(configPath string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("PARTYASSETS")

	v.BindEnv("server.addr")
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("party.baseurl")
	v.BindEnv("pr3import.enabled")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("party.baseurl") {
		cfg.Party.BaseURL = v.GetString("party.baseurl")
	}
	if v.IsSet("party.timeout") {
		cfg.Party.Timeout = v.GetDuration("party.timeout")
	}
	if v.IsSet("pr3import.enabled") {
		cfg.PR3Import.Enabled = v.GetBool("pr3import.enabled")
	}
	if v.IsSet("pr3import.staticassetinfo.origin") {
		cfg.PR3Import.StaticAssetInfo.Origin = v.GetString("pr3import.staticassetinfo.origin")
	}
	if v.IsSet("pr3import.staticassetinfo.type") {
		cfg.PR3Import.StaticAssetInfo.Type = v.GetString("pr3import.staticassetinfo.type")
	}
	if v.IsSet("pr3import.staticassetinfo.description") {
		cfg.PR3Import.StaticAssetInfo.Description = v.GetString("pr3import.staticassetinfo.description")
	}
	if v.IsSet("pr3import.staticassetinfo.municipalityid") {
		cfg.PR3Import.StaticAssetInfo.MunicipalityID = v.GetString("pr3import.staticassetinfo.municipalityid")
	}

	return cfg, nil
}
