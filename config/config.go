// Package config loads the business settings: identity, catalog, surcharge,
// tax rates and the storage backend.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Business identifies the issuer printed on every document.
type Business struct {
	Name      string `mapstructure:"name"`
	Signature string `mapstructure:"signature"`
	// BandColor is the RGB fill of the header band.
	BandColor [3]int `mapstructure:"band_color"`
}

// CatalogEntry is one predefined service. Price is kept as text so that
// decimal values survive YAML and env decoding untouched.
type CatalogEntry struct {
	Name  string `mapstructure:"name"`
	Price string `mapstructure:"price"`
	Unit  string `mapstructure:"unit"`
}

type Surcharge struct {
	Label string `mapstructure:"label"`
	Rate  string `mapstructure:"rate"`
}

// Tax lists the rates offered in the form. A single rate makes the rate fixed.
type Tax struct {
	Rates   []string `mapstructure:"rates"`
	Default string   `mapstructure:"default"`
}

type Storage struct {
	// Backend is "pocketbase" (default) or "postgres".
	Backend   string `mapstructure:"backend"`
	DSN       string `mapstructure:"dsn"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

type Settings struct {
	Business  Business       `mapstructure:"business"`
	Catalog   []CatalogEntry `mapstructure:"catalog"`
	Surcharge Surcharge      `mapstructure:"surcharge"`
	Tax       Tax            `mapstructure:"tax"`
	Storage   Storage        `mapstructure:"storage"`
	Metrics   Metrics        `mapstructure:"metrics"`
}

// Default returns the settings of the original ChrisGarden tool.
func Default() Settings {
	return Settings{
		Business: Business{
			Name:      "ChrisGarden",
			Signature: "Christophe",
			BandColor: [3]int{21, 128, 61},
		},
		Catalog: []CatalogEntry{
			{Name: "Tonte", Price: "20", Unit: "h"},
			{Name: "Débroussaillage", Price: "20", Unit: "h"},
			{Name: "Taille de haies", Price: "24", Unit: "h"},
			{Name: "Élagage", Price: "30", Unit: "h"},
			{Name: "Entretien parterres", Price: "22", Unit: "h"},
			{Name: "Nettoyage gouttière", Price: "26", Unit: "h"},
			{Name: "Karcher / Haute pression", Price: "24", Unit: "h"},
			{Name: "Ramassage / évacuation déchets", Price: "20", Unit: "remorque"},
			{Name: "Plantation arbustes / arbres", Price: "25", Unit: "h"},
			{Name: "Scarification pelouse", Price: "24", Unit: "h"},
			{Name: "Forfait journalier", Price: "160", Unit: "jour"},
			{Name: "Location machine unitaire", Price: "50", Unit: "unité"},
		},
		Surcharge: Surcharge{Label: "Frais kilométriques", Rate: "0.25"},
		Tax:       Tax{Rates: []string{"0", "10", "20"}, Default: "20"},
		Storage:   Storage{Backend: "pocketbase", KeyPrefix: "chrisgarden"},
	}
}

// Load reads an optional .env file and an optional YAML file at path, then
// applies GARDEN_* environment overrides on top of Default().
func Load(path string) (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("GARDEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"business.name", "business.signature",
		"surcharge.label", "surcharge.rate",
		"tax.default",
		"storage.backend", "storage.key_prefix",
		"metrics.enabled",
	} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	if err := v.BindEnv("storage.dsn", "GARDEN_STORAGE_DSN", "DATABASE_URL"); err != nil {
		return Settings{}, fmt.Errorf("bind env storage.dsn: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Settings{}, fmt.Errorf("read config %s: %w", path, err)
			}
			log.Printf("config: loaded %s", path)
		}
	}

	s := Default()
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the application cannot start with.
func (s Settings) Validate() error {
	if len(s.Catalog) == 0 {
		return errors.New("config: catalog is empty")
	}
	if len(s.Tax.Rates) == 0 {
		return errors.New("config: no tax rate configured")
	}
	switch s.Storage.Backend {
	case "pocketbase", "":
	case "postgres":
		if s.Storage.DSN == "" {
			return errors.New("config: postgres backend needs storage.dsn or DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", s.Storage.Backend)
	}
	return nil
}
