package storage

import "github.com/julianstephens/arcana/internal/models"

// Settings are the user-tunable defaults applied when a command does not
// override them.
type Settings struct {
	DefaultSpread    string  `json:"default_spread"`
	AllowReversals   bool    `json:"allow_reversals"`
	DefaultLatitude  float64 `json:"default_latitude"`
	DefaultLongitude float64 `json:"default_longitude"`
	DefaultTimezone  float64 `json:"default_timezone"`
}

// DefaultSettings are written on first init.
func DefaultSettings() Settings {
	return Settings{
		DefaultSpread:  "three_card",
		AllowReversals: true,
	}
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Readings
	SaveReading(models.Reading) error
	GetReading(id string) (models.Reading, error)
	GetAllReadings() ([]models.Reading, error)
	DeleteReading(id string) error
	RestoreReading(id string) error

	// Utils
	GetConfigPath() string
}
