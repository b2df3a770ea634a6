package config

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port       int `yaml:"port" validate:"gt=0"`
	CacheTTLMS int `yaml:"cacheTTLMS" validate:"gte=0"`
}

// ODPTConfig contains the ODPT GTFS-Realtime feed settings. The consumer key
// is read from the ODPT_API_KEY environment variable, never from the file.
type ODPTConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// DataConfig contains the static data file locations.
type DataConfig struct {
	StationsPath  string `yaml:"stationsPath" validate:"required"`
	TrackPath     string `yaml:"trackPath" validate:"required"`
	TimetablePath string `yaml:"timetablePath" validate:"required"`
}

// EngineConfig contains the blending tunables.
type EngineConfig struct {
	MaxDistanceMeters float64 `yaml:"maxDistanceMeters" validate:"gte=0"`
	FreshThresholdSec int     `yaml:"freshThresholdSec" validate:"gte=0"`
	StaleThresholdSec int     `yaml:"staleThresholdSec" validate:"gte=0"`
}

// HistoryConfig contains the snapshot persistence settings.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"databasePath"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	ODPT    ODPTConfig    `yaml:"odpt"`
	Data    DataConfig    `yaml:"data" validate:"required"`
	Engine  EngineConfig  `yaml:"engine"`
	History HistoryConfig `yaml:"history"`

	// APIKey is resolved from the environment after loading.
	APIKey string `yaml:"-"`
}
