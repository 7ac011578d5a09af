package config

// Store backends selectable with STORE_BACKEND
const (
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
	StoreBackendBolt     = "bolt"
	StoreBackendMemory   = "memory"
)

const (
	// Configuration file paths
	ConfigPathProcessProfile = "configs/process_profile.yaml"

	// Default locations for embedded stores
	DefaultSQLitePath = "data/fights.db"
	DefaultBoltPath   = "data/fights.bolt"

	// DefaultStreamBaseURL is the HLS origin that serves fight video
	DefaultStreamBaseURL = "https://stream.cimai.biz/hls"
)
