package conf

type LogConfig struct {
	Enable     bool   `json:"enable" env:"ENABLE"`
	Name       string `json:"name" env:"NAME"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type SchemeConfig struct {
	Address  string `json:"address" env:"ADDR"`
	HttpPort int    `json:"http_port" env:"HTTP_PORT"`
}

type Config struct {
	TempDir string       `json:"temp_dir" env:"TEMP_DIR"`
	Scheme  SchemeConfig `json:"scheme" envPrefix:"SCHEME_"`
	Log     LogConfig    `json:"log" envPrefix:"LOG_"`
	// MaxDownloadRate and MaxUploadRate cap bytes per second; negative
	// means unlimited.
	MaxDownloadRate int `json:"max_download_rate" env:"MAX_DOWNLOAD_RATE"`
	MaxUploadRate   int `json:"max_upload_rate" env:"MAX_UPLOAD_RATE"`
	// MaxConcurrency bounds simultaneous requests on the HTTP surface.
	MaxConcurrency int `json:"max_concurrency" env:"MAX_CONCURRENCY"`
	// TaskWorkers sizes the background extract-all worker pool.
	TaskWorkers int `json:"task_workers" env:"TASK_WORKERS"`
}

func DefaultConfig() *Config {
	return &Config{
		TempDir: "",
		Scheme: SchemeConfig{
			Address:  "0.0.0.0",
			HttpPort: 5344,
		},
		Log: LogConfig{
			Enable:     true,
			Name:       "",
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
		MaxDownloadRate: -1,
		MaxUploadRate:   -1,
		MaxConcurrency:  64,
		TaskWorkers:     2,
	}
}

// Conf is the loaded configuration, set by bootstrap.InitConfig.
var Conf *Config
