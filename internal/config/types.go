package config

// LogFormat selects the log handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config is the top-level euromap configuration, corresponding to .euromap.yml.
type Config struct {
	StatsSource     string     `yaml:"stats_source" koanf:"stats_source"`
	MapSVG          string     `yaml:"map_svg" koanf:"map_svg"`
	AssetsDir       string     `yaml:"assets_dir" koanf:"assets_dir"`
	AssetInclude    []string   `yaml:"asset_include" koanf:"asset_include"`
	Port            int        `yaml:"port" koanf:"port"`
	AllowAllOrigins bool       `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DotsEnabled     bool       `yaml:"dots_enabled" koanf:"dots_enabled"`
	Zoom            ZoomConfig `yaml:"zoom" koanf:"zoom"`
	FrameRate       int        `yaml:"frame_rate" koanf:"frame_rate"`
	Title           string     `yaml:"title" koanf:"title"`
	Footer          string     `yaml:"footer" koanf:"footer"`
	EmptyLogo       string     `yaml:"empty_logo" koanf:"empty_logo"`
	Log             LogConfig  `yaml:"log" koanf:"log"`
}

// ZoomConfig shapes the viewport used when a region is locked.
type ZoomConfig struct {
	Padding   float64 `yaml:"padding" koanf:"padding"`
	MinSize   float64 `yaml:"min_size" koanf:"min_size"`
	Aspect    float64 `yaml:"aspect" koanf:"aspect"`
	ZoomInMS  int     `yaml:"zoom_in_ms" koanf:"zoom_in_ms"`
	ZoomOutMS int     `yaml:"zoom_out_ms" koanf:"zoom_out_ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
