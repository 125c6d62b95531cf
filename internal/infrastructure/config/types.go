package config

// SettingsConfig is the root config for game.yaml
type SettingsConfig struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
	Results ResultsConfig `yaml:"results"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
	Background   string `yaml:"background"` // hex color
}

// AudioConfig maps sound names to asset paths.
// A path of the form "synth:<name>" uses a generated sound instead of a file.
type AudioConfig struct {
	Enabled bool              `yaml:"enabled"`
	Volume  float64           `yaml:"volume"` // beep volume exponent, 0 = unchanged
	Sounds  map[string]string `yaml:"sounds"`
}

type AssetsConfig struct {
	Root        string `yaml:"root"`        // directory assets are read from
	BubbleImage string `yaml:"bubbleImage"` // empty = generated bubble
}

type UIConfig struct {
	FontSize            float64 `yaml:"fontSize"`
	TextColor           string  `yaml:"textColor"`
	HoverColor          string  `yaml:"hoverColor"`
	BackBackground      string  `yaml:"backBackground"`
	PlayAgainBackground string  `yaml:"playAgainBackground"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// ResultsConfig selects where finished rounds are stored
type ResultsConfig struct {
	Driver string      `yaml:"driver"` // "none", "file" or "mysql"
	Path   string      `yaml:"path"`
	Buffer int         `yaml:"buffer"`
	MySQL  MySQLConfig `yaml:"mysql"`
}

type MySQLConfig struct {
	User        string `yaml:"user"`
	PasswordEnv string `yaml:"passwordEnv"` // name of the env var holding the password
	Addr        string `yaml:"addr"`
	DBName      string `yaml:"dbName"`
	Table       string `yaml:"table"`
}
