package config

// ProfileDTO is the on-disk shape of a .cxxcmd.yaml profile.
type ProfileDTO struct {
	Version      string   `yaml:"version"`
	Compilers    []string `yaml:"compilers"`
	Compiler     string   `yaml:"compiler"`
	Standard     string   `yaml:"std"`
	Optimization string   `yaml:"optimize"`
	Debug        bool     `yaml:"debug"`
	Output       string   `yaml:"output"`
	Sources      []string `yaml:"sources"`
}
