package cmd

// fleetConfig models the optional YAML fleet file: a named host list plus
// connection defaults. CLI flags and environment variables take precedence
// over these values when set.
type fleetConfig struct {
	Name    string   `yaml:"name"`
	Hosts   []string `yaml:"hosts"`
	User    string   `yaml:"user,omitempty"`
	PemFile string   `yaml:"pem_file,omitempty"`
}
