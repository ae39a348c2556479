package file

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "BORDERMAP"

// Env lists the environment overrides, e.g. BORDERMAP_GUARD_RADIUS=4.
// Unset or zero values leave the file value in place.
type Env struct {
	// ConfigDir replaces ~/.bordermap as the config directory.
	ConfigDir string `envconfig:"CONFIG_DIR"`

	GuardRadius   float64  `envconfig:"GUARD_RADIUS"`
	LoopPolicy    string   `envconfig:"LOOP_POLICY"`
	ExportFormats []string `envconfig:"EXPORT_FORMATS"`
	ExportSeed    int64    `envconfig:"EXPORT_SEED"`
}

// LoadEnv reads the BORDERMAP_ environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ApplyEnv shadows file values with the overrides set in env.
func (s *ConfigStore) ApplyEnv(env *Env) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.env = make(map[string]any)
	if env.GuardRadius != 0 {
		s.env["guard.radius"] = env.GuardRadius
	}
	if env.LoopPolicy != "" {
		s.env["countries.loop_policy"] = env.LoopPolicy
	}
	if env.ExportFormats != nil {
		s.env["export.formats"] = env.ExportFormats
	}
	if env.ExportSeed != 0 {
		s.env["export.seed"] = env.ExportSeed
	}
}
