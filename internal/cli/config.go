package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Station-Manager/runlog"
)

// fileConfig is the YAML shape accepted by --config.
//
//	run_name: benchmark
//	root_name: spl_flow
//	adapter: claude_cli
//	log_dir: logs
//	log_level: debug
type fileConfig struct {
	RunName        string `yaml:"run_name"`
	runlog.Options `yaml:",inline"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
