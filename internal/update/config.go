package update

import (
	"os"
	"strings"
)

type RuntimeConfig struct {
	TaskFilePath string
	CompactList  bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TaskFilePath: "tasks.json",
		CompactList:  false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKBOOK_FILE")); v != "" {
		cfg.TaskFilePath = v
	}
	if v, ok := getEnvBool("TASKBOOK_COMPACT"); ok {
		cfg.CompactList = v
	}
	return cfg
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
