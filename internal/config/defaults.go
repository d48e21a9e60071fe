package config

import "runtime"

// DefaultJobs returns the default shard count: 1.5x the available CPUs,
// truncated. Test suites are rarely CPU-bound end to end, so modest
// oversubscription keeps the cores busy.
func DefaultJobs() int {
	return int(float64(runtime.NumCPU()) * 1.5)
}

// Defaults returns the default configuration values as koanf keys.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"jobs":      DefaultJobs(),
		"verbosity": 1,
		"color":     "auto",
	}
}

// DefaultConfigTemplate returns a fully commented config template that helps
// users understand all available options.
func DefaultConfigTemplate() string {
	return `# shardr configuration
# Priority: SHARDR_* environment variables > .shardr.yml > this file > defaults

#jobs: 8          # Parallel shard invocations (absent = 1.5x CPU count)
verbosity: 1      # 0 banner only | 1 logs of failed shards | 2 all shard logs
color: auto       # auto | always | never
`
}
