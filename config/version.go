package config

// version is set via ldflags at build time:
// -X github.com/askmilo/askmilo-cli/config.version=v1.2.3
var version string

func Version() string {
	if version == "" {
		return "dev"
	}
	return version
}
