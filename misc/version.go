// Package misc holds program identity stamped at build time.
package misc

// Set with -ldflags "-X sbx/misc.version=... -X sbx/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "sbx"

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

func GetAppName() string {
	return appName
}
