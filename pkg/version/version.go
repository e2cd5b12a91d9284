package version

// GitTagSha is set at link time:
//
//	go build -ldflags "-X github.com/selectdb/patterns/pkg/version.GitTagSha=$(git rev-parse --short HEAD)" ./cmd/patterns
var GitTagSha = "unknown"

func GetVersion() string {
	return "patterns " + GitTagSha
}
