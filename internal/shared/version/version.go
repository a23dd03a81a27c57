// Package version exposes the build version stamped at link time.
package version

// Current is overridden by the release build:
//
//	go build -ldflags "-X lineup/internal/shared/version.Current=v1.0.0"
var Current = "dev"
