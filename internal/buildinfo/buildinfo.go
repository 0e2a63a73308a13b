// Package buildinfo exposes build-time metadata stamped into the binary.
package buildinfo

// BuildDatetime is the build timestamp printed in the no-argument banner.
// Override it at build time with:
//
//	go build -ldflags "-X github.com/0x4D44/mdtouch/internal/buildinfo.BuildDatetime=$(date '+%Y-%m-%d %H:%M:%S')"
var BuildDatetime = "2025-02-03 10:00:00"
