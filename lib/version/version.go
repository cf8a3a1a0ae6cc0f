// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/tasklist/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = ""

	// BuildTime is the UTC timestamp of the build.
	BuildTime = ""

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Modified  bool   `json:"modified"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build description, filling commit and time from
// the toolchain's VCS stamps when they were not injected.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		applySettings(&build, info.Settings)
	}
	if build.Commit == "" {
		build.Commit = "unknown"
	}
	if build.BuildTime == "" {
		build.BuildTime = "unknown"
	}
	return build
}

func applySettings(build *Build, settings []debug.BuildSetting) {
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			if build.Commit == "" {
				build.Commit = setting.Value
				if len(build.Commit) > 12 {
					build.Commit = build.Commit[:12]
				}
			}
		case "vcs.time":
			if build.BuildTime == "" {
				build.BuildTime = setting.Value
			}
		case "vcs.modified":
			build.Modified = setting.Value == "true"
		}
	}
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return Current().String()
}

// String formats the build as "VERSION (COMMIT[-dirty], TIME)".
func (build Build) String() string {
	dirty := ""
	if build.Modified {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", build.Version, build.Commit, dirty, build.BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	build := Current()
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", build, build.GoVersion, build.Platform)
}
