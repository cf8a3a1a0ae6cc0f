// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for tasklist.
//
// Configuration comes from a single file named by the --config flag or
// the TASKLIST_CONFIG environment variable (via [Resolve]). There is no
// ~/.config discovery and no automatic file search: with neither set,
// the built-in [Default] applies. Values present in the file override
// the defaults; absent values keep them.
//
// Variable expansion is performed on the seed path after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Seed, View, Log
//   - [Default] -- returns a Config with built-in defaults
//   - [Load], [LoadFile], and [Resolve] -- the entry points for loading
//
// This package depends only on lib/task.
package config
