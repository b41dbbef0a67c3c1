package main

import "runtime/debug"

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

func buildVersionString() string {
	if version != "" {
		return "pylint-exit " + version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return "pylint-exit " + info.Main.Version
	}
	return "pylint-exit dev"
}
