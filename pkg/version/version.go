// Package version reports the build identity of the running binary.
package version

import "runtime/debug"

// AppName identifies the service in logs and version strings.
const AppName = "recapd"

// commit may be injected with -ldflags "-X .../pkg/version.commit=<sha>" for
// builds done outside a git checkout (container images, release tarballs).
var commit string

// GitCommit is the short revision this binary was built from. Resolution
// order: the ldflags injection, then the vcs.revision build setting, then
// "dev" when neither is present (plain `go test` runs, for example).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns the "name/commit" form used in startup logging.
func Full() string {
	return AppName + "/" + GitCommit
}
