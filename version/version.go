package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/aczwink/OpenArabicMusicArrangerStyles/version.Version=$(git describe --dirty)"
var Version string

// String returns the build-time version if one was set, and otherwise the
// short VCS revision baked into the binary, if any.
func String() string {
	if Version != "" {
		return Version
	}
	return revision()
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var hash string
	modified := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				hash = setting.Value[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if hash != "" && modified {
		return hash + "-dirty"
	}
	return hash
}
