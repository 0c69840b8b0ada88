package version

import "os"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

func Get() BuildInfo {
	v := Version
	if override := os.Getenv("EMUSCAN_VERSION"); override != "" {
		v = override
	}
	return BuildInfo{
		Version:   v,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}

// Generator is the value of the generator meta tag on every page. It must not
// carry the commit or build date so that rebuilt binaries produce the same
// output.
func (b BuildInfo) Generator() string {
	return "EmuScan " + b.Version
}
