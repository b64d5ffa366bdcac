// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// version.go — build metadata for the sgdata library, injected via -ldflags
// by the embedding application's build so operators can tell which build of
// the payload layer a binary links.

package sgdata

// Build-time variables injected via -ldflags. sgdata is a library, so these
// are set by the build of whatever binary embeds it; the defaults mark an
// unversioned local development build.
//
//	BuildDate format : YYYY.MM.DD-HHMM  (24-hour clock)
//	BuildEnv  values : dev | qa | prod
//
// Full version example: "2026.02.28-1750-dev"
var (
	// BuildDate is the date and time the embedding binary was built.
	// Set by: -ldflags "-X 'github.com/AndrewDonelson/sgdata.BuildDate=2026.02.28-1750'"
	BuildDate = "0000.00.00-0000"

	// BuildEnv is the target environment for this build.
	// Set by: -ldflags "-X 'github.com/AndrewDonelson/sgdata.BuildEnv=dev'"
	BuildEnv = "dev"
)

// Version returns the linked sgdata build as "YYYY.MM.DD-HHMM-env",
// e.g. "2026.02.28-1750-dev".
func Version() string {
	return BuildDate + "-" + BuildEnv
}
