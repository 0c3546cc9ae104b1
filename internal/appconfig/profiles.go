// internal/appconfig/profiles.go
package appconfig

import (
	"sort"
	"strings"

	"github.com/mwiater/compbench/internal/metrics"
)

// ProfileName identifies a normalization preset.
type ProfileName string

const (
	ProfileDefault ProfileName = "default"
	ProfileStrict  ProfileName = "strict"
	ProfileLenient ProfileName = "lenient"
)

// Profile bundles normalization settings under a name.
type Profile struct {
	Name        ProfileName
	Description string
	Options     metrics.Options
}

var profiles = map[ProfileName]Profile{
	ProfileDefault: {
		Name:        ProfileDefault,
		Description: "warn on original size mismatches, accept fractional levels",
		Options:     metrics.DefaultOptions(),
	},
	ProfileStrict: {
		Name:        ProfileStrict,
		Description: "fail on original size mismatches, integer levels only",
		Options: metrics.Options{
			MismatchPolicy:        metrics.MismatchError,
			AllowFractionalLevels: false,
		},
	},
	ProfileLenient: {
		Name:        ProfileLenient,
		Description: "treat malformed durations as unmeasured",
		Options: metrics.Options{
			MismatchPolicy:        metrics.MismatchWarn,
			AllowFractionalLevels: true,
			LenientDurations:      true,
		},
	},
}

// LookupProfile selects a profile by name. Empty names select nothing so
// the individual settings apply.
func LookupProfile(name string) (Profile, bool) {
	n := normalizeProfileName(name)
	if n == "" {
		return Profile{}, false
	}
	p, ok := profiles[ProfileName(n)]
	return p, ok
}

// ProfileNames lists the known profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

func normalizeProfileName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	// allow a few friendly aliases
	switch s {
	case "":
		return ""
	case "default", "standard":
		return string(ProfileDefault)
	case "strict", "pedantic":
		return string(ProfileStrict)
	case "lenient", "loose":
		return string(ProfileLenient)
	default:
		return s
	}
}
