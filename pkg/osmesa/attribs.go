package osmesa

import "github.com/osmesa-go/osmesa/pkg/osmesa/mesa"

// Profile selects the GL specification subset a context is created against.
type Profile int

const (
	ProfileNone Profile = iota
	ProfileCore
	ProfileCompat
)

func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompat:
		return "compatibility"
	}
	return "none"
}

// Robustness is the requested guarantee about context behavior after a
// rasterizer reset. The Try variants fall back to a non-robust context
// instead of failing.
type Robustness int

const (
	NotRobust Robustness = iota
	NoError
	RobustNoResetNotification
	TryRobustNoResetNotification
	RobustLoseContextOnReset
	TryRobustLoseContextOnReset
)

// Version is a GL major/minor version pair.
type Version struct {
	Major uint
	Minor uint
}

func checkRobustness(r Robustness) error {
	switch r {
	case RobustNoResetNotification, RobustLoseContextOnReset:
		return ErrRobustnessNotSupported
	}
	return nil
}

// buildAttribs assembles the zero-terminated attribute list for
// OSMesaCreateContextAttribs. The profile pair is emitted only when a
// profile was requested; the version pair is always present.
func buildAttribs(p Profile, v Version) []int32 {
	var attribs []int32

	switch p {
	case ProfileCore:
		attribs = append(attribs, mesa.Profile, mesa.CoreProfile)
	case ProfileCompat:
		attribs = append(attribs, mesa.Profile, mesa.CompatProfile)
	}

	attribs = append(attribs,
		mesa.ContextMajorVersion, int32(v.Major),
		mesa.ContextMinorVersion, int32(v.Minor),
		// the list must be zero-terminated
		0,
	)
	return attribs
}
