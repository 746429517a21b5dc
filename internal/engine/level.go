package engine

import "resumescope/internal/types"

// LevelForPages maps document page count to a seniority tier. Zero or
// negative counts yield an explicit Unknown tier rather than an empty value.
func LevelForPages(pages int) types.CandidateLevel {
	switch {
	case pages <= 0:
		return types.LevelUnknown
	case pages == 1:
		return types.LevelFresher
	case pages == 2:
		return types.LevelIntermediate
	default:
		return types.LevelExperienced
	}
}
