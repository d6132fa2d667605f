package docker

import "strings"

// RetentionTier is the lowest image tier the caller wants preserved. Image
// name prefixes order tiers base < env < eval; anything at or below the
// retention tier is eligible for removal. Unrecognized values retain
// everything.
type RetentionTier string

const (
	RetentionNone RetentionTier = "none"
	RetentionBase RetentionTier = "base"
	RetentionEnv  RetentionTier = "env"
	RetentionFull RetentionTier = "full"
)

// Image name prefixes marking the build layer an image belongs to.
const (
	basePrefix = "sweb.base"
	envPrefix  = "sweb.env"
	evalPrefix = "sweb.eval"
)

// ShouldRemove reports whether an image is stale under the given retention
// tier. An image is removed when its prefix places it at or below the tier
// AND either clean is set or the image did not exist before this run.
// Images without a recognized prefix are never removed, regardless of the
// clean flag.
func ShouldRemove(imageName string, cache RetentionTier, clean bool, priorImages map[string]struct{}) bool {
	_, existedBefore := priorImages[imageName]
	eligible := clean || !existedBefore

	switch {
	case strings.HasPrefix(imageName, basePrefix):
		return cache == RetentionNone && eligible
	case strings.HasPrefix(imageName, envPrefix):
		return (cache == RetentionNone || cache == RetentionBase) && eligible
	case strings.HasPrefix(imageName, evalPrefix):
		return (cache == RetentionNone || cache == RetentionBase || cache == RetentionEnv) && eligible
	}
	return false
}
