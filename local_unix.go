//go:build !windows && !darwin

package dirinfo

// PATH_MAX on Linux and most BSDs
const maxLocalPathLength = 4096

func invalidLocalRune(r rune) bool { return r == 0 }
