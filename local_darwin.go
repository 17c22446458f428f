package dirinfo

const maxLocalPathLength = 1024

func invalidLocalRune(r rune) bool { return r == 0 }
