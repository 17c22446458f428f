package dirinfo

import "strings"

// extended-length path limit
const maxLocalPathLength = 32767

func invalidLocalRune(r rune) bool { return r < 32 || strings.ContainsRune(`<>"|`, r) }
