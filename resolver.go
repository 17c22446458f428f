package dirinfo

import "context"

// Resolution is a result of resolving a single name
type Resolution struct {
	FullName  string // canonical absolute form of the name
	Parent    string // canonical form of the containing directory, valid only if HasParent
	HasParent bool   // false if FullName is a root
}

// Resolver abstracts the platform layer which canonicalizes names.
// Resolve must classify its failures with ErrInvalidArgument, ErrMalformedPath,
// ErrPathTooLong or ErrAccessDenied where they apply.
// Calling Resolve with a returned Parent must yield the same canonical form.
type Resolver interface {
	Resolve(ctx context.Context, name string) (Resolution, error)
}
