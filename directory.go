package dirinfo

import (
	"context"
	"fmt"
	"strings"
)

// Directory is an immutable description of a resolved directory: its canonical
// full name and the directory containing it. The whole parent chain is built
// by New, a Directory is never shared between chains
type Directory struct {
	fullName string
	parent   *Directory
}

// New resolves name with r and builds the Directory together with all of its
// parents up to the root. The directory does not have to exist.
// Any error of r is returned as is and no Directory is produced
func New(ctx context.Context, r Resolver, name string) (*Directory, error) {
	if r == nil {
		return nil, newPathError(ErrInvalidArgument, name, errNilResolver)
	}
	if len(name) == 0 {
		return nil, newPathError(ErrInvalidArgument, name, nil)
	}

	res, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	chain := []string{res.FullName}
	for res.HasParent {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		child := res.FullName
		if !isStrictAncestor(res.Parent, child) {
			return nil, newPathError(ErrBrokenChain, child, fmt.Errorf("parent %q", res.Parent))
		}
		if res, err = r.Resolve(ctx, res.Parent); err != nil {
			return nil, err
		}
		if !isStrictAncestor(res.FullName, child) {
			return nil, newPathError(ErrBrokenChain, child, fmt.Errorf("parent resolved to %q", res.FullName))
		}
		chain = append(chain, res.FullName)
	}

	var d *Directory
	for i := len(chain) - 1; i >= 0; i-- {
		d = &Directory{fullName: chain[i], parent: d}
	}
	return d, nil
}

// isStrictAncestor is a string-level check, it only guarantees that the chain shrinks
func isStrictAncestor(parent, child string) bool {
	return len(parent) < len(child) && strings.HasPrefix(child, parent)
}

// FullName returns the canonical absolute name of the directory
func (d *Directory) FullName() string { return d.fullName }

// Parent returns the containing directory, or nil if d is a root
func (d *Directory) Parent() *Directory { return d.parent }

// IsRoot returns whether d has no parent
func (d *Directory) IsRoot() bool { return d.parent == nil }

// Name returns the last element of the full name. For a root it is the full name itself
func (d *Directory) Name() string {
	if d.parent == nil {
		return d.fullName
	}
	return strings.TrimLeft(strings.TrimPrefix(d.fullName, d.parent.fullName), `/\`)
}

// Root returns the topmost directory of the chain
func (d *Directory) Root() *Directory {
	root := d
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Depth returns the number of steps from d to its root
func (d *Directory) Depth() int {
	n := 0
	for p := d.parent; p != nil; p = p.parent {
		n++
	}
	return n
}

// Ancestors returns full names of all parents, the closest one first
func (d *Directory) Ancestors() []string {
	res := make([]string, 0, d.Depth())
	for p := d.parent; p != nil; p = p.parent {
		res = append(res, p.fullName)
	}
	return res
}

// String makes Directory to implement fmt.Stringer
func (d *Directory) String() string { return d.fullName }
