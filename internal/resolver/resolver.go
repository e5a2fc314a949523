// Package resolver drives end-to-end resolution of a configuration-group
// tree against an external token stream.
//
// The traversal order is the correctness contract: the root is consumed
// first; then a breadth-first list of all groups attached at that moment is
// captured once and walked in order; any group spawned during the walk is
// resolved immediately and recursively, depth-first, before the walk
// advances. Resolution is strictly sequential — dependency lookups read
// tree state written by the same pass, so a deterministic single-writer
// visitation order is what keeps dynamic defaults consistent.
package resolver

import (
	"context"
	"fmt"

	"github.com/vk/conftreego/internal/conftree"
	"github.com/vk/conftreego/internal/ctxlog"
	"github.com/vk/conftreego/internal/tokens"
)

type state int

const (
	stateNotStarted state = iota
	stateRootBound
	stateChildrenPending
	stateDone
)

// Resolver orchestrates one resolution of one group tree. Instances are
// single-use: a failed or finished resolver, like the tree it worked on,
// must be discarded and rebuilt.
type Resolver struct {
	root       *conftree.Group
	tok        tokens.Tokenizer
	st         state
	registered []tokens.OptionSpec
}

// New creates a resolver for the given root group and tokenizer.
func New(root *conftree.Group, tok tokens.Tokenizer) *Resolver {
	if root == nil {
		panic("resolver: root group must not be nil")
	}
	if tok == nil {
		panic("resolver: tokenizer must not be nil")
	}
	return &Resolver{root: root, tok: tok}
}

// Resolve consumes the whole tree against the given tokens. On success the
// tree holds only resolved values and nested groups. On failure the tree is
// left in an unspecified state and must not be reused.
func (r *Resolver) Resolve(ctx context.Context, argv []string) error {
	if r.st != stateNotStarted {
		return fmt.Errorf("resolver has already run; build a fresh tree and resolver to resolve again")
	}
	logger := ctxlog.FromContext(ctx)

	// Root round.
	remaining, _, err := r.resolveGroup(ctx, r.root, argv)
	if err != nil {
		return err
	}
	r.st = stateRootBound
	logger.Debug("Root group consumed.", "group", r.root.Name(), "leftover", len(remaining))

	// The breadth-first work list is captured exactly once, after the root
	// consume. Groups the root spawned are attached by now and take their
	// ordinary place in the list; groups spawned later are resolved inline
	// below and never join it.
	worklist := r.root.Descendants(conftree.BreadthFirst)
	r.st = stateChildrenPending
	for _, g := range worklist {
		if g.Resolved() {
			continue
		}
		remaining, err = r.resolveSubtree(ctx, g, remaining)
		if err != nil {
			return err
		}
	}

	if len(remaining) > 0 {
		return &UnrecognizedTokensError{
			Tokens: remaining,
			Help:   r.renderHelp(),
		}
	}
	r.st = stateDone
	logger.Debug("Resolution finished.", "groups", 1+len(worklist))
	return nil
}

// resolveSubtree resolves one group and then, depth-first, every group its
// consumption spawned, before returning control to the outer walk.
func (r *Resolver) resolveSubtree(ctx context.Context, g *conftree.Group, remaining []string) ([]string, error) {
	remaining, spawned, err := r.resolveGroup(ctx, g, remaining)
	if err != nil {
		return nil, err
	}
	for _, child := range spawned {
		remaining, err = r.resolveSubtree(ctx, child, remaining)
		if err != nil {
			return nil, err
		}
	}
	return remaining, nil
}

// resolveGroup registers one group's declared options with the tokenizer
// and consumes the resolved values.
func (r *Resolver) resolveGroup(ctx context.Context, g *conftree.Group, remaining []string) ([]string, []*conftree.Group, error) {
	logger := ctxlog.FromContext(ctx)
	specs := optionSpecs(g)
	r.registered = append(r.registered, specs...)

	values, leftover, err := r.tok.Resolve(specs, remaining)
	if err != nil {
		return nil, nil, fmt.Errorf("tokenizing options of group %q: %w", g.Name(), err)
	}

	spawned, err := g.Consume(values)
	if err != nil {
		return nil, nil, err
	}
	if len(spawned) > 0 {
		logger.Debug("Group spawned children.", "group", g.Name(), "count", len(spawned))
	}
	return leftover, spawned, nil
}

// optionSpecs translates a group's unresolved declarations into tokenizer
// descriptors, in declaration order.
func optionSpecs(g *conftree.Group) []tokens.OptionSpec {
	var specs []tokens.OptionSpec
	for _, s := range g.Options() {
		d := s.Option()
		specs = append(specs, tokens.OptionSpec{
			Name:    d.Name,
			Type:    d.Type,
			Default: d.Default,
			Choices: d.Choices,
			IsFlag:  d.IsFlag(),
			Help:    d.Help,
		})
	}
	return specs
}
