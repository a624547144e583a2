package tree

import (
	"context"

	"skroutz/categorytree/internal/domain"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// RootLabel is the label of the synthetic root node
	RootLabel = "Root"

	// maxWidth caps both the children per node and the nodes per level
	maxWidth = 2
)

// Source returns the children of a category. It returns
// domain.ErrCategoryNotFound when the category does not exist; any other
// error is a transport failure.
type Source interface {
	FetchChildren(ctx context.Context, id domain.CategoryID) ([]domain.Category, error)
}

// levelCache lives for exactly one Build call.
//
// It keeps a single fetch result per level and hands it to every node of
// that level, so a build costs one fetch per level rather than one per node.
// The reused list belongs to the first node visited at the level; the width
// cap stops later nodes before they can use it.
type levelCache struct {
	fetched map[int][]domain.Category
	count   map[int]int
}

func newLevelCache() *levelCache {
	return &levelCache{
		fetched: make(map[int][]domain.Category),
		count:   make(map[int]int),
	}
}

type builder struct {
	src      Source
	maxLevel int
	cache    *levelCache
}

// Build fetches the category tree rooted at rootID, at most maxLevel levels
// deep and at most two nodes wide per level.
//
// It returns domain.ErrCategoryNotFound when the root category does not
// exist and an error marked domain.ErrInvalidArgument for a negative
// maxLevel or a non positive rootID. A transport failure anywhere aborts the
// build; a missing non-root category simply has no children.
func Build(ctx context.Context, src Source, rootID domain.CategoryID, maxLevel int) (*Node, error) {
	if maxLevel < 0 {
		return nil, errors.Mark(errors.New("negative depth level"), domain.ErrInvalidArgument)
	}
	if !rootID.Valid() {
		return nil, errors.Mark(errors.Newf("invalid category id %d", rootID), domain.ErrInvalidArgument)
	}

	categories, err := src.FetchChildren(ctx, rootID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to fetch root category %d", rootID)
	}

	b := &builder{
		src:      src,
		maxLevel: maxLevel,
		cache:    newLevelCache(),
	}
	// the root lookup doubles as the level 0 fetch
	b.cache.fetched[0] = categories

	root := NewNode(RootLabel, rootID)
	if err := b.fill(ctx, 0, rootID, root); err != nil {
		return nil, err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		perLevel := make([]int, 0, maxLevel+1)
		for _, nodes := range root.Levels() {
			perLevel = append(perLevel, len(nodes))
		}
		log.Debugf("Built tree for category %d: %d nodes, depth %d, nodes per level %v",
			rootID, root.Size(), root.Depth(), perLevel)
	}
	return root, nil
}

func (b *builder) fill(ctx context.Context, level int, id domain.CategoryID, node *Node) error {
	b.cache.count[level]++

	if level == b.maxLevel {
		return nil
	}

	categories, err := b.children(ctx, level, id)
	if err != nil {
		return err
	}

	for _, category := range categories[:min(len(categories), maxWidth)] {
		if b.cache.count[level] >= maxWidth {
			break
		}
		child := node.AppendChild(NewNode(category.Name, category.ID))
		if err := b.fill(ctx, level+1, category.ID, child); err != nil {
			return err
		}
	}

	return nil
}

// children returns the cached listing for level, fetching it with id on the
// first visit.
func (b *builder) children(ctx context.Context, level int, id domain.CategoryID) ([]domain.Category, error) {
	if categories, ok := b.cache.fetched[level]; ok {
		return categories, nil
	}

	categories, err := b.src.FetchChildren(ctx, id)
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		log.Warnf("Category %d disappeared while building level %d, treating it as a leaf", id, level)
		categories = nil
	case err != nil:
		return nil, errors.Wrapf(err, "failed to fetch children of category %d at level %d", id, level)
	}

	b.cache.fetched[level] = categories
	return categories, nil
}
