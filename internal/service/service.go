package service

import (
	"context"

	"skroutz/categorytree/internal/domain"
	"skroutz/categorytree/internal/render"
	"skroutz/categorytree/internal/tree"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

type Service struct {
	source tree.Source
}

func NewService(source tree.Source) *Service {
	return &Service{
		source: source,
	}
}

// Describe builds the category tree of id, depth levels deep, and renders
// it. A root category that does not exist renders as render.CategoryNotFound
// and is not an error.
func (s *Service) Describe(ctx context.Context, id domain.CategoryID, depth int) (string, error) {
	log.Infof("🔄 Building category tree for %d with depth %d", id, depth)

	root, err := tree.Build(ctx, s.source, id, depth)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			log.Infof("Category %d does not exist", id)
			return render.Render(nil), nil
		}
		return "", err
	}

	log.Infof("✅ Built tree with %d nodes, depth %d", root.Size(), root.Depth())

	return render.Render(root), nil
}
