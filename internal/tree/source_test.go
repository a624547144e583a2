package tree

import (
	"context"
	"fmt"

	"skroutz/categorytree/internal/domain"
)

// fakeSource serves a fixed catalog and records every lookup.
type fakeSource struct {
	children map[domain.CategoryID][]domain.Category
	failing  map[domain.CategoryID]error
	calls    []domain.CategoryID
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		children: make(map[domain.CategoryID][]domain.Category),
		failing:  make(map[domain.CategoryID]error),
	}
}

func (s *fakeSource) FetchChildren(_ context.Context, id domain.CategoryID) ([]domain.Category, error) {
	s.calls = append(s.calls, id)
	if err, ok := s.failing[id]; ok {
		return nil, err
	}
	categories, ok := s.children[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return categories, nil
}

func (s *fakeSource) add(parent domain.CategoryID, children ...domain.CategoryID) {
	list := make([]domain.Category, 0, len(children))
	for _, id := range children {
		list = append(list, domain.Category{ID: id, Name: fmt.Sprintf("Category %d", id), ParentID: parent})
	}
	s.children[parent] = list
}

// fullCatalog gives every category three children, depth levels below root.
// Child ids append a digit to the parent id.
func fullCatalog(root domain.CategoryID, depth int) *fakeSource {
	src := newFakeSource()
	var grow func(id domain.CategoryID, level int)
	grow = func(id domain.CategoryID, level int) {
		if level == depth {
			src.add(id)
			return
		}
		src.add(id, id*10+1, id*10+2, id*10+3)
		for i := domain.CategoryID(1); i <= 3; i++ {
			grow(id*10+i, level+1)
		}
	}
	grow(root, 0)
	return src
}
