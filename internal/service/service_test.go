package service

import (
	"context"
	"testing"

	"skroutz/categorytree/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type mapSource map[domain.CategoryID][]domain.Category

func (m mapSource) FetchChildren(_ context.Context, id domain.CategoryID) ([]domain.Category, error) {
	if id == 500 {
		return nil, errors.New("503 Service Unavailable")
	}
	categories, ok := m[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return categories, nil
}

var catalog = mapSource{
	76: {{ID: 2, Name: "2"}, {ID: 13, Name: "13"}, {ID: 14, Name: "14"}},
	2:  {},
	77: {{ID: 500, Name: "Broken"}},
}

func TestDescribe(t *testing.T) {
	out, err := NewService(catalog).Describe(context.Background(), 76, 1)
	require.NoError(t, err)
	require.Equal(t, ""+
		"  +------+  \n"+
		"  | Root |  \n"+
		"  +------+  \n"+
		"     |      \n"+
		"  +--+--+   \n"+
		"  |     |   \n"+
		"+---+ +----+\n"+
		"| 2 | | 13 |\n"+
		"+---+ +----+", out)
}

func TestDescribeNotFound(t *testing.T) {
	out, err := NewService(catalog).Describe(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Equal(t, "Category not found.", out)
}

func TestDescribeErrors(t *testing.T) {
	s := NewService(catalog)

	_, err := s.Describe(context.Background(), 76, -1)
	require.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = s.Describe(context.Background(), 77, 2)
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrInvalidArgument))
	require.Contains(t, err.Error(), "503 Service Unavailable")
}
