package domain

import "strconv"

// CategoryID identifies a category in the remote catalog
type CategoryID int64

// Valid reports whether the id can exist remotely. Ids are positive.
func (id CategoryID) Valid() bool {
	return id > 0
}

func (id CategoryID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Category is a single entry of a category children listing
type Category struct {
	ID            CategoryID `json:"id"`
	Name          string     `json:"name"`
	ParentID      CategoryID `json:"parent_id"`
	ChildrenCount int        `json:"children_count"`
	Path          string     `json:"path"` // Comma separated ancestor ids, e.g. "76,1269,40"
}

// CategoriesResponse is the body of GET /categories/{id}/children
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
