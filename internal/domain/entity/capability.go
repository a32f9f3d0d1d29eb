package entity

// Favoritable and Taggable are structural capabilities shared by collections,
// items, and templates. Generic list code depends on these interfaces rather
// than on concrete entity types.

type Favoritable interface {
	Favorited() bool
	SetFavorited(v bool)
}

type Taggable interface {
	TagList() []string
	SetTagList(tags []string)
}
