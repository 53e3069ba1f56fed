package storage

import "github.com/poiesic/recipebox/core"

// Collection names a fixed set of records of one entity type.
type Collection string

const (
	Recipes       Collection = "recipes"
	Ingredients   Collection = "ingredients"
	Steps         Collection = "steps"
	Videos        Collection = "videos"
	Categories    Collection = "categories"
	Tags          Collection = "tags"
	ShoppingLists Collection = "shoppingLists"
	ShoppingItems Collection = "shoppingItems"
)

// Collections lists every recognized collection in creation order.
var Collections = []Collection{
	Recipes,
	Ingredients,
	Steps,
	Videos,
	Categories,
	Tags,
	ShoppingLists,
	ShoppingItems,
}

// Valid reports whether c is one of the recognized collections.
func (c Collection) Valid() bool {
	switch c {
	case Recipes, Ingredients, Steps, Videos, Categories, Tags, ShoppingLists, ShoppingItems:
		return true
	}
	return false
}

// Check returns ErrInvalidCollection for unrecognized names.
func (c Collection) Check() error {
	if !c.Valid() {
		return ErrInvalidCollection
	}
	return nil
}

// Accepts reports whether the record's concrete type belongs in the collection.
func (c Collection) Accepts(record core.Record) bool {
	switch record.(type) {
	case *core.Recipe:
		return c == Recipes
	case *core.Ingredient:
		return c == Ingredients
	case *core.CookingStep:
		return c == Steps
	case *core.Video:
		return c == Videos
	case *core.Category:
		return c == Categories
	case *core.Tag:
		return c == Tags
	case *core.ShoppingList:
		return c == ShoppingLists
	case *core.ShoppingItem:
		return c == ShoppingItems
	}
	return false
}
