package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"slices"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// Record is implemented by every entity that can be stored in a collection.
type Record interface {
	RecordID() string
}

// NewID generates a fresh random identifier for a record.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current UTC time at the precision records are stored with.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// IDFromContent generates a deterministic identifier from text content using BLAKE2b hashing.
// Identical content always produces the identical identifier, which keeps seeded
// vocabulary stable across databases.
func IDFromContent(text string) string {
	h, _ := blake2b.New(16, nil) // 16 bytes = 128 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Recipe is the root entity. Ingredients, steps and videos point back at it by id.
type Recipe struct {
	Id          string
	Title       string
	Description string
	Servings    int
	PrepTime    int // minutes
	CookTime    int // minutes
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Favorite    bool
	CategoryIds []string
	TagIds      []string
}

func (r *Recipe) RecordID() string { return r.Id }

// TotalTime returns preparation plus cooking time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasCategory reports whether the recipe is filed under the category.
func (r *Recipe) HasCategory(categoryID string) bool {
	return slices.Contains(r.CategoryIds, categoryID)
}

// HasTag reports whether the recipe carries the tag.
func (r *Recipe) HasTag(tagID string) bool {
	return slices.Contains(r.TagIds, tagID)
}

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Id       string
	RecipeId string
	Name     string
	Amount   float64
	Unit     string
	Note     string
}

func (i *Ingredient) RecordID() string { return i.Id }

// CookingStep is one instruction of a recipe. StepNumber is 1-based and dense within a recipe.
type CookingStep struct {
	Id            string
	RecipeId      string
	StepNumber    int
	Instruction   string
	ImageUrls     []string
	TimerDuration int // minutes, 0 = no timer
}

func (s *CookingStep) RecordID() string { return s.Id }

// Category is a global classification shared by all recipes.
type Category struct {
	Id    string
	Name  string
	Color string
	Icon  string
}

func (c *Category) RecordID() string { return c.Id }

// Tag is a global free-form label shared by all recipes.
type Tag struct {
	Id   string
	Name string
}

func (t *Tag) RecordID() string { return t.Id }

// Video is metadata for an externally hosted video, optionally linked to a recipe.
type Video struct {
	Id           string
	RecipeId     string
	VideoId      string // external video id
	Title        string
	ChannelTitle string
	ThumbnailUrl string
	Description  string
	PublishedAt  time.Time
}

func (v *Video) RecordID() string { return v.Id }

// EmbedURL returns the URL used to embed the video in a player.
func (v *Video) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.VideoId
}

// WatchURL returns the canonical watch page of the video.
func (v *Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.VideoId
}

// ShoppingList groups shopping items gathered from one or more recipes.
type ShoppingList struct {
	Id        string
	Name      string
	RecipeIds []string
	CreatedAt time.Time
}

func (l *ShoppingList) RecordID() string { return l.Id }

// ShoppingItem is one entry of a shopping list.
// RecipeId is empty when the item merges ingredients of several recipes.
type ShoppingItem struct {
	Id       string
	ListId   string
	RecipeId string
	Name     string
	Amount   float64
	Unit     string
	Checked  bool
}

func (i *ShoppingItem) RecordID() string { return i.Id }

// RecipeDetails is a recipe together with everything that references it.
type RecipeDetails struct {
	Recipe      *Recipe
	Ingredients []*Ingredient
	Steps       []*CookingStep // ordered by StepNumber
	Videos      []*Video
}
