package transfer

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// BookVersion is the recipe book format version written by Export.
const BookVersion = 1

// Book is the YAML document exchanged by Import and Export.
type Book struct {
	Version    int          `yaml:"version"`
	ExportedAt time.Time    `yaml:"exported_at,omitempty"`
	Recipes    []BookRecipe `yaml:"recipes"`
}

// BookRecipe is one recipe with everything that belongs to it.
type BookRecipe struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description,omitempty"`
	Servings    int              `yaml:"servings,omitempty"`
	PrepTime    int              `yaml:"prep_time,omitempty"`
	CookTime    int              `yaml:"cook_time,omitempty"`
	Favorite    bool             `yaml:"favorite,omitempty"`
	Categories  []string         `yaml:"categories,omitempty"`
	Tags        []string         `yaml:"tags,omitempty"`
	Ingredients []BookIngredient `yaml:"ingredients,omitempty"`
	Steps       []BookStep       `yaml:"steps,omitempty"`
	Videos      []string         `yaml:"videos,omitempty"`
}

// BookIngredient is one ingredient line.
type BookIngredient struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount,omitempty"`
	Unit   string  `yaml:"unit,omitempty"`
	Note   string  `yaml:"note,omitempty"`
}

// BookStep is one cooking step. Steps are numbered by their position.
type BookStep struct {
	Instruction string   `yaml:"instruction"`
	Timer       int      `yaml:"timer,omitempty"` // minutes
	Images      []string `yaml:"images,omitempty"`
}

// ReadBook decodes a recipe book. A missing version is read as version 1.
func ReadBook(r io.Reader) (*Book, error) {
	var book Book
	if err := yaml.NewDecoder(r).Decode(&book); err != nil {
		if err == io.EOF {
			return &Book{Version: BookVersion}, nil
		}
		return nil, fmt.Errorf("decode recipe book: %w", err)
	}
	if book.Version == 0 {
		book.Version = BookVersion
	}
	if book.Version > BookVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, book.Version)
	}
	return &book, nil
}

// WriteBook encodes a recipe book.
func WriteBook(w io.Writer, book *Book) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(book); err != nil {
		return fmt.Errorf("encode recipe book: %w", err)
	}
	return enc.Close()
}
