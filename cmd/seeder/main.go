// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/recipebox"
	"github.com/poiesic/recipebox/config"
	"github.com/poiesic/recipebox/transfer"
)

var sampleBook = &transfer.Book{
	Version: transfer.BookVersion,
	Recipes: []transfer.BookRecipe{
		{
			Title:       "Cheese Omelette",
			Description: "A fluffy two-egg omelette for a quick breakfast.",
			Servings:    1,
			PrepTime:    5,
			CookTime:    5,
			Favorite:    true,
			Categories:  []string{"Main dish"},
			Tags:        []string{"Quick", "Easy"},
			Ingredients: []transfer.BookIngredient{
				{Name: "egg", Amount: 2},
				{Name: "milk", Amount: 2, Unit: "tbsp"},
				{Name: "cheddar", Amount: 30, Unit: "g", Note: "grated"},
				{Name: "butter", Amount: 1, Unit: "tsp"},
			},
			Steps: []transfer.BookStep{
				{Instruction: "Beat the eggs with the milk and a pinch of salt."},
				{Instruction: "Melt the butter in a pan over medium heat."},
				{Instruction: "Pour in the eggs and cook until almost set.", Timer: 3},
				{Instruction: "Sprinkle the cheese, fold and serve."},
			},
		},
		{
			Title:       "Tomato Soup",
			Description: "Roasted tomato soup with basil.",
			Servings:    4,
			PrepTime:    10,
			CookTime:    40,
			Categories:  []string{"Soup"},
			Tags:        []string{"Healthy"},
			Ingredients: []transfer.BookIngredient{
				{Name: "tomato", Amount: 1, Unit: "kg"},
				{Name: "onion", Amount: 1},
				{Name: "garlic", Amount: 3, Unit: "clove"},
				{Name: "vegetable stock", Amount: 500, Unit: "ml"},
				{Name: "basil", Amount: 1, Unit: "bunch"},
			},
			Steps: []transfer.BookStep{
				{Instruction: "Halve the tomatoes and roast them with the garlic.", Timer: 25},
				{Instruction: "Soften the onion in a large pot."},
				{Instruction: "Add the tomatoes and stock and simmer.", Timer: 15},
				{Instruction: "Blend with the basil and season."},
			},
			Videos: []string{"https://www.youtube.com/watch?v=qXzHHuXp9ec"},
		},
		{
			Title:       "Garlic Bread",
			Description: "Crisp baguette with garlic butter.",
			Servings:    4,
			PrepTime:    10,
			CookTime:    12,
			Categories:  []string{"Side dish", "Bread & bakery"},
			Tags:        []string{"Party", "Easy"},
			Ingredients: []transfer.BookIngredient{
				{Name: "baguette", Amount: 1},
				{Name: "butter", Amount: 80, Unit: "g", Note: "softened"},
				{Name: "garlic", Amount: 2, Unit: "clove"},
				{Name: "parsley", Amount: 1, Unit: "tbsp"},
			},
			Steps: []transfer.BookStep{
				{Instruction: "Mash the butter with crushed garlic and parsley."},
				{Instruction: "Slice the baguette and spread the butter between the slices."},
				{Instruction: "Wrap in foil and bake at 200C.", Timer: 12},
			},
		},
		{
			Title:       "Chocolate Mousse",
			Description: "Rich mousse that sets overnight.",
			Servings:    6,
			PrepTime:    20,
			Categories:  []string{"Dessert"},
			Tags:        []string{"Party"},
			Ingredients: []transfer.BookIngredient{
				{Name: "dark chocolate", Amount: 200, Unit: "g"},
				{Name: "egg", Amount: 4},
				{Name: "sugar", Amount: 40, Unit: "g"},
				{Name: "cream", Amount: 200, Unit: "ml"},
			},
			Steps: []transfer.BookStep{
				{Instruction: "Melt the chocolate over a water bath and let it cool."},
				{Instruction: "Whip the cream to soft peaks."},
				{Instruction: "Beat the yolks with the sugar, then fold in the chocolate."},
				{Instruction: "Fold in the cream and the whipped whites, then chill.", Timer: 240},
			},
		},
		{
			Title:       "Spaghetti Aglio e Olio",
			Description: "Pantry pasta with garlic, chili and olive oil.",
			Servings:    2,
			PrepTime:    5,
			CookTime:    12,
			Categories:  []string{"Main dish"},
			Tags:        []string{"Quick"},
			Ingredients: []transfer.BookIngredient{
				{Name: "spaghetti", Amount: 200, Unit: "g"},
				{Name: "garlic", Amount: 4, Unit: "clove"},
				{Name: "olive oil", Amount: 60, Unit: "ml"},
				{Name: "chili flakes", Amount: 1, Unit: "tsp"},
			},
			Steps: []transfer.BookStep{
				{Instruction: "Boil the spaghetti in salted water.", Timer: 10},
				{Instruction: "Gently fry sliced garlic and chili in the oil."},
				{Instruction: "Toss the drained pasta in the oil with a splash of pasta water."},
			},
			Videos: []string{"https://youtu.be/bJUiWdM__Qw"},
		},
		{
			Title:       "Roasted Carrots",
			Description: "Honey glazed carrots.",
			Servings:    4,
			PrepTime:    10,
			CookTime:    30,
			Categories:  []string{"Side dish"},
			Tags:        []string{"Healthy", "Kid-friendly"},
			Ingredients: []transfer.BookIngredient{
				{Name: "carrot", Amount: 600, Unit: "g"},
				{Name: "honey", Amount: 2, Unit: "tbsp"},
				{Name: "olive oil", Amount: 2, Unit: "tbsp"},
				{Name: "thyme", Amount: 3, Unit: "sprig"},
			},
			Steps: []transfer.BookStep{
				{Instruction: "Toss the carrots with oil, honey and thyme."},
				{Instruction: "Roast at 220C until caramelized.", Timer: 30},
			},
		},
	},
}

var (
	dbPath       = flag.String("db", "./recipes_db", "database directory")
	seedFileName = flag.String("src", "", "YAML recipe book to seed from instead of the built-in samples")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// loadBook returns the book to seed from.
func loadBook() (*transfer.Book, error) {
	if seedFileName == nil || *seedFileName == "" {
		return sampleBook, nil
	}
	f, err := os.Open(*seedFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return transfer.ReadBook(f)
}

func main() {
	cfg, err := config.Load(config.WithDBPath(*dbPath))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	box, err := recipebox.Open(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer box.Close()

	book, err := loadBook()
	if err != nil {
		panic(err)
	}

	importer, err := box.NewImporter(os.Stderr, transfer.WithBatchSize(2))
	if err != nil {
		panic(err)
	}
	result, err := importer.ImportBook(ctx, book)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded recipes", "imported", result.Imported, "skipped", result.Skipped, "warnings", len(result.Warnings))
}
