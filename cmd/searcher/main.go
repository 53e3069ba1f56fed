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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/recipebox"
	"github.com/poiesic/recipebox/config"
	"github.com/poiesic/recipebox/core"
)

var dbPath = flag.String("db", "./recipes_db", "database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
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

	query := "garlic"
	if flag.NArg() > 0 {
		query = strings.Join(flag.Args(), " ")
	}

	// Title and description matches first, then recipes using a matching ingredient.
	byText, err := box.Searcher().SearchRecipes(ctx, query)
	if err != nil {
		panic(err)
	}
	byIngredient, err := box.Searcher().FilterByIngredient(ctx, query)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits for %q\n", len(byText)+len(byIngredient), query)
	for i, hit := range byText {
		fmt.Printf("%d: '%s' (%s)[text]\n", i, hit.Title, hit.Id)
	}
	for i, hit := range byIngredient {
		fmt.Printf("%d: '%s' (%s)[ingredient, %s]\n", len(byText)+i, hit.Title, hit.Id, core.FormatMinutes(hit.TotalTime()))
	}
}
