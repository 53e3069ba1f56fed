package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type runner struct {
	t  *testing.T
	db string
}

func newRunner(t *testing.T) *runner {
	t.Setenv("RECIPEBOX_YOUTUBE_API_KEY", "")
	return &runner{t: t, db: filepath.Join(t.TempDir(), "db")}
}

func (r *runner) run(args ...string) (string, string, error) {
	r.t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"recipebox", "--db", r.db, "-l", "error"}, args...))
	return stdout.String(), stderr.String(), err
}

func (r *runner) mustRun(args ...string) string {
	r.t.Helper()
	out, stderr, err := r.run(args...)
	require.NoError(r.t, err, stderr)
	return out
}

// idIn returns the id printed in parentheses by add and create commands.
func idIn(t *testing.T, out string) string {
	t.Helper()
	start := strings.LastIndex(out, "(")
	end := strings.LastIndex(out, ")")
	require.True(t, start >= 0 && end > start, "no id in %q", out)
	return out[start+1 : end]
}

func TestRecipeLifecycle(t *testing.T) {
	r := newRunner(t)

	out := r.mustRun("init")
	assert.Contains(t, out, "Initialized database at "+r.db)

	out = r.mustRun("add",
		"--title", "Omelette",
		"--cook", "10",
		"--favorite",
		"--category", "soup",
		"--tag", "Quick",
		"-i", "egg,2",
		"-i", "milk,50,ml",
		"-s", "Beat the eggs",
		"-s", "Fry",
	)
	omelette := idIn(t, out)
	r.mustRun("add", "--title", "Soup", "--cook", "30", "-i", "carrot,3")

	out = r.mustRun("list")
	assert.Contains(t, out, "Omelette")
	assert.Contains(t, out, "Soup")
	assert.Less(t, strings.Index(out, "Omelette"), strings.Index(out, "Soup"))

	out = r.mustRun("list", "--favorites")
	assert.Contains(t, out, "Omelette")
	assert.NotContains(t, out, "Soup")

	out = r.mustRun("show", omelette)
	assert.Contains(t, out, "Favorite")
	assert.Contains(t, out, "Categories: Soup")
	assert.Contains(t, out, "Tags: Quick")
	assert.Contains(t, out, "2 egg")
	assert.Contains(t, out, "50 ml milk")
	assert.Contains(t, out, "1. Beat the eggs")
	assert.Contains(t, out, "2. Fry")

	out = r.mustRun("edit", "--title", "Cheese Omelette", "--servings", "2", omelette)
	assert.Contains(t, out, "Updated Cheese Omelette")

	out = r.mustRun("favorite", omelette)
	assert.Contains(t, out, "no longer a favorite")

	r.mustRun("delete", omelette)
	_, _, err := r.run("show", omelette)
	assert.Error(t, err)

	out = r.mustRun("list")
	assert.NotContains(t, out, "Omelette")
}

func TestSearch(t *testing.T) {
	r := newRunner(t)
	r.mustRun("add", "--title", "Omelette", "--cook", "10", "--favorite", "-c", "Main dish", "-i", "egg,2")
	r.mustRun("add", "--title", "Soup", "--cook", "30", "-c", "Soup", "-i", "onion,1")

	out := r.mustRun("search", "--max-cook", "15", "o")
	assert.Contains(t, out, "Omelette")
	assert.NotContains(t, out, "Soup")

	out = r.mustRun("search", "--ingredient", "ONI")
	assert.Contains(t, out, "Soup")
	assert.NotContains(t, out, "Omelette")

	out = r.mustRun("search", "--category", "SOUP")
	assert.Contains(t, out, "Soup")
	assert.NotContains(t, out, "Omelette")

	out = r.mustRun("search", "--favorites")
	assert.Contains(t, out, "Omelette")

	out = r.mustRun("search", "pizza")
	assert.Contains(t, out, "No recipes found")

	out, stderr, err := r.run("search", "--explain", "--max-cook", "15", "o")
	require.NoError(t, err)
	assert.Contains(t, out, "Omelette")
	assert.Contains(t, stderr, "scanned 2 recipes")
	assert.Contains(t, stderr, "cook time")
	assert.Contains(t, stderr, "1 matching")

	_, _, err = r.run("search", "--category", "no-such-category")
	assert.ErrorIs(t, err, errUnknownName)
}

func TestVocabulary(t *testing.T) {
	r := newRunner(t)

	out := r.mustRun("categories")
	assert.Contains(t, out, "Main dish")

	out = r.mustRun("categories", "--add", "Brunch", "--color", "#FF0000")
	assert.Contains(t, out, "Brunch  #FF0000")

	out = r.mustRun("tags", "--add", "Spicy")
	assert.Contains(t, out, "Spicy")
}

func TestVideos(t *testing.T) {
	r := newRunner(t)
	recipeID := idIn(t, r.mustRun("add", "--title", "Pasta"))

	out := r.mustRun("video", "lookup", "https://youtu.be/dQw4w9WgXcQ")
	assert.Contains(t, out, "dQw4w9WgXcQ")

	out = r.mustRun("video", "link", recipeID, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	videoID := idIn(t, out)

	out = r.mustRun("video", "list", recipeID)
	assert.Contains(t, out, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	out = r.mustRun("video", "unlink", recipeID, videoID)
	assert.Contains(t, out, "Removed")

	out = r.mustRun("video", "unlink", recipeID, videoID)
	assert.Contains(t, out, "not linked")

	_, _, err := r.run("video", "link", recipeID, "not a link")
	assert.Error(t, err)
}

func TestShopping(t *testing.T) {
	r := newRunner(t)
	a := idIn(t, r.mustRun("add", "--title", "Omelette", "-i", "egg,2"))
	b := idIn(t, r.mustRun("add", "--title", "Cake", "-i", "Egg,3", "-i", "flour,200,g"))

	listID := idIn(t, r.mustRun("shopping", "create", "--name", "Weekend", a, b))

	out := r.mustRun("shopping", "lists")
	assert.Contains(t, out, "Weekend")

	out = r.mustRun("shopping", "items", listID)
	assert.Contains(t, strings.ToLower(out), "5 egg")
	assert.Contains(t, out, "200 g flour")
	assert.Contains(t, out, "[ ]")

	var itemID string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "flour") {
			itemID = strings.Fields(line)[2]
		}
	}
	require.NotEmpty(t, itemID)

	out = r.mustRun("shopping", "toggle", itemID)
	assert.Contains(t, out, "flour checked")

	r.mustRun("shopping", "delete", listID)
	out = r.mustRun("shopping", "lists")
	assert.NotContains(t, out, "Weekend")
}

func TestImportExport(t *testing.T) {
	r := newRunner(t)
	dir := t.TempDir()

	book := filepath.Join(dir, "book.yaml")
	require.NoError(t, os.WriteFile(book, []byte(`version: 1
recipes:
  - title: Pancakes
    servings: 4
    categories: [Breakfast]
    ingredients:
      - name: flour
        amount: 200
        unit: g
    steps:
      - instruction: Mix
  - title: ""
`), 0644))

	out, stderr, err := r.run("import", book)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 recipes, skipped 1")
	assert.Contains(t, stderr, "Progress: 2/2")

	exported := filepath.Join(dir, "out.yaml")
	out = r.mustRun("export", exported)
	assert.Contains(t, out, "Exported 1 recipes")

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Pancakes")
	assert.Contains(t, string(data), "- Breakfast")

	out = r.mustRun("export")
	assert.Contains(t, out, "title: Pancakes")

	_, _, err = r.run("import", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestArguments(t *testing.T) {
	r := newRunner(t)

	_, _, err := r.run("show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECIPE_ID")

	_, _, err = r.run("add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	_, _, err = r.run("add", "--title", "Bad", "-i", "egg,lots")
	assert.Error(t, err)
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		raw    string
		name    string
		amount  float64
		unit    string
		wantErr bool
	}{
		{"egg", "egg", 0, "", false},
		{"egg,2", "egg", 2, "", false},
		{" milk , 1.5 , l ", "milk", 1.5, "l", false},
		{"salt,,pinch", "salt", 0, "pinch", false},
		{",2", "", 0, "", true},
		{"egg,two", "", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseIngredient(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, got.Name)
			assert.Equal(t, tt.amount, got.Amount)
			assert.Equal(t, tt.unit, got.Unit)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "error"} {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info"},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error { return nil },
				}
				require.NoError(t, app.Run([]string{"test", "-l", tc}))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := newApp(&stdout, &stderr).Run([]string{"recipebox", "--log-level", "invalid", "list"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log level falls back to the environment", func(t *testing.T) {
		t.Setenv("RECIPEBOX_LOG_LEVEL", "debug")
		var stdout, stderr bytes.Buffer
		app := newApp(&stdout, &stderr)
		app.Commands = append(app.Commands, &cli.Command{
			Name: "level",
			Action: func(c *cli.Context) error {
				assert.Equal(t, "debug", c.String("log-level"))
				assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
				return nil
			},
		})
		require.NoError(t, app.Run([]string{"recipebox", "level"}))
	})

	t.Run("flag wins over the environment", func(t *testing.T) {
		t.Setenv("RECIPEBOX_LOG_LEVEL", "debug")
		var stdout, stderr bytes.Buffer
		app := newApp(&stdout, &stderr)
		app.Commands = append(app.Commands, &cli.Command{
			Name: "level",
			Action: func(c *cli.Context) error {
				assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
				return nil
			},
		})
		require.NoError(t, app.Run([]string{"recipebox", "-l", "error", "level"}))
	})

	t.Run("invalid level in the environment returns error", func(t *testing.T) {
		t.Setenv("RECIPEBOX_LOG_LEVEL", "chatty")
		var stdout, stderr bytes.Buffer
		err := newApp(&stdout, &stderr).Run([]string{"recipebox", "list"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag defaults to info", func(t *testing.T) {
		app := newApp(&bytes.Buffer{}, &bytes.Buffer{})
		var levelFlag *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "log-level" {
				levelFlag = f
			}
		}
		require.NotNil(t, levelFlag)
		assert.Equal(t, "info", levelFlag.Value)
		assert.Equal(t, []string{"l"}, levelFlag.Aliases)
	})
}
