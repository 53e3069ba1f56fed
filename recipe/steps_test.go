package recipe

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/recipebox/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStep_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	step, err := svc.SaveStep(context.Background(), &core.CookingStep{RecipeId: "r1", Instruction: "Boil"})
	require.NoError(t, err)
	assert.NotEmpty(t, step.Id)
	assert.Equal(t, 1, step.StepNumber)
	assert.Equal(t, []string{}, step.ImageUrls)
}

func TestSaveStep_Invalid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveStep(ctx, nil)
	assert.ErrorIs(t, err, core.ErrInvalidStep)
	_, err = svc.SaveStep(ctx, &core.CookingStep{Instruction: "orphan"})
	assert.ErrorIs(t, err, core.ErrMissingRecipeID)
	_, err = svc.SaveStep(ctx, &core.CookingStep{RecipeId: "r1", TimerDuration: -1})
	assert.ErrorIs(t, err, core.ErrNegativeDuration)
}

func TestStepsForRecipe_Sorted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, n := range []int{3, 1, 2} {
		_, err := svc.SaveStep(ctx, &core.CookingStep{RecipeId: "r1", StepNumber: n, Instruction: fmt.Sprint(n)})
		require.NoError(t, err)
	}
	_, err := svc.SaveStep(ctx, &core.CookingStep{RecipeId: "other", StepNumber: 1})
	require.NoError(t, err)

	steps, err := svc.StepsForRecipe(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, step := range steps {
		assert.Equal(t, i+1, step.StepNumber)
	}
}

func TestDeleteStep_KeepsNumberingDense(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for remove := 1; remove <= n; remove++ {
			t.Run(fmt.Sprintf("remove %d of %d", remove, n), func(t *testing.T) {
				svc, _ := newTestService(t)
				ctx := context.Background()

				var ids []string
				for i := 1; i <= n; i++ {
					step, err := svc.SaveStep(ctx, &core.CookingStep{
						RecipeId:    "r1",
						StepNumber:  i,
						Instruction: fmt.Sprintf("step %d", i),
					})
					require.NoError(t, err)
					ids = append(ids, step.Id)
				}

				require.NoError(t, svc.DeleteStep(ctx, ids[remove-1]))

				steps, err := svc.StepsForRecipe(ctx, "r1")
				require.NoError(t, err)
				require.Len(t, steps, n-1)
				for i, step := range steps {
					assert.Equal(t, i+1, step.StepNumber)
					assert.NotEqual(t, ids[remove-1], step.Id)
				}
			})
		}
	}
}

func TestDeleteStep_PreservesOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var ids []string
	for i, text := range []string{"chop", "fry", "plate"} {
		step, err := svc.SaveStep(ctx, &core.CookingStep{RecipeId: "r1", StepNumber: i + 1, Instruction: text})
		require.NoError(t, err)
		ids = append(ids, step.Id)
	}

	require.NoError(t, svc.DeleteStep(ctx, ids[0]))

	steps, err := svc.StepsForRecipe(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "fry", steps[0].Instruction)
	assert.Equal(t, "plate", steps[1].Instruction)
}

func TestDeleteStep_Missing(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.DeleteStep(context.Background(), "missing"))
}

func TestIngredients(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveIngredient(ctx, &core.Ingredient{RecipeId: "r1", Name: "salt", Amount: 1, Unit: "tsp"})
	require.NoError(t, err)
	egg, err := svc.SaveIngredient(ctx, &core.Ingredient{RecipeId: "r1", Name: "Egg", Amount: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, egg.Id)

	_, err = svc.SaveIngredient(ctx, &core.Ingredient{RecipeId: "r1", Name: "Milk", Amount: -1})
	assert.ErrorIs(t, err, core.ErrNegativeAmount)

	ingredients, err := svc.IngredientsForRecipe(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Egg", ingredients[0].Name)
	assert.Equal(t, "salt", ingredients[1].Name)

	require.NoError(t, svc.DeleteIngredient(ctx, egg.Id))
	require.NoError(t, svc.DeleteIngredient(ctx, egg.Id))

	ingredients, err = svc.IngredientsForRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, ingredients, 1)
}
