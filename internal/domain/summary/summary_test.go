package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationforge/station-planner/internal/domain/station"
	"github.com/stationforge/station-planner/internal/domain/summary"
	"github.com/stationforge/station-planner/test/helpers"
)

func entryFor(t *testing.T, entries []summary.Entry, productID string) summary.Entry {
	t.Helper()
	for _, e := range entries {
		if e.ProductID == productID {
			return e
		}
	}
	t.Fatalf("no entry for %q in %v", productID, entries)
	return summary.Entry{}
}

func hasEntry(entries []summary.Entry, productID string) bool {
	for _, e := range entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

func TestClassify_IntermediateVsProductFlipsAtMergedScope(t *testing.T) {
	// Arrange - wheat is a net product of the farm group alone, but an
	// intermediate once the factory group's consumption merges in
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	farm, err := station.NewModuleInstanceByID(cat, "wheat_farm", 1)
	mustAppend(t, st.At(0), farm, err)
	g2 := station.NewGroup()
	fab, err := station.NewModuleInstanceByID(cat, "food_rations_fab", 1)
	mustAppend(t, g2, fab, err)
	require.NoError(t, st.Append(g2))

	// Act
	farmOnly := summary.SummarizeGroup(st.At(0))
	whole := summary.SummarizeStation(st)

	// Assert - group scope
	wheat := entryFor(t, farmOnly.Products, "wheat")
	assert.Equal(t, 300, wheat.Amount)
	assert.Equal(t, 450, wheat.MaxAmount)
	assert.False(t, hasEntry(farmOnly.Intermediates, "wheat"))

	// Station scope: same product, different class; never the sum of the
	// per-group summaries
	assert.False(t, hasEntry(whole.Products, "wheat"))
	wheat = entryFor(t, whole.Intermediates, "wheat")
	assert.Equal(t, 180, wheat.Amount)
	assert.Equal(t, 330, wheat.MaxAmount)

	rations := entryFor(t, whole.Products, "foodrations")
	assert.Equal(t, 200, rations.Amount)

	cells := entryFor(t, whole.Resources, "energycells")
	assert.Equal(t, 110, cells.Amount)
	assert.Equal(t, 110, cells.MaxAmount, "pure resources carry the same figure in both columns")

	assert.Equal(t, -140, whole.Workforce)
}

func TestClassify_FoodCoveredByProductionIsNetted(t *testing.T) {
	// Arrange - one rations factory out-produces one habitat's food draw
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	fab, err := station.NewModuleInstanceByID(cat, "food_rations_fab", 1)
	mustAppend(t, st.At(0), fab, err)
	habitat, err := station.NewModuleInstanceByID(cat, "habitat_m", 1)
	mustAppend(t, st.At(0), habitat, err)

	// Act
	s := summary.SummarizeStation(st)

	// Assert - the covered food draw disappears and the product nets down
	assert.False(t, hasEntry(s.Foods, "foodrations"))
	rations := entryFor(t, s.Products, "foodrations")
	assert.Equal(t, 188, rations.Amount)
	assert.Equal(t, 188, rations.MaxAmount)
	assert.Equal(t, 150, s.Workforce)
}

func TestClassify_UncoveredFoodDrawIsShown(t *testing.T) {
	// Arrange - habitats only, nothing produces food rations
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	habitat, err := station.NewModuleInstanceByID(cat, "habitat_m", 2)
	mustAppend(t, st.At(0), habitat, err)

	// Act
	s := summary.SummarizeStation(st)

	// Assert
	food := entryFor(t, s.Foods, "foodrations")
	assert.Equal(t, 24, food.Amount)
	assert.Equal(t, 24, food.MaxAmount)
	assert.Equal(t, 500, s.Workforce)
	assert.Empty(t, s.Products)
}

func TestClassify_WorkforceSurplusWithUncoveredFood(t *testing.T) {
	// Arrange - habitats supply more workforce than production draws,
	// leaving a surplus and an uncovered food requirement
	f := summary.NewFlows()
	f.Workforce = 200
	f.Foods["foodrations"] = 12

	// Act
	s := summary.Classify(f)

	// Assert
	assert.Equal(t, 200, s.Workforce)
	food := entryFor(t, s.Foods, "foodrations")
	assert.Equal(t, 12, food.Amount)
	assert.Equal(t, 12, food.MaxAmount)
}

func TestClassify_PartiallyCoveredFood(t *testing.T) {
	// Arrange - nominal production below the draw, max production above
	f := summary.NewFlows()
	f.Foods["foodrations"] = 10
	f.Produced["foodrations"] = 8
	f.MaxProduced["foodrations"] = 12

	// Act
	s := summary.Classify(f)

	// Assert - nominal remainder shows, the max column floors at zero
	food := entryFor(t, s.Foods, "foodrations")
	assert.Equal(t, 2, food.Amount)
	assert.Equal(t, 0, food.MaxAmount)
}

func TestClassify_FoodFullyCoveredOnBothColumnsIsSkipped(t *testing.T) {
	// Arrange
	f := summary.NewFlows()
	f.Foods["foodrations"] = 10
	f.Produced["foodrations"] = 15
	f.MaxProduced["foodrations"] = 20

	// Act
	s := summary.Classify(f)

	// Assert
	assert.False(t, hasEntry(s.Foods, "foodrations"))
}

func TestClassify_MaxBoundRoundsHalfAwayFromZero(t *testing.T) {
	// Arrange
	f := summary.NewFlows()
	f.Produced["up"] = 10
	f.MaxProduced["up"] = 10.5
	f.Produced["down"] = 5
	f.MaxProduced["down"] = 5.5
	f.Resources["down"] = 10

	// Act
	s := summary.Classify(f)

	// Assert
	up := entryFor(t, s.Products, "up")
	assert.Equal(t, 11, up.MaxAmount)
	down := entryFor(t, s.Intermediates, "down")
	assert.Equal(t, -5, down.Amount)
	assert.Equal(t, -5, down.MaxAmount)
}

func TestClassify_ProductShownWhenOnlyMaxBoundIsPositive(t *testing.T) {
	// Arrange - nominal net is zero but the efficiency bound is positive
	f := summary.NewFlows()
	f.Produced["x"] = 10
	f.MaxProduced["x"] = 15
	f.Foods["x"] = 10

	// Act
	s := summary.Classify(f)

	// Assert
	x := entryFor(t, s.Products, "x")
	assert.Equal(t, 0, x.Amount)
	assert.Equal(t, 5, x.MaxAmount)
}

func TestClassify_NegativeIntermediateIsAlwaysShown(t *testing.T) {
	// Arrange - consumption exceeds production
	f := summary.NewFlows()
	f.Produced["wheat"] = 100
	f.MaxProduced["wheat"] = 100
	f.Resources["wheat"] = 240

	// Act
	s := summary.Classify(f)

	// Assert
	wheat := entryFor(t, s.Intermediates, "wheat")
	assert.Equal(t, -140, wheat.Amount)
	assert.Equal(t, -140, wheat.MaxAmount)
	assert.False(t, hasEntry(s.Resources, "wheat"))
}

func TestClassify_AttributesCarryHiddenFlagForZeroTotals(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	disc, err := station.NewModuleInstanceByID(cat, "defence_disc", 1)
	mustAppend(t, st.At(0), disc, err)

	// Act
	s := summary.SummarizeStation(st)

	// Assert - the full attribute set is always present
	assert.Len(t, s.Attributes, len(summary.Attributes))
	assert.Equal(t, summary.AttributeTotal{Value: 8, Hidden: false}, s.Attributes[summary.AttrTurretNum])
	assert.Equal(t, summary.AttributeTotal{Value: 4, Hidden: false}, s.Attributes[summary.AttrSLaunchTubes])
	assert.Equal(t, summary.AttributeTotal{Value: 0, Hidden: true}, s.Attributes[summary.AttrSDock])
}

func TestClassify_EntriesAreSortedByProductID(t *testing.T) {
	// Arrange
	f := summary.NewFlows()
	f.Resources["zeta"] = 1
	f.Resources["alpha"] = 1
	f.Resources["mid"] = 1

	// Act
	s := summary.Classify(f)

	// Assert
	require.Len(t, s.Resources, 3)
	assert.Equal(t, "alpha", s.Resources[0].ProductID)
	assert.Equal(t, "mid", s.Resources[1].ProductID)
	assert.Equal(t, "zeta", s.Resources[2].ProductID)
}

func TestClassify_EmptyFlows(t *testing.T) {
	// Act
	s := summary.Classify(summary.NewFlows())

	// Assert
	assert.Empty(t, s.Products)
	assert.Empty(t, s.Intermediates)
	assert.Empty(t, s.Resources)
	assert.Empty(t, s.Foods)
	assert.Equal(t, 0, s.Workforce)
	for _, a := range summary.Attributes {
		assert.True(t, s.Attributes[a].Hidden)
	}
}
