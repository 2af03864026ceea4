package baking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcehorno/panaderia-api/internal/domain/baking"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func recipeWith(name string, ingredients ...entity.IngredientLine) *entity.Recipe {
	return &entity.Recipe{Name: name, Pieces: 1, Ingredients: ingredients}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Allocate
// ──────────────────────────────────────────────────────────────────────────────

// Caso base: harina 0.5 por pieza × 10 piezas planificadas = 5.0 en total.
func TestAllocate_SumaBasica(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Pan": recipeWith("Pan", entity.IngredientLine{Name: "harina", Qty: dec("0.5"), Unit: entity.UnitKg}),
	}
	lines := []entity.PlanLine{{Recipe: "Pan", Amount: dec("10")}}

	totals, warnings := baking.Allocate(lines, recipes)

	require.Len(t, totals, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "harina", totals[0].Name)
	assert.True(t, totals[0].Amount.Equal(dec("5.0")),
		"0.5 por pieza × 10 piezas debe dar 5.0, se obtuvo %s", totals[0].Amount)
}

// La suma es conmutativa: el orden de las líneas no cambia el resultado.
func TestAllocate_OrdenDeLineasIndiferente(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Pan":   recipeWith("Pan", entity.IngredientLine{Name: "harina", Qty: dec("0.5"), Unit: entity.UnitKg}),
		"Torta": recipeWith("Torta",
			entity.IngredientLine{Name: "harina", Qty: dec("0.3"), Unit: entity.UnitKg},
			entity.IngredientLine{Name: "azucar", Qty: dec("0.1"), Unit: entity.UnitKg},
		),
	}
	forward := []entity.PlanLine{
		{Recipe: "Pan", Amount: dec("10")},
		{Recipe: "Torta", Amount: dec("4")},
	}
	backward := []entity.PlanLine{
		{Recipe: "Torta", Amount: dec("4")},
		{Recipe: "Pan", Amount: dec("10")},
	}

	a, _ := baking.Allocate(forward, recipes)
	b, _ := baking.Allocate(backward, recipes)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
	}
	// harina: 0.5×10 + 0.3×4 = 6.2
	assert.True(t, a[1].Amount.Equal(dec("6.2")), "harina acumulada debe ser 6.2, se obtuvo %s", a[1].Amount)
}

// Líneas duplicadas de la misma receta acumulan, no sobreescriben.
func TestAllocate_DuplicadosAcumulan(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Pan": recipeWith("Pan", entity.IngredientLine{Name: "harina", Qty: dec("0.5"), Unit: entity.UnitKg}),
	}
	lines := []entity.PlanLine{
		{Recipe: "Pan", Amount: dec("10")},
		{Recipe: "Pan", Amount: dec("6")},
	}

	totals, warnings := baking.Allocate(lines, recipes)

	require.Len(t, totals, 1)
	assert.Empty(t, warnings)
	assert.True(t, totals[0].Amount.Equal(dec("8.0")),
		"0.5×10 + 0.5×6 debe dar 8.0, se obtuvo %s", totals[0].Amount)
}

// Receta inexistente: se omite la línea con warning y el resto continúa.
func TestAllocate_RecetaInexistenteSeOmite(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Pan": recipeWith("Pan", entity.IngredientLine{Name: "harina", Qty: dec("0.5"), Unit: entity.UnitKg}),
	}
	lines := []entity.PlanLine{
		{Recipe: "Fantasma", Amount: dec("3")},
		{Recipe: "Pan", Amount: dec("2")},
	}

	totals, warnings := baking.Allocate(lines, recipes)

	require.Len(t, totals, 1)
	assert.True(t, totals[0].Amount.Equal(dec("1.0")))
	require.Len(t, warnings, 1)
	assert.Equal(t, "Fantasma", warnings[0].Recipe)
	assert.Equal(t, baking.WarnRecipeMissing, warnings[0].Reason)
}

// Receta con lista de ingredientes nula: warning de datos malformados.
func TestAllocate_IngredientesMalformados(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Rota": {Name: "Rota", Pieces: 1, Ingredients: nil},
	}
	lines := []entity.PlanLine{{Recipe: "Rota", Amount: dec("5")}}

	totals, warnings := baking.Allocate(lines, recipes)

	assert.Empty(t, totals)
	require.Len(t, warnings, 1)
	assert.Equal(t, baking.WarnIngredientsBroken, warnings[0].Reason)
}

// Cantidad planificada no positiva: warning y línea omitida.
func TestAllocate_CantidadNoPositiva(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Pan": recipeWith("Pan", entity.IngredientLine{Name: "harina", Qty: dec("0.5"), Unit: entity.UnitKg}),
	}
	lines := []entity.PlanLine{{Recipe: "Pan", Amount: dec("0")}}

	totals, warnings := baking.Allocate(lines, recipes)

	assert.Empty(t, totals)
	require.Len(t, warnings, 1)
	assert.Equal(t, baking.WarnAmountInvalid, warnings[0].Reason)
}

// Plan vacío produce resultado vacío sin warnings.
func TestAllocate_PlanVacio(t *testing.T) {
	totals, warnings := baking.Allocate(nil, map[string]*entity.Recipe{})
	assert.Empty(t, totals)
	assert.Empty(t, warnings)
}

// La salida viene ordenada por nombre de ingrediente (determinismo).
func TestAllocate_SalidaOrdenada(t *testing.T) {
	recipes := map[string]*entity.Recipe{
		"Torta": recipeWith("Torta",
			entity.IngredientLine{Name: "zanahoria", Qty: dec("0.2"), Unit: entity.UnitKg},
			entity.IngredientLine{Name: "azucar", Qty: dec("0.1"), Unit: entity.UnitKg},
			entity.IngredientLine{Name: "harina", Qty: dec("0.3"), Unit: entity.UnitKg},
		),
	}
	lines := []entity.PlanLine{{Recipe: "Torta", Amount: dec("1")}}

	totals, _ := baking.Allocate(lines, recipes)

	require.Len(t, totals, 3)
	assert.Equal(t, "azucar", totals[0].Name)
	assert.Equal(t, "harina", totals[1].Name)
	assert.Equal(t, "zanahoria", totals[2].Name)
}
