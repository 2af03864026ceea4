// Package baking contiene los servicios de dominio puros de la panadería:
// el cálculo de asignación diaria de ingredientes y el escalado de recetas.
// Sin efectos secundarios ni dependencias de infraestructura.
package baking

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// IngredientTotal total requerido de un ingrediente para la producción del día.
type IngredientTotal struct {
	Name   string
	Amount decimal.Decimal
}

// AllocationWarning línea omitida durante el cálculo, con su causa.
// El cálculo degrada con gracia: una receta ausente o un dato malformado
// descarta esa línea y el resto continúa.
type AllocationWarning struct {
	Recipe     string
	Ingredient string
	Reason     string
}

const (
	WarnRecipeMissing     = "receta inexistente"
	WarnIngredientsBroken = "lista de ingredientes malformada"
	WarnAmountInvalid     = "cantidad no numérica o negativa"
)

// Allocate calcula la demanda total de ingredientes para las líneas de un plan:
// total[nombre] += qtyPorPieza × cantidadPlanificada, acumulando sobre todas
// las recetas del día. La suma es conmutativa, así que el resultado no depende
// del orden de las líneas; la salida se ordena por nombre de ingrediente para
// que además sea determinista. Líneas duplicadas de una misma receta acumulan
// (aditivo, no sobreescribe).
//
// recipes mapea nombre → receta; una línea cuya receta no esté en el mapa se
// omite con warning en lugar de abortar el cálculo completo.
func Allocate(lines []entity.PlanLine, recipes map[string]*entity.Recipe) ([]IngredientTotal, []AllocationWarning) {
	totals := make(map[string]decimal.Decimal)
	var warnings []AllocationWarning

	for _, line := range lines {
		recipe, ok := recipes[line.Recipe]
		if !ok || recipe == nil {
			warnings = append(warnings, AllocationWarning{Recipe: line.Recipe, Reason: WarnRecipeMissing})
			continue
		}
		if recipe.Ingredients == nil {
			warnings = append(warnings, AllocationWarning{Recipe: line.Recipe, Reason: WarnIngredientsBroken})
			continue
		}
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			warnings = append(warnings, AllocationWarning{Recipe: line.Recipe, Reason: WarnAmountInvalid})
			continue
		}
		for _, ing := range recipe.Ingredients {
			if ing.Qty.LessThan(decimal.Zero) {
				warnings = append(warnings, AllocationWarning{
					Recipe: line.Recipe, Ingredient: ing.Name, Reason: WarnAmountInvalid,
				})
				continue
			}
			totals[ing.Name] = totals[ing.Name].Add(ing.Qty.Mul(line.Amount))
		}
	}

	result := make([]IngredientTotal, 0, len(totals))
	for name, amount := range totals {
		result = append(result, IngredientTotal{Name: name, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, warnings
}
