package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]*entity.Recipe)}
}

func (f *fakeRecipeRepo) Create(recipe *entity.Recipe) error {
	if _, ok := f.recipes[recipe.Name]; ok {
		return domain.ErrDuplicate
	}
	f.recipes[recipe.Name] = recipe
	return nil
}

func (f *fakeRecipeRepo) GetByName(name string) (*entity.Recipe, error) {
	return f.recipes[name], nil
}

func (f *fakeRecipeRepo) List() ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	for _, r := range f.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecipeRepo) ListNames() ([]string, error) {
	var out []string
	for name := range f.recipes {
		out = append(out, name)
	}
	return out, nil
}

func (f *fakeRecipeRepo) Update(recipe *entity.Recipe) error {
	f.recipes[recipe.Name] = recipe
	return nil
}

func (f *fakeRecipeRepo) Delete(name string) error {
	delete(f.recipes, name)
	return nil
}

func validCreateRequest() dto.CreateRecipeRequest {
	return dto.CreateRecipeRequest{
		Name:        "Pan Campesino",
		Description: "Pan de corteza dura",
		Pieces:      2,
		Ingredients: []dto.IngredientLineDTO{
			{Name: "harina", Qty: dec("5"), Unit: entity.UnitKg},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecipeUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Al crear, la cantidad ingresada se normaliza a "por pieza": 5 ÷ 2 = 2.5.
func TestRecipeCreate_NormalizaPorPieza(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	out, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	require.Len(t, out.Ingredients, 1)
	assert.True(t, out.Ingredients[0].Qty.Equal(dec("2.5")),
		"5 kg para 2 piezas debe guardarse como 2.5 por pieza, se obtuvo %s", out.Ingredients[0].Qty)
}

// El nombre de la receta no admite dígitos (regla del formulario original).
func TestRecipeCreate_NombreConDigitosRechazado(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	in := validCreateRequest()
	in.Name = "Pan 2000"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La unidad debe pertenecer al enum de ingredientes.
func TestRecipeCreate_UnidadInvalidaRechazada(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	in := validCreateRequest()
	in.Ingredients[0].Unit = "puñados"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Piezas, cantidades y campos obligatorios se validan.
func TestRecipeCreate_ValidacionesBasicas(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	in := validCreateRequest()
	in.Pieces = 0
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "piezas en cero se rechaza")

	in = validCreateRequest()
	in.Ingredients[0].Qty = dec("0")
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero se rechaza")

	in = validCreateRequest()
	in.Description = ""
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción vacía se rechaza")

	in = validCreateRequest()
	in.Ingredients = nil
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "receta sin ingredientes se rechaza")
}

// Nombre duplicado devuelve conflicto.
func TestRecipeCreate_DuplicadoRechazado(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Escalar multiplica la cantidad por pieza y redondea a 2 decimales.
func TestRecipeScale_EscalaANPiezas(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	out, err := uc.Scale("Pan Campesino", dec("4"))
	require.NoError(t, err)

	require.Len(t, out.Ingredients, 1)
	assert.True(t, out.Ingredients[0].Qty.Equal(dec("10.00")),
		"2.5 por pieza × 4 debe dar 10.00, se obtuvo %s", out.Ingredients[0].Qty)
}

// Escalar una receta inexistente devuelve not found.
func TestRecipeScale_RecetaInexistente(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	_, err := uc.Scale("Fantasma", dec("3"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update reemplaza el documento completo y vuelve a normalizar.
func TestRecipeUpdate_ReemplazaYNormaliza(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	out, err := uc.Update("Pan Campesino", dto.UpdateRecipeRequest{
		Description: "Versión nueva",
		Pieces:      4,
		Ingredients: []dto.IngredientLineDTO{
			{Name: "harina", Qty: dec("6"), Unit: entity.UnitKg},
			{Name: "sal", Qty: dec("0.2"), Unit: entity.UnitKg},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Ingredients, 2)
	assert.True(t, out.Ingredients[0].Qty.Equal(dec("1.5")), "6 ÷ 4 = 1.5")
	assert.Equal(t, "Versión nueva", out.Description)
}

// Update de una receta inexistente devuelve nil sin error.
func TestRecipeUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewRecipeUseCase(newFakeRecipeRepo())

	out, err := uc.Update("Fantasma", dto.UpdateRecipeRequest{
		Description: "x", Pieces: 1,
		Ingredients: []dto.IngredientLineDTO{{Name: "harina", Qty: dec("1"), Unit: entity.UnitKg}},
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}
