package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// ChartRenderer puerto de exportación de gráficos: barra de inventario +
// línea de producción diaria, renderizados a una imagen PNG.
type ChartRenderer interface {
	RenderStatistics(summary *dto.StatisticsSummaryResponse) ([]byte, error)
}

// StatisticsUseCase agregación de solo lectura para el tablero: inventario
// actual y el historial de producción pivotado a series por receta.
type StatisticsUseCase struct {
	invRepo  repository.InventoryRepository
	planRepo repository.ProductionPlanRepository
	chart    ChartRenderer
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(
	invRepo repository.InventoryRepository,
	planRepo repository.ProductionPlanRepository,
	chart ChartRenderer,
) *StatisticsUseCase {
	return &StatisticsUseCase{invRepo: invRepo, planRepo: planRepo, chart: chart}
}

// Summary arma los datos crudos de los dos gráficos. La producción se pivota:
// una serie por receta, con un punto por fecha (cero si no se produjo ese día).
func (uc *StatisticsUseCase) Summary() (*dto.StatisticsSummaryResponse, error) {
	items, err := uc.invRepo.List()
	if err != nil {
		return nil, err
	}
	inventory := make([]dto.InventorySnapshotDTO, 0, len(items))
	for _, it := range items {
		inventory = append(inventory, dto.InventorySnapshotDTO{
			Name:   it.Name,
			Amount: it.Amount,
			Unit:   it.Unit,
		})
	}

	plans, err := uc.planRepo.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date < plans[j].Date })

	dates := make([]string, 0, len(plans))
	perRecipe := make(map[string]map[string]decimal.Decimal) // receta → fecha → cantidad
	for _, p := range plans {
		dates = append(dates, p.Date)
		for _, line := range p.Lines {
			if perRecipe[line.Recipe] == nil {
				perRecipe[line.Recipe] = make(map[string]decimal.Decimal)
			}
			perRecipe[line.Recipe][p.Date] = perRecipe[line.Recipe][p.Date].Add(line.Amount)
		}
	}

	recipes := make([]string, 0, len(perRecipe))
	for name := range perRecipe {
		recipes = append(recipes, name)
	}
	sort.Strings(recipes)

	production := make([]dto.ProductionSeriesDTO, 0, len(recipes))
	for _, name := range recipes {
		amounts := make([]decimal.Decimal, 0, len(dates))
		for _, d := range dates {
			amounts = append(amounts, perRecipe[name][d])
		}
		production = append(production, dto.ProductionSeriesDTO{Recipe: name, Amounts: amounts})
	}

	return &dto.StatisticsSummaryResponse{
		Inventory:  inventory,
		Dates:      dates,
		Production: production,
	}, nil
}

// ExportCharts renderiza el tablero a PNG para descarga.
func (uc *StatisticsUseCase) ExportCharts() ([]byte, error) {
	summary, err := uc.Summary()
	if err != nil {
		return nil, err
	}
	return uc.chart.RenderStatistics(summary)
}
