// Package pdf genera el reporte de flota en PDF usando Maroto v2:
// una tabla con nombre, tamaño, precio por día y estado de alquiler de cada carro.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// FleetReportGenerator implementa usecase.FleetReportGenerator usando Maroto v2.
type FleetReportGenerator struct{}

// NewFleetReportGenerator construye el generador.
func NewFleetReportGenerator() *FleetReportGenerator { return &FleetReportGenerator{} }

// Generate genera el PDF del catálogo y devuelve sus bytes.
func (g *FleetReportGenerator) Generate(cars []*entity.Car) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de flota", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(cars)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, car := range cars {
		m.AddRows(carRow(car))
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func headerRow(total int) core.Row {
	return row.New(12).Add(
		text.NewCol(8, "BCR — Reporte de flota", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
		}),
		text.NewCol(4, fmt.Sprintf("%s — %d carros", time.Now().Format("2006-01-02"), total), props.Text{
			Size: 9, Align: align.Right, Color: colorGray,
		}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(1, "ID", header),
		text.NewCol(5, "Nombre", header),
		text.NewCol(2, "Tamaño", header),
		text.NewCol(2, "Precio/día", header),
		text.NewCol(2, "Alquilado", header),
	)
}

func carRow(car *entity.Car) core.Row {
	rented := "no"
	if car.IsCurrentlyRented {
		rented = "sí"
	}
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		text.NewCol(1, fmt.Sprintf("%d", car.ID), cell),
		text.NewCol(5, car.Name, cell),
		text.NewCol(2, car.Size, cell),
		text.NewCol(2, car.Price.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
		col.New(2).Add(text.New(rented, cell)),
	)
}
