// Package exporter gera a planilha com os resumos do dashboard
package exporter

import (
	"errors"
	"fmt"
	"io"

	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/pkg/utils"
	"github.com/xuri/excelize/v2"
)

var ErrNoReports = errors.New("nenhum relatório para exportar")

// WriteXLSX escreve uma planilha com uma aba por relatório, na ordem de Reports.
// Todas as abas vêm do mesmo snapshot.
func WriteXLSX(w io.Writer, summaries *domain.ReportSet) error {
	if summaries == nil || len(summaries.Reports) == 0 {
		return ErrNoReports
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, kind := range summaries.Reports {
		sheet := kind.Title()

		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("erro ao renomear aba %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("erro ao criar aba %s: %w", sheet, err)
		}

		if err := writeRows(f, sheet, rowsFor(kind, summaries)); err != nil {
			return fmt.Errorf("erro ao preencher aba %s: %w", sheet, err)
		}
	}

	f.SetActiveSheet(0)

	if summaries.DatasetID != "" {
		if err := f.SetDocProps(&excelize.DocProperties{
			Title:       "E-Commerce dashboard",
			Description: "snapshot " + summaries.DatasetID,
		}); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func rowsFor(kind domain.ReportKind, summaries *domain.ReportSet) [][]any {
	switch kind {
	case domain.ReportPaymentMethods:
		return categoryRows("payment_type", summaries.PaymentMethods)
	case domain.ReportOrderStatus:
		return categoryRows("order_status", summaries.OrderStatus)
	case domain.ReportMonthlyTrend:
		rows := [][]any{{"month", "order_count", "revenue"}}
		for _, row := range summaries.MonthlyTrend {
			rows = append(rows, []any{row.Period(), row.OrderCount, utils.MoneyToFloat(row.Revenue)})
		}
		return rows
	case domain.ReportGeo:
		rows := [][]any{{"city", "count", "lat", "lng"}}
		for _, row := range summaries.Geo {
			rows = append(rows, []any{row.City, row.Count, row.Lat, row.Lng})
		}
		return rows
	default:
		return nil
	}
}

func categoryRows(keyHeader string, summary []domain.CategoryCount) [][]any {
	rows := [][]any{{keyHeader, "count"}}
	for _, row := range summary {
		rows = append(rows, []any{row.Key, row.Count})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
