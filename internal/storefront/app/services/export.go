package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"gamestore/internal/storefront/domain/entities"
)

// ErrorFailedExport - ошибка выгрузки аналитики.
const ErrorFailedExport = "failed to export analytics"

// ExportFilename возвращает имя файла выгрузки аналитики за дату day.
func ExportFilename(day time.Time) string {
	return "analytics_export_" + day.Format(time.DateOnly) + ".csv"
}

// ExportAnalytics загружает аналитику и пишет ее в w как CSV.
func (a *Admin) ExportAnalytics(ctx context.Context, w io.Writer) error {
	analytics, err := a.Analytics(ctx)
	if err != nil {
		return err
	}
	return WriteAnalyticsCSV(w, analytics)
}

// WriteAnalyticsCSV пишет разделы сводки, выручки, выручки по дням и продаж по играм.
func WriteAnalyticsCSV(w io.Writer, analytics *entities.Analytics) error {
	out := csv.NewWriter(w)

	records := [][]string{
		{"Analytics Data Export"},
		{},
		{"SUMMARY"},
		{"Total Users", strconv.Itoa(analytics.Summary.TotalUsers)},
		{"Total Products", strconv.Itoa(analytics.Summary.TotalProducts)},
		{"Total Orders", strconv.Itoa(analytics.Summary.TotalOrders)},
		{"Conversion Rate", number(analytics.Summary.ConversionRate) + "%"},
		{"Avg Order Value", number(analytics.Summary.AvgOrderValue)},
		{},
		{"REVENUE"},
		{"Today", number(analytics.Revenue.Today)},
		{"Last 7 Days", number(analytics.Revenue.Last7Days)},
		{"Last 30 Days", number(analytics.Revenue.Last30Days)},
		{},
		{"DAILY REVENUE"},
		{"Date", "Revenue"},
	}
	for _, day := range analytics.Revenue.Daily {
		records = append(records, []string{day.Date, number(day.Revenue)})
	}
	records = append(records,
		[]string{},
		[]string{"SALES BY GAME"},
		[]string{"Game", "Count", "Revenue"},
	)
	for _, sales := range analytics.SalesByGame {
		records = append(records, []string{sales.Game, strconv.Itoa(sales.Count), number(sales.Revenue)})
	}

	if err := out.WriteAll(records); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedExport, err)
	}
	return nil
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
