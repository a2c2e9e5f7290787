// Package report renderiza simulações para o terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vfg2006/ad-projection-api/internal/domain"
	"github.com/vfg2006/ad-projection-api/pkg/format"
)

// Render escreve os cards de resumo e a tabela completa da projeção
func Render(w io.Writer, response *domain.SimulationResponse, f *format.Formatter) error {
	if err := renderResult(w, response, f); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return renderProjection(w, response.Projection, f)
}

func renderResult(w io.Writer, response *domain.SimulationResponse, f *format.Formatter) error {
	result := response.Result
	summary := response.Summary

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cards := []struct {
		label string
		value string
	}{
		{"Revenue", f.Currency(result.Revenue)},
		{"Sales", f.Ratio(result.NumberOfSales)},
		{"CPA", f.Currency(result.CPA)},
		{"Gross profit", f.Currency(result.ProfitAmount)},
		{"Affiliate commission", f.Currency(result.AffiliateAmount)},
		{"Profit before ad cost", f.Currency(result.ProfitBeforeAdCost)},
		{"Net profit", f.Currency(result.Profit)},
		{"ROAS", f.Ratio(result.ROASActual) + "%"},
		{"Seats", f.Ratio(result.SeatCount)},
		{"Daily ad cost", f.Currency(result.DailyCost)},
		{"Total ad cost", f.Currency(summary.TotalAdCost)},
		{"Total revenue", f.Currency(summary.TotalRevenue)},
		{"Total profit", f.Currency(summary.TotalProfit)},
		{"Break-even month", breakEven(summary.BreakEvenMonth)},
	}

	for _, card := range cards {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", card.label, card.value); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderProjection(w io.Writer, rows []domain.ProjectionRow, f *format.Formatter) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintln(tw, "Month\tAd cost\tRevenue\tProfit\tCum. ad cost\tCum. revenue\tCum. profit\t"); err != nil {
		return err
	}

	for _, row := range rows {
		_, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Month,
			f.Currency(row.AdCost),
			f.Currency(row.Revenue),
			f.Currency(row.Profit),
			f.Currency(row.CumulativeAdCost),
			f.Currency(row.CumulativeRevenue),
			f.Currency(row.CumulativeProfit),
		)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}

func breakEven(month int) string {
	if month == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", month)
}
