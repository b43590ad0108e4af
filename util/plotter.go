package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"hostelwatch/models"
	"hostelwatch/pricing"
)

// RenderPriceCharts renders the dashboard chart page for a scrape run: the
// average price per room type, then one per-hostel comparison chart for each
// room type and occupancy count.
func RenderPriceCharts(w io.Writer, run *models.ScrapeRun) error {
	page := components.NewPage()
	page.PageTitle = "Hostel Price Analysis"

	page.AddCharts(averagePricesChart(pricing.ComputeAverages(run.Rows)))

	comparisons := []struct {
		title  string
		column func(models.PriceMatrixRow) *float64
	}{
		{"Private Bathroom Rooms (1 Adult)", func(r models.PriceMatrixRow) *float64 { return r.PricePrivate1 }},
		{"Shared Bathroom Rooms (1 Adult)", func(r models.PriceMatrixRow) *float64 { return r.PriceShared1 }},
		{"Private Bathroom Rooms (2 Adults)", func(r models.PriceMatrixRow) *float64 { return r.PricePrivate2 }},
		{"Shared Bathroom Rooms (2 Adults)", func(r models.PriceMatrixRow) *float64 { return r.PriceShared2 }},
	}
	for _, c := range comparisons {
		if chart := hostelComparisonChart(c.title, run.Rows, c.column); chart != nil {
			page.AddCharts(chart)
		}
	}

	return page.Render(w)
}

// PlotPriceCharts renders the chart page into an HTML file.
func PlotPriceCharts(filePath string, run *models.ScrapeRun) {
	f, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := RenderPriceCharts(f, run); err != nil {
		log.Fatalf("Failed to render charts: %v", err)
	}

	fmt.Println("Price charts generated: " + filePath)
}

// averagePricesChart compares the mean price per room type, with and without
// the tourist tax and margin.
func averagePricesChart(avg pricing.AveragePrices) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Average Prices by Room Type"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis([]string{
		"Private (1 Adult)", "Shared (1 Adult)", "Private (2 Adults)", "Shared (2 Adults)",
	}).AddSeries("Average Price (EUR)", []opts.BarData{
		{Value: barValue(avg.Private1)},
		{Value: barValue(avg.Shared1)},
		{Value: barValue(avg.Private2)},
		{Value: barValue(avg.Shared2)},
	}).AddSeries("Average Net Price (EUR)", []opts.BarData{
		{Value: barValue(avg.Private1Net)},
		{Value: barValue(avg.Shared1Net)},
		{Value: barValue(avg.Private2Net)},
		{Value: barValue(avg.Shared2Net)},
	})

	return bar
}

// hostelComparisonChart builds one bar per hostel for the given price column,
// sorted by price descending. Rows without a usable value are left out; a
// column nobody priced yields no chart at all.
func hostelComparisonChart(title string, rows []models.PriceMatrixRow, column func(models.PriceMatrixRow) *float64) *charts.Bar {
	type entry struct {
		name  string
		price float64
	}
	var entries []entry
	for _, r := range rows {
		v := column(r)
		if v == nil || *v <= 0.01 {
			continue
		}
		entries = append(entries, entry{name: r.Name, price: *v})
	}
	if len(entries) == 0 {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].price > entries[j].price })

	names := make([]string, len(entries))
	data := make([]opts.BarData, len(entries))
	for i, e := range entries {
		names[i] = e.name
		data[i] = opts.BarData{Value: e.price}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
		}),
	)
	bar.SetXAxis(names).AddSeries("Price (EUR)", data)

	return bar
}

func barValue(v *float64) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}
