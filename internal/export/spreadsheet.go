package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// xmlEscaper handles the five reserved markup characters. Every piece of
// text content must pass through it before embedding.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Spreadsheet renders the report as a two-sheet legacy spreadsheet-markup
// document: an "Executive Summary" of headline metrics and a "Master
// Matrix" date-by-category cross-tab with running balances and a grand
// total row.
func Spreadsheet(r Report) []byte {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<?mso-application progid="Excel.Sheet"?>` + "\n")
	b.WriteString(`<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"` + "\n")
	b.WriteString(` xmlns:o="urn:schemas-microsoft-com:office:office"` + "\n")
	b.WriteString(` xmlns:x="urn:schemas-microsoft-com:office:excel"` + "\n")
	b.WriteString(` xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">` + "\n")

	writeStyles(&b)
	writeSummarySheet(&b, r)
	writeMatrixSheet(&b, r)

	b.WriteString("</Workbook>\n")
	return []byte(b.String())
}

func writeStyles(b *strings.Builder) {
	b.WriteString(" <Styles>\n")
	b.WriteString(`  <Style ss:ID="sTitle"><Font ss:Bold="1" ss:Size="14"/></Style>` + "\n")
	b.WriteString(`  <Style ss:ID="sHeader"><Font ss:Bold="1"/><Interior ss:Color="#E2E8F0" ss:Pattern="Solid"/></Style>` + "\n")
	b.WriteString(`  <Style ss:ID="sTotal"><Font ss:Bold="1"/><Interior ss:Color="#FEF3C7" ss:Pattern="Solid"/></Style>` + "\n")
	b.WriteString(" </Styles>\n")
}

func writeSummarySheet(b *strings.Builder, r Report) {
	b.WriteString(` <Worksheet ss:Name="Executive Summary">` + "\n")
	b.WriteString("  <Table>\n")

	openRow(b)
	stringCell(b, "sTitle", "Executive Summary ("+r.Range.Label()+")")
	closeRow(b)

	metrics := []struct {
		label string
		value float64
	}{
		{"Period Income", r.Period.Income},
		{"Period Expense", r.Period.Expense},
		{"Period Savings", r.Period.Savings},
		{"Closing Total Wealth", r.Global.TotalWealth()},
	}
	for _, m := range metrics {
		openRow(b)
		stringCell(b, "sHeader", m.label)
		numberCell(b, "", m.value)
		closeRow(b)
	}

	b.WriteString("  </Table>\n")
	b.WriteString(" </Worksheet>\n")
}

func writeMatrixSheet(b *strings.Builder, r Report) {
	columns := matrixColumns(r.Transactions)

	b.WriteString(` <Worksheet ss:Name="Master Matrix">` + "\n")
	b.WriteString("  <Table>\n")

	openRow(b)
	stringCell(b, "sHeader", "Date")
	for _, col := range columns {
		stringCell(b, "sHeader", col)
	}
	stringCell(b, "sHeader", "Liquid Position")
	closeRow(b)

	totals := make(map[string]float64, len(columns))
	var lastAvailable float64
	for _, row := range r.Rows {
		openRow(b)
		stringCell(b, "", row.Date)
		for _, col := range columns {
			amount := row.ByCategory[col]
			totals[col] += amount
			numberCell(b, "", amount)
		}
		numberCell(b, "", row.Available)
		closeRow(b)
		lastAvailable = row.Available
	}

	openRow(b)
	stringCell(b, "sTotal", "Total")
	for _, col := range columns {
		numberCell(b, "sTotal", totals[col])
	}
	numberCell(b, "sTotal", lastAvailable)
	closeRow(b)

	b.WriteString("  </Table>\n")
	b.WriteString(" </Worksheet>\n")
}

// matrixColumns orders the cross-tab columns: the reserved categories first
// when present, then every remaining category alphabetically.
func matrixColumns(txns []model.Transaction) []string {
	seen := make(map[string]bool)
	for _, t := range txns {
		seen[t.Category] = true
	}

	reserved := []string{
		model.OpeningBalanceCategory,
		model.DefaultIncomeCategory,
		model.DefaultSavingsCategory,
	}

	columns := make([]string, 0, len(seen))
	for _, name := range reserved {
		if seen[name] {
			columns = append(columns, name)
			delete(seen, name)
		}
	}

	rest := make([]string, 0, len(seen))
	for name := range seen {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func openRow(b *strings.Builder) {
	b.WriteString("   <Row>\n")
}

func closeRow(b *strings.Builder) {
	b.WriteString("   </Row>\n")
}

func stringCell(b *strings.Builder, style, text string) {
	writeCell(b, style, "String", xmlEscaper.Replace(text))
}

func numberCell(b *strings.Builder, style string, v float64) {
	writeCell(b, style, "Number", fmt.Sprintf("%.2f", v))
}

func writeCell(b *strings.Builder, style, dataType, content string) {
	if style != "" {
		fmt.Fprintf(b, `    <Cell ss:StyleID=%q>`, style)
	} else {
		b.WriteString("    <Cell>")
	}
	fmt.Fprintf(b, `<Data ss:Type=%q>%s</Data></Cell>`+"\n", dataType, content)
}
