package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/tkumagai/tabiplan"
)

// Days renders the day selector: one row per distinct day, soft-deleted cards
// keeping their day visible even when the day's schedule is empty.
func Days(it *tabiplan.Itinerary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(it.Title())

	table := md.TableSet{
		Header: []string{"Day", "日期", "行程", "支出"},
	}
	for _, day := range it.Days() {
		label := strconv.Itoa(day)
		date := it.DayDate(day).String()
		if day == 0 {
			label = "行前"
			date = "—"
		}
		table.Rows = append(table.Rows, []string{
			label,
			date,
			strconv.Itoa(len(it.ActiveCards(day))),
			it.DayTotal(day).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Budget renders the expense breakdown of one day, card by card.
func Budget(it *tabiplan.Itinerary, day int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Day %d 支出細項", day))

	table := md.TableSet{
		Header: []string{"行程", "項目", "金額"},
	}
	for _, c := range it.ActiveCards(day) {
		for _, e := range c.Expenses {
			table.Rows = append(table.Rows, []string{c.Title, e.Item, tabiplan.M(e.Amount, it.Currency()).String()})
		}
	}
	if len(table.Rows) == 0 {
		doc.PlainText("尚無支出紀錄")
		doc.LF()
		return doc.String()
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Header: []string{"合計", md.Bold(it.DayTotal(day).String())},
	})

	return doc.String()
}
