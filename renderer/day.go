// Package renderer turns itinerary projections into markdown views for the
// terminal and the HTML day view.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tkumagai/tabiplan"
)

// Day renders one day's schedule: the optional forecast, the active cards in
// time order (flights rendered as flight blocks), the accommodation section,
// and the day's expense total.
func Day(it *tabiplan.Itinerary, day int, fc *tabiplan.Forecast) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(it.Title())
	if day == 0 {
		doc.H2("行前準備")
	} else {
		doc.H2(fmt.Sprintf("Day %d — %s（%s）", day, it.DayDate(day).String(), weekdayName(it.DayDate(day))))
	}

	if fc != nil {
		doc.Blockquote(fmt.Sprintf("天氣 %s，%.0f°C / %.0f°C", fc.Summary, fc.High, fc.Low))
		doc.LF()
	}

	cards := it.ActiveCards(day)
	if len(cards) == 0 {
		doc.PlainText("這天暫無行程")
		doc.LF()
	}
	for _, c := range cards {
		if c.IsFlight() {
			flightBlock(doc, c)
		} else {
			cardBlock(doc, it, c)
		}
	}

	if acc, ok := it.Accommodation(day); ok {
		doc.H2("今日住宿")
		doc.PlainText(md.Bold(acc.Title))
		if acc.SubTitle != "" {
			doc.PlainText(acc.SubTitle)
		}
		doc.PlainText(md.Link("導航", acc.MapURL()))
		doc.LF()
	}

	if len(cards) > 0 {
		doc.H2("當日預算")
		doc.Table(md.TableSet{
			Header: []string{"今日支出總額", md.Bold(it.DayTotal(day).String())},
		})
	}

	return doc.String()
}

func flightBlock(doc *md.Markdown, c tabiplan.TravelCard) {
	fi := c.FlightInfo
	doc.H3(fmt.Sprintf("✈ %s %s", fi.FlightNumber, c.Title))
	arrival := c.Arrival()
	if arrival == "" {
		arrival = "--:--"
	}
	doc.Table(md.TableSet{
		Header: []string{"起飛", "抵達"},
		Rows: [][]string{
			{fmt.Sprintf("%s %s", c.Time, fi.Origin), fmt.Sprintf("%s %s", arrival, fi.Destination)},
		},
	})
	var details []string
	if fi.Class != "" || fi.Duration != "" {
		details = append(details, fmt.Sprintf("%s %s", fi.Class, fi.Duration))
	}
	if fi.ConfirmationCode != "" {
		details = append(details, "確認碼: "+fi.ConfirmationCode)
	}
	if len(fi.PassengerNames) > 0 {
		details = append(details, "乘客: "+joinNames(fi.PassengerNames))
	}
	if len(details) > 0 {
		doc.BulletList(details...)
		doc.LF()
	}
}

func cardBlock(doc *md.Markdown, it *tabiplan.Itinerary, c tabiplan.TravelCard) {
	doc.H3(fmt.Sprintf("%s %s", c.Time, c.Title))
	if c.SubTitle != "" {
		doc.PlainText(md.Italic(c.SubTitle))
	}
	if c.Description != "" {
		doc.PlainText(c.Description)
	}
	for _, e := range c.Expenses {
		doc.PlainText(fmt.Sprintf("- %s %s", e.Item, tabiplan.M(e.Amount, it.Currency())))
	}
	doc.PlainText(md.Link("導航", c.MapURL()))
	doc.LF()
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " & "
		}
		out += n
	}
	return out
}

func weekdayName(d tabiplan.Date) string {
	names := [...]string{"日", "一", "二", "三", "四", "五", "六"}
	return "週" + names[int(d.Weekday())]
}
