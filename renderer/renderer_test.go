package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tkumagai/tabiplan"
)

func testItinerary() *tabiplan.Itinerary {
	it := tabiplan.NewItinerary("測試行程", tabiplan.NewDate(2025, time.January, 17), "JPY")
	it.Append(
		tabiplan.TravelCard{ID: "c1", Day: 1, Time: "09:20", Title: "台北 → 名古屋", Category: tabiplan.Hub,
			EndTime: "12:50",
			FlightInfo: &tabiplan.FlightInfo{
				FlightNumber:     "JX824",
				ConfirmationCode: "K7KQWS",
				Origin:           "TPE",
				Destination:      "NGO",
				ArrivalTime:      "12:50",
				PassengerNames:   []string{"熊谷", "千尋"},
			},
			Expenses: []tabiplan.Expense{{ID: "e1", Item: "機票", Amount: decimal.NewFromInt(8200)}}},
		tabiplan.TravelCard{ID: "c2", Day: 1, Time: "15:30", Title: "王子大飯店 Check-in",
			SubTitle: "名古屋駅徒步 5 分", Category: tabiplan.Logistics},
		tabiplan.TravelCard{ID: "c3", Day: 1, Time: "18:30", Title: "矢場とん", Category: tabiplan.Food,
			Expenses: []tabiplan.Expense{{ID: "e2", Item: "晚餐", Amount: decimal.NewFromInt(1400)}}},
		tabiplan.TravelCard{ID: "c4", Day: 2, Time: "09:00", Title: "已刪除的行程", Category: tabiplan.Activity, IsDeleted: true},
	)
	return it
}

func TestDay(t *testing.T) {
	out := Day(testItinerary(), 1, nil)

	for _, want := range []string{
		"# 測試行程",
		"## Day 1 — 2025-01-18（週六）",
		"### ✈ JX824 台北 → 名古屋",
		"確認碼: K7KQWS",
		"乘客: 熊谷 & 千尋",
		"### 15:30 王子大飯店 Check-in",
		"## 今日住宿",
		"**王子大飯店 Check-in**",
		"## 當日預算",
		"**¥9,600**", // 8200 + 1400
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Day() output is missing %q:\n%s", want, out)
		}
	}
}

func TestDayWithForecast(t *testing.T) {
	fc := &tabiplan.Forecast{Date: tabiplan.NewDate(2025, time.January, 18), High: 7.1, Low: -1.2, Summary: "陰天"}
	out := Day(testItinerary(), 1, fc)
	if !strings.Contains(out, "> 天氣 陰天，7°C / -1°C") {
		t.Errorf("Day() output is missing the forecast blockquote:\n%s", out)
	}
}

func TestDayPreTrip(t *testing.T) {
	out := Day(testItinerary(), 0, nil)
	if !strings.Contains(out, "## 行前準備") {
		t.Errorf("Day(0) output is missing the pre-trip heading:\n%s", out)
	}
	if !strings.Contains(out, "這天暫無行程") {
		t.Errorf("Day(0) output is missing the empty-day marker:\n%s", out)
	}
}

func TestDayExcludesDeleted(t *testing.T) {
	out := Day(testItinerary(), 2, nil)
	if strings.Contains(out, "已刪除的行程") {
		t.Errorf("Day(2) rendered a soft-deleted card:\n%s", out)
	}
	if !strings.Contains(out, "這天暫無行程") {
		t.Errorf("Day(2) output is missing the empty-day marker:\n%s", out)
	}
}

func TestDays(t *testing.T) {
	out := Days(testItinerary())

	// Cell contents rather than full rows: the table writer pads cells.
	for _, want := range []string{
		"# 測試行程",
		"日期",
		"2025-01-18",
		"¥9,600",
		// Day 2 stays listed with zero active cards.
		"2025-01-19",
		"¥0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Days() output is missing %q:\n%s", want, out)
		}
	}
}

func TestBudget(t *testing.T) {
	out := Budget(testItinerary(), 1)
	for _, want := range []string{
		"# Day 1 支出細項",
		"機票",
		"¥8,200",
		"晚餐",
		"¥1,400",
		"**¥9,600**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Budget() output is missing %q:\n%s", want, out)
		}
	}
}

func TestBudgetEmpty(t *testing.T) {
	out := Budget(testItinerary(), 2)
	if !strings.Contains(out, "尚無支出紀錄") {
		t.Errorf("Budget() on an expense-free day is missing the empty marker:\n%s", out)
	}
}

func TestWeekdayName(t *testing.T) {
	// 2025-01-17 was a Friday.
	if got := weekdayName(tabiplan.NewDate(2025, time.January, 17)); got != "週五" {
		t.Errorf("weekdayName() = %q, want 週五", got)
	}
}
