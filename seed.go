package tabiplan

import (
	"time"

	"github.com/shopspring/decimal"
)

func yen(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Seed returns the fixed first-run itinerary: a six-day Nagoya / Takayama
// trip starting 2025-01-17, with day 0 as the pre-trip bucket.
func Seed() *Itinerary {
	it := NewItinerary("2025 名古屋高山之旅", NewDate(2025, time.January, 17), "JPY")
	it.Append(
		TravelCard{
			ID: "seed-001", Day: 0, Time: "10:00",
			Title:    "換日幣 & 網卡",
			SubTitle: "出發前兩週完成",
			Category: Scouting,
			Notes:    []string{"機場匯率較差，市區銀行先換"},
			Expenses: []Expense{},
		},
		TravelCard{
			ID: "seed-002", Day: 0, Time: "20:00",
			Title:       "行李打包清單",
			Description: "發熱衣、厚羽絨、圍巾。高山清晨可能零下。",
			Category:    Logistics,
			Expenses:    []Expense{},
			Notes:       []string{},
		},
		TravelCard{
			ID: "seed-003", Day: 1, Time: "09:20", EndTime: "12:50",
			Title:    "台北 → 名古屋",
			Category: Hub,
			FlightInfo: &FlightInfo{
				FlightNumber:     "JX824",
				ConfirmationCode: "K7KQWS",
				Origin:           "TPE",
				Destination:      "NGO",
				ArrivalTime:      "12:50",
				PassengerNames:   []string{"熊谷", "千尋"},
				Class:            "經濟艙",
				Duration:         "2h 30m",
			},
			Expenses: []Expense{{ID: "seed-003-e1", Item: "機票", Amount: yen(8200)}},
			Notes:    []string{"第二航廈報到"},
		},
		TravelCard{
			ID: "seed-004", Day: 1, Time: "13:40",
			Title:           "名鐵 μ-SKY 往名古屋站",
			SubTitle:        "機場直達特急",
			Category:        Transport,
			LocationKeyword: "Meitetsu Chubu Airport Station",
			Expenses:        []Expense{{ID: "seed-004-e1", Item: "特急券", Amount: yen(1250)}},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-005", Day: 1, Time: "15:30",
			Title:           "名古屋王子大飯店 Check-in",
			SubTitle:        "名古屋駅徒步 5 分",
			Category:        Logistics,
			LocationKeyword: "Nagoya Prince Hotel Sky Tower",
			ImageURL:        "https://images.example.com/nagoya-prince.jpg",
			Expenses:        []Expense{},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-006", Day: 1, Time: "18:30",
			Title:           "矢場とん 味噌豬排",
			SubTitle:        "名古屋名物",
			Category:        Food,
			LocationKeyword: "Yabaton Yabacho Honten",
			Expenses:        []Expense{{ID: "seed-006-e1", Item: "晚餐", Amount: yen(1400)}},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-007", Day: 2, Time: "09:30",
			Title:           "名古屋城",
			Description:     "金鯱與本丸御殿，門票現場購買即可。",
			Category:        Activity,
			LocationKeyword: "Nagoya Castle",
			Expenses:        []Expense{{ID: "seed-007-e1", Item: "門票", Amount: yen(500)}},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-008", Day: 2, Time: "12:00",
			Title:           "あつた蓬萊軒 鰻魚飯三吃",
			Category:        Food,
			LocationKeyword: "Atsuta Horaiken Honten",
			Expenses:        []Expense{{ID: "seed-008-e1", Item: "午餐", Amount: yen(3800)}},
			Notes:           []string{"熱門店，開店前排隊"},
		},
		TravelCard{
			ID: "seed-009", Day: 2, Time: "16:00",
			Title:           "名古屋王子大飯店",
			SubTitle:        "連泊第二晚",
			Category:        Logistics,
			LocationKeyword: "Nagoya Prince Hotel Sky Tower",
			ImageURL:        "https://images.example.com/nagoya-prince.jpg",
			Expenses:        []Expense{},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-010", Day: 3, Time: "08:40",
			Title:           "JR 特急ひだ 往高山",
			SubTitle:        "名古屋 → 高山",
			Category:        Transport,
			LocationKeyword: "Nagoya Station JR",
			Expenses:        []Expense{{ID: "seed-010-e1", Item: "指定席", Amount: yen(6140)}},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-011", Day: 3, Time: "11:30",
			Title:           "高山老街散策",
			Description:     "三町古街、飛驒牛串、造酒屋。",
			Category:        Activity,
			LocationKeyword: "Takayama Sanmachi Suji",
			Expenses:        []Expense{},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-012", Day: 3, Time: "15:00",
			Title:           "本陣平野屋 花兆庵 住宿",
			SubTitle:        "溫泉旅館，含懷石晚餐",
			Category:        Logistics,
			LocationKeyword: "Honjin Hiranoya Kachoan",
			ImageURL:        "https://images.example.com/kachoan.jpg",
			Expenses:        []Expense{{ID: "seed-012-e1", Item: "住宿", Amount: yen(28000)}},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-013", Day: 4, Time: "08:00",
			Title:           "宮川朝市",
			Category:        Activity,
			LocationKeyword: "Miyagawa Morning Market",
			Expenses:        []Expense{},
			Notes:           []string{},
		},
		TravelCard{
			ID: "seed-014", Day: 4, Time: "10:30",
			Title:           "白川鄉合掌村",
			SubTitle:        "濃飛巴士來回",
			Category:        Scouting,
			LocationKeyword: "Shirakawa-go",
			Expenses:        []Expense{{ID: "seed-014-e1", Item: "巴士來回", Amount: yen(4600)}},
			Notes:           []string{"巴士需預約"},
		},
		TravelCard{
			ID: "seed-015", Day: 5, Time: "13:55", EndTime: "16:10",
			Title:    "名古屋 → 台北",
			Category: Hub,
			FlightInfo: &FlightInfo{
				FlightNumber:   "JX825",
				Origin:         "NGO",
				Destination:    "TPE",
				ArrivalTime:    "16:10",
				PassengerNames: []string{"熊谷", "千尋"},
				Class:          "經濟艙",
				Duration:       "3h 15m",
			},
			Expenses: []Expense{},
			Notes:    []string{},
		},
	)
	return it
}
