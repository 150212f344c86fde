package dataset

import "fmt"

// MonthDays 月名（小文字）とその日数
type MonthDays struct {
	Name string
	Days int
}

// MonthInfo 月の一覧。並び順がそのまま月番号（1始まり）になる
type MonthInfo []MonthDays

// MonthLinks 月名 -> 日ごとのCSV URL（1日から順）
type MonthLinks map[string][]string

// calendar 2021年の暦。2月は28日固定でうるう年は扱わない
var calendar = MonthInfo{
	{"january", 31},
	{"february", 28},
	{"march", 31},
	{"april", 30},
	{"may", 31},
	{"june", 30},
	{"july", 31},
	{"august", 31},
	{"september", 30},
	{"october", 31},
	{"november", 30},
	{"december", 31},
}

// DefaultMonths 暦の先頭n か月を返す
func DefaultMonths(n int) MonthInfo {
	if n < 0 {
		n = 0
	}
	if n > len(calendar) {
		n = len(calendar)
	}
	months := make(MonthInfo, n)
	copy(months, calendar[:n])
	return months
}

// Days 月の日数。未登録の月は0
func (mi MonthInfo) Days(name string) int {
	for _, m := range mi {
		if m.Name == name {
			return m.Days
		}
	}
	return 0
}

// Has 月が登録されているか
func (mi MonthInfo) Has(name string) bool {
	return mi.Days(name) > 0
}

// Names 登録順の月名一覧
func (mi MonthInfo) Names() []string {
	names := make([]string, len(mi))
	for i, m := range mi {
		names[i] = m.Name
	}
	return names
}

// BuildMonthLinks root/year/月テーブルから各日のCSVのURLを組み立てる。
// 通信やファイルアクセスは行わない。
func BuildMonthLinks(root, year string, months MonthInfo) MonthLinks {
	links := make(MonthLinks, len(months))
	for i, m := range months {
		monthNumber := fmt.Sprintf("%02d", i+1)
		days := make([]string, 0, m.Days)
		for day := 1; day <= m.Days; day++ {
			days = append(days, fmt.Sprintf("%s%s-%02d-%s.csv", root, monthNumber, day, year))
		}
		links[m.Name] = days
	}
	return links
}
