package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMonth  = errors.New("unknown month")
	ErrUnknownRegion = errors.New("unknown region")
)

// Dataset 起動時に一度だけ構築し、以降は読み取り専用で共有する
type Dataset struct {
	year    string
	months  MonthInfo
	links   MonthLinks
	data    CovidData
	regions map[string]string // foldKey -> 表記
}

// New 読み込み済みのデータからDatasetを作る。
// 月ごとの件数がMonthInfoと一致しない場合はエラー
func New(year string, months MonthInfo, links MonthLinks, data CovidData) (*Dataset, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("no months configured")
	}
	for _, m := range months {
		if m.Days <= 0 || m.Days > 31 {
			return nil, fmt.Errorf("month %s: invalid day count %d", m.Name, m.Days)
		}
		if got := len(links[m.Name]); got != m.Days {
			return nil, fmt.Errorf("month %s: %d links, want %d", m.Name, got, m.Days)
		}
		if got := len(data[m.Name]); got != m.Days {
			return nil, fmt.Errorf("month %s: %d tables, want %d", m.Name, got, m.Days)
		}
	}

	// 地域の一覧は基準月（先頭の月）の初日から取る
	first := data[months[0].Name][0]
	names, err := first.Values(RegionColumn)
	if err != nil {
		return nil, fmt.Errorf("reference table: %w", err)
	}
	regions := make(map[string]string, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		key := foldKey(name)
		if _, ok := regions[key]; !ok {
			regions[key] = name
		}
	}

	return &Dataset{
		year:    year,
		months:  append(MonthInfo(nil), months...),
		links:   links,
		data:    data,
		regions: regions,
	}, nil
}

// Year データの年
func (d *Dataset) Year() string {
	return d.year
}

// Months 登録順の月一覧（コピー）
func (d *Dataset) Months() MonthInfo {
	return append(MonthInfo(nil), d.months...)
}

// Links 月のCSV URL一覧（コピー）
func (d *Dataset) Links(month string) []string {
	return append([]string(nil), d.links[month]...)
}

// Month 入力された月名を正規化して返す
func (d *Dataset) Month(name string) (string, bool) {
	month := strings.ToLower(strings.TrimSpace(name))
	if !d.months.Has(month) {
		return "", false
	}
	return month, true
}

// Region 入力された地域名をデータ上の表記に変換する
func (d *Dataset) Region(name string) (string, bool) {
	region, ok := d.regions[foldKey(name)]
	return region, ok
}

// RegionCount 既知の地域数
func (d *Dataset) RegionCount() int {
	return len(d.regions)
}

// ActiveSeries 指定した月・地域のアクティブ症例数を日順に返す
func (d *Dataset) ActiveSeries(month, region string) ([]float64, error) {
	m, ok := d.Month(month)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMonth, month)
	}
	r, ok := d.Region(region)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}

	tables := d.data[m]
	series := make([]float64, 0, len(tables))
	for day, t := range tables {
		v, err := t.LookupFloat(RegionColumn, r, ActiveColumn)
		if err != nil {
			return nil, fmt.Errorf("%s day %d: %w", m, day+1, err)
		}
		series = append(series, v)
	}
	return series, nil
}
