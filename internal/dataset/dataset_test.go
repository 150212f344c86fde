package dataset

import (
	"errors"
	"strings"
	"testing"
)

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	months := DefaultMonths(2)
	links := BuildMonthLinks(testRoot, "2021", months)
	data := make(CovidData)
	for _, m := range months {
		for day := 1; day <= m.Days; day++ {
			tbl, err := ParseTable(strings.NewReader(dailyReport(day)))
			if err != nil {
				t.Fatalf("ParseTable failed: %v", err)
			}
			data[m.Name] = append(data[m.Name], tbl)
		}
	}
	ds, err := New("2021", months, links, data)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return ds
}

func TestDatasetActiveSeries(t *testing.T) {
	ds := newTestDataset(t)

	series, err := ds.ActiveSeries("january", "california")
	if err != nil {
		t.Fatalf("ActiveSeries failed: %v", err)
	}
	if len(series) != 31 {
		t.Fatalf("len=%d want=31", len(series))
	}
	for i, v := range series {
		if want := float64((i + 1) * 10); v != want {
			t.Fatalf("day %d: got=%v want=%v", i+1, v, want)
		}
	}

	feb, err := ds.ActiveSeries("february", "New York")
	if err != nil {
		t.Fatalf("ActiveSeries failed: %v", err)
	}
	if len(feb) != 28 || feb[27] != 2800 {
		t.Fatalf("february series len=%d last=%v", len(feb), feb[len(feb)-1])
	}
}

func TestDatasetCaseInsensitive(t *testing.T) {
	ds := newTestDataset(t)

	a, err := ds.ActiveSeries("JANUARY", "california")
	if err != nil {
		t.Fatalf("ActiveSeries failed: %v", err)
	}
	b, err := ds.ActiveSeries("january", "California")
	if err != nil {
		t.Fatalf("ActiveSeries failed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs: %v vs %v", i+1, a[i], b[i])
		}
	}

	if region, ok := ds.Region("NEW YORK"); !ok || region != "New York" {
		t.Fatalf("Region(NEW YORK)=%q,%v", region, ok)
	}
}

func TestDatasetUnknownInputs(t *testing.T) {
	ds := newTestDataset(t)

	if _, err := ds.ActiveSeries("marchh", "California"); !errors.Is(err, ErrUnknownMonth) {
		t.Fatalf("err=%v want ErrUnknownMonth", err)
	}
	if _, err := ds.ActiveSeries("january", "Atlantis"); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("err=%v want ErrUnknownRegion", err)
	}
	// 3月はデータ上の暦にあっても読み込み対象外
	if _, ok := ds.Month("march"); ok {
		t.Fatal("march should not be a known month")
	}
}

func TestNewRejectsMismatchedCounts(t *testing.T) {
	months := DefaultMonths(1)
	links := BuildMonthLinks(testRoot, "2021", months)
	tbl, err := ParseTable(strings.NewReader(dailyReport(1)))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	data := CovidData{"january": {tbl}}

	if _, err := New("2021", months, links, data); err == nil {
		t.Fatal("expected error for 1 table in a 31 day month")
	}
	if _, err := New("2021", nil, links, data); err == nil {
		t.Fatal("expected error for empty month table")
	}
}

func TestNewRequiresRegionColumn(t *testing.T) {
	months := MonthInfo{{"january", 1}}
	links := BuildMonthLinks(testRoot, "2021", months)
	tbl, err := ParseTable(strings.NewReader("State,Active\nCalifornia,1\n"))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	_, err = New("2021", months, links, CovidData{"january": {tbl}})
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("err=%v want ErrColumnNotFound", err)
	}
}

func TestDatasetAccessorsReturnCopies(t *testing.T) {
	ds := newTestDataset(t)

	links := ds.Links("january")
	links[0] = "mutated"
	if ds.Links("january")[0] == "mutated" {
		t.Fatal("Links must return a copy")
	}

	months := ds.Months()
	months[0].Name = "mutated"
	if ds.Months()[0].Name != "january" {
		t.Fatal("Months must return a copy")
	}
	if ds.RegionCount() != 3 {
		t.Fatalf("RegionCount=%d want=3", ds.RegionCount())
	}
}
