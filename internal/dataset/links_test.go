package dataset

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

const testRoot = "https://example.com/daily/"

func TestBuildMonthLinks(t *testing.T) {
	months := DefaultMonths(2)
	links := BuildMonthLinks(testRoot, "2021", months)

	if len(links) != 2 {
		t.Fatalf("len(links)=%d want=2", len(links))
	}
	for _, m := range months {
		urls := links[m.Name]
		if len(urls) != m.Days {
			t.Fatalf("%s: len=%d want=%d", m.Name, len(urls), m.Days)
		}
		for i, u := range urls {
			day := fmt.Sprintf("-%02d-2021.csv", i+1)
			if !strings.HasSuffix(u, day) {
				t.Errorf("%s[%d]=%s, want suffix %s", m.Name, i, u, day)
			}
		}
	}

	if got, want := links["january"][0], testRoot+"01-01-2021.csv"; got != want {
		t.Errorf("first january link=%s want=%s", got, want)
	}
	if got, want := links["february"][27], testRoot+"02-28-2021.csv"; got != want {
		t.Errorf("last february link=%s want=%s", got, want)
	}
}

func TestBuildMonthLinksDeterministic(t *testing.T) {
	months := DefaultMonths(12)
	a := BuildMonthLinks(testRoot, "2021", months)
	b := BuildMonthLinks(testRoot, "2021", months)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("BuildMonthLinks is not deterministic")
	}
	if got := a["december"][30]; got != testRoot+"12-31-2021.csv" {
		t.Errorf("december 31 link=%s", got)
	}
}

func TestBuildMonthLinksUsesTableOrder(t *testing.T) {
	// 月番号は名前ではなくテーブル上の位置で決まる
	months := MonthInfo{{"march", 2}, {"january", 1}}
	links := BuildMonthLinks(testRoot, "2021", months)

	want := MonthLinks{
		"march":   {testRoot + "01-01-2021.csv", testRoot + "01-02-2021.csv"},
		"january": {testRoot + "02-01-2021.csv"},
	}
	if !reflect.DeepEqual(links, want) {
		t.Fatalf("links=%v want=%v", links, want)
	}
}

func TestDefaultMonths(t *testing.T) {
	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{2, []string{"january", "february"}},
		{-1, []string{}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			got := DefaultMonths(tt.n).Names()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("names=%v want=%v", got, tt.want)
			}
		})
	}

	if n := len(DefaultMonths(20)); n != 12 {
		t.Fatalf("DefaultMonths(20) len=%d want=12", n)
	}
	if d := DefaultMonths(2).Days("february"); d != 28 {
		t.Fatalf("february days=%d want=28", d)
	}

	// 返り値を書き換えても暦には影響しない
	m := DefaultMonths(1)
	m[0].Days = 99
	if d := DefaultMonths(1).Days("january"); d != 31 {
		t.Fatalf("calendar mutated: january=%d", d)
	}
}
