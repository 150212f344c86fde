package dataset

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"discovir_bot/internal/utils"
)

// dailyReport 1日分のCSV。CaliforniaのActiveは day*10
func dailyReport(day int) string {
	var sb strings.Builder
	sb.WriteString("Province_State,Country_Region,Last_Update,Active\n")
	fmt.Fprintf(&sb, "Alabama,US,2021-01-%02d 05:30:00,%d\n", day, day)
	fmt.Fprintf(&sb, "California,US,2021-01-%02d 05:30:00,%d\n", day, day*10)
	fmt.Fprintf(&sb, "New York,US,2021-01-%02d 05:30:00,%d.0\n", day, day*100)
	return sb.String()
}

func newReportServer(t *testing.T, failPath string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path == failPath {
			http.NotFound(w, r)
			return
		}
		// /daily/MM-DD-YYYY.csv
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/daily/"), "-")
		if len(parts) != 3 || parts[2] != "2021.csv" {
			http.Error(w, "bad path", http.StatusBadRequest)
			return
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, dailyReport(day))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestLoaderLoad(t *testing.T) {
	srv, hits := newReportServer(t, "")
	months := DefaultMonths(2)
	links := BuildMonthLinks(srv.URL+"/daily/", "2021", months)

	loader := NewLoader(srv.Client(), utils.NewRateLimiter(0))
	data, err := loader.Load(context.Background(), months, links)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := atomic.LoadInt32(hits); got != 59 {
		t.Fatalf("hits=%d want=59", got)
	}
	for _, m := range months {
		if len(data[m.Name]) != m.Days || len(links[m.Name]) != m.Days {
			t.Fatalf("%s: data=%d links=%d want=%d", m.Name, len(data[m.Name]), len(links[m.Name]), m.Days)
		}
	}
	for i, tbl := range data["january"] {
		v, err := tbl.LookupFloat(RegionColumn, "California", ActiveColumn)
		if err != nil {
			t.Fatalf("day %d: %v", i+1, err)
		}
		if v != float64((i+1)*10) {
			t.Fatalf("day %d: got=%v want=%d", i+1, v, (i+1)*10)
		}
	}
}

func TestLoaderLoadFailsOnMissingDay(t *testing.T) {
	srv, _ := newReportServer(t, "/daily/02-14-2021.csv")
	months := DefaultMonths(2)
	links := BuildMonthLinks(srv.URL+"/daily/", "2021", months)

	data, err := NewLoader(srv.Client(), nil).Load(context.Background(), months, links)
	if err == nil {
		t.Fatal("expected error for missing daily report")
	}
	if data != nil {
		t.Fatal("partial data must not be returned")
	}
	if !strings.Contains(err.Error(), "02-14-2021.csv") {
		t.Fatalf("error should name the failing url: %v", err)
	}
}

func TestLoaderLoadCancelled(t *testing.T) {
	srv, hits := newReportServer(t, "")
	months := DefaultMonths(1)
	links := BuildMonthLinks(srv.URL+"/daily/", "2021", months)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLoader(srv.Client(), nil).Load(ctx, months, links); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if got := atomic.LoadInt32(hits); got != 0 {
		t.Fatalf("hits=%d want=0", got)
	}
}

func TestLoaderLoadMissingLinks(t *testing.T) {
	months := DefaultMonths(2)
	links := MonthLinks{"january": nil}
	if _, err := NewLoader(nil, nil).Load(context.Background(), months, links); err == nil {
		t.Fatal("expected error when a month has no links")
	}
}
