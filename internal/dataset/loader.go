package dataset

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"discovir_bot/internal/utils"
)

// CovidData 月名 -> 日ごとのTable（MonthLinksと同じ順序）
type CovidData map[string][]*Table

// Loader 日次CSVをダウンロードしてTableに変換する
type Loader struct {
	client  *http.Client
	limiter *utils.RateLimiter
}

// NewLoader clientがnilならhttp.DefaultClientを使う
func NewLoader(client *http.Client, limiter *utils.RateLimiter) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, limiter: limiter}
}

// Load すべてのURLを順番に取得する。1件でも失敗したら全体を失敗とし、
// 部分的なデータは返さない
func (l *Loader) Load(ctx context.Context, months MonthInfo, links MonthLinks) (CovidData, error) {
	data := make(CovidData, len(links))
	for _, m := range months {
		urls, ok := links[m.Name]
		if !ok {
			return nil, fmt.Errorf("no links for month %s", m.Name)
		}
		tables := make([]*Table, len(urls))
		for i, u := range urls {
			t, err := l.fetch(ctx, u)
			if err != nil {
				return nil, err
			}
			tables[i] = t
		}
		data[m.Name] = tables
		log.Printf("Loaded %s: %d daily reports", m.Name, len(tables))
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (*Table, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %s: %w", rawURL, err)
	}
	if err := l.limiter.Wait(ctx, u.Host); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	t, err := ParseTable(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return t, nil
}
