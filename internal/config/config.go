package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// SourceURL データ提供元リポジトリのルート
	SourceURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/"
	// DefaultDataRoot 日次レポート(US)のディレクトリ
	DefaultDataRoot = SourceURL + "csse_covid_19_data/csse_covid_19_daily_reports_us/"
	// DataYear 取得対象の年（固定）
	DataYear = "2021"
)

type Config struct {
	Token          string
	Prefix         string
	DataRoot       string
	Months         int
	HTTPTimeout    time.Duration
	DownloadRPS    int
	GatewayTimeout time.Duration
	ChartDir       string
}

// Load 環境変数（および存在すれば .env）から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		Token:       strings.TrimSpace(os.Getenv("DISCOVIR_KEY")),
		Prefix:      getenvDefault("DISCOVIR_PREFIX", "!"),
		DataRoot:    getenvDefault("DISCOVIR_DATA_ROOT", DefaultDataRoot),
		DownloadRPS: 5,
		ChartDir:    os.Getenv("DISCOVIR_CHART_DIR"),
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("DISCOVIR_KEY is required")
	}
	if !strings.HasSuffix(cfg.DataRoot, "/") {
		cfg.DataRoot += "/"
	}

	months, err := getenvInt("DISCOVIR_MONTHS", 2)
	if err != nil {
		return nil, err
	}
	if months < 1 || months > 12 {
		return nil, fmt.Errorf("DISCOVIR_MONTHS must be between 1 and 12, got %d", months)
	}
	cfg.Months = months

	if cfg.DownloadRPS, err = getenvInt("DISCOVIR_DOWNLOAD_RPS", cfg.DownloadRPS); err != nil {
		return nil, err
	}
	if cfg.DownloadRPS < 0 {
		return nil, fmt.Errorf("DISCOVIR_DOWNLOAD_RPS must not be negative")
	}

	if cfg.HTTPTimeout, err = getenvDuration("DISCOVIR_HTTP_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.GatewayTimeout, err = getenvDuration("DISCOVIR_GATEWAY_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
