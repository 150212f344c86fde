package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"discovir_bot/internal/config"
	"discovir_bot/internal/dataset"
	"discovir_bot/internal/handler"
	"discovir_bot/internal/utils"
	"discovir_bot/internal/version"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("%s %s starting", version.Name, version.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// データは起動時に一度だけ読み込む。失敗したらコマンド受付を始めない
	months := dataset.DefaultMonths(cfg.Months)
	links := dataset.BuildMonthLinks(cfg.DataRoot, config.DataYear, months)

	log.Println("Downloading COVID data...")
	loader := dataset.NewLoader(&http.Client{Timeout: cfg.HTTPTimeout}, utils.NewRateLimiter(cfg.DownloadRPS))
	data, err := loader.Load(ctx, months, links)
	if err != nil {
		log.Fatalf("Failed to download COVID data: %v", err)
	}
	ds, err := dataset.New(config.DataYear, months, links, data)
	if err != nil {
		log.Fatalf("Failed to index COVID data: %v", err)
	}
	log.Printf("COVID data downloaded! (%d months, %d regions)", len(months), ds.RegionCount())

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal(err)
	}
	dg.Dialer = &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: cfg.GatewayTimeout,
	}
	dg.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentDirectMessages | discordgo.IntentMessageContent

	h := handler.NewHandler(cfg.Prefix, ds, cfg.ChartDir)
	dg.AddHandler(h.OnReady)
	dg.AddHandler(h.OnMessage)
	dg.AddHandler(h.OnInteractionCreate)

	err = dg.Open()
	if err != nil {
		log.Fatal(err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("Shutting down...")
}
