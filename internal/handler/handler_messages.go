package handler

import (
	"context"
	"log"
	"strings"

	"discovir_bot/internal/commands"
	"discovir_bot/internal/utils"

	"github.com/bwmarrin/discordgo"
)

func (h *Handler) OnMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.handleMessage(context.Background(), s, m.Message)
}

func (h *Handler) handleMessage(ctx context.Context, s messageSender, m *discordgo.Message) {
	// Botメッセージを無視
	if m.Author == nil || m.Author.Bot {
		return
	}

	// プレフィックスチェック
	if !strings.HasPrefix(m.Content, h.prefix) {
		return
	}

	// コマンドと引数をパース
	content := strings.TrimPrefix(m.Content, h.prefix)
	parts := strings.Fields(content)
	if len(parts) == 0 {
		return
	}

	cmdName := parts[0]
	args := parts[1:]

	log.Printf("Command '%s' from %s, args: %v", cmdName, utils.FormatUserDisplayName(m.Author.Username, m.Author.ID), args)

	resp, err := h.registry.Dispatch(ctx, cmdName, args)
	if err != nil {
		// 想定外のエラーはログに残し、利用者には詳細を見せない
		log.Printf("Error executing command %s: %v", cmdName, err)
		return
	}

	if err := h.sendMessage(s, m.ChannelID, resp); err != nil {
		log.Printf("Error sending response for %s: %v", cmdName, err)
		return
	}
	log.Printf("Command %s completed successfully", cmdName)
}

func (h *Handler) sendMessage(s messageSender, channelID string, resp *commands.Response) error {
	return h.withAttachment(resp.File, func(files []*discordgo.File) error {
		_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Content: resp.Content,
			Files:   files,
		})
		return err
	})
}
