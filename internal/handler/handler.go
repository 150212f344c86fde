package handler

import (
	"bytes"
	"os"

	"discovir_bot/internal/commands"
	"discovir_bot/internal/config"
	"discovir_bot/internal/dataset"
	"discovir_bot/internal/utils"

	"github.com/bwmarrin/discordgo"
)

type Handler struct {
	registry *commands.Registry
	prefix   string
	chartDir string
}

// messageSender テキストコマンドの応答に使うSessionのメソッド
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// interactionResponder スラッシュコマンドの応答に使うSessionのメソッド
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseDelete(interaction *discordgo.Interaction, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func NewHandler(prefix string, data *dataset.Dataset, chartDir string) *Handler {
	registry := commands.NewRegistry(prefix)

	// helpは登録済みのコマンドを一覧するので先頭でも問題ない
	commandsList := []commands.Command{
		commands.NewHelpCommand(registry),
		commands.NewInfoCommand(config.SourceURL),
		commands.NewGraphCommand(data),
	}
	for _, cmd := range commandsList {
		registry.Register(cmd)
	}

	return &Handler{
		registry: registry,
		prefix:   prefix,
		chartDir: chartDir,
	}
}

// withAttachment 添付ファイルを一時ファイルに書き出してfnに渡す。送信後は必ず削除する
func (h *Handler) withAttachment(att *commands.Attachment, fn func(files []*discordgo.File) error) error {
	if att == nil {
		return fn(nil)
	}
	return utils.WithTempFile(h.chartDir, "discovir-*-"+att.Name, bytes.NewReader(att.Data), func(f *os.File) error {
		return fn([]*discordgo.File{{
			Name:        att.Name,
			ContentType: att.ContentType,
			Reader:      f,
		}})
	})
}
