package handler

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
)

// OnInteractionCreate スラッシュコマンドハンドラー
func (h *Handler) OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleSlashCommand(context.Background(), s, i.Interaction)
	default:
		log.Printf("Unhandled interaction type: %d", i.Type)
	}
}

func (h *Handler) handleSlashCommand(ctx context.Context, s interactionResponder, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()
	cmdName := data.Name
	log.Printf("Slash command: /%s", cmdName)

	var args []string
	if cmd, exists := h.registry.Get(cmdName); exists {
		args = slashArgs(cmd.SlashDefinition(), data.Options)
	}

	// グラフ生成に時間がかかることがあるので先に応答を保留する
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		log.Printf("Error deferring slash command %s: %v", cmdName, err)
		return
	}

	resp, err := h.registry.Dispatch(ctx, cmdName, args)
	if err != nil {
		log.Printf("Error executing slash command %s: %v", cmdName, err)
		// 保留中の応答を取り消す
		if delErr := s.InteractionResponseDelete(i); delErr != nil {
			log.Printf("Error deleting deferred response for %s: %v", cmdName, delErr)
		}
		return
	}

	err = h.withAttachment(resp.File, func(files []*discordgo.File) error {
		_, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
			Content: resp.Content,
			Files:   files,
		})
		return err
	})
	if err != nil {
		log.Printf("Error sending slash response for %s: %v", cmdName, err)
		return
	}
	log.Printf("Slash command %s completed", cmdName)
}

// slashArgs 定義の順番でオプション値を並べ、テキストコマンドと同じ引数列にする
func slashArgs(def *discordgo.ApplicationCommand, opts []*discordgo.ApplicationCommandInteractionDataOption) []string {
	if def == nil {
		return nil
	}
	values := make(map[string]string, len(opts))
	for _, opt := range opts {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = opt.StringValue()
		}
	}

	args := make([]string, 0, len(def.Options))
	for _, o := range def.Options {
		v, ok := values[o.Name]
		if !ok {
			break
		}
		args = append(args, v)
	}
	return args
}
