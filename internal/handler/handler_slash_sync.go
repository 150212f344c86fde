package handler

import (
	"fmt"
	"log"
	"reflect"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// SyncSlashCommands ローカル定義とDiscord側のグローバルコマンドを揃える
func (h *Handler) SyncSlashCommands(s *discordgo.Session) error {
	log.Println("Syncing slash commands...")

	appID := s.State.User.ID
	remoteCommands, err := s.ApplicationCommands(appID, "")
	if err != nil {
		return fmt.Errorf("could not fetch remote commands: %w", err)
	}

	create, update, remove := diffCommands(h.registry.GetSlashDefinitions(), remoteCommands)

	for _, cmd := range create {
		log.Printf("Creating slash command: /%s", cmd.Name)
		if _, err := s.ApplicationCommandCreate(appID, "", cmd); err != nil {
			log.Printf("Failed to create command /%s: %v", cmd.Name, err)
		}
	}
	for _, cmd := range update {
		log.Printf("Updating slash command: /%s", cmd.Name)
		if _, err := s.ApplicationCommandEdit(appID, "", cmd.ID, cmd); err != nil {
			log.Printf("Failed to update command /%s: %v", cmd.Name, err)
		}
	}
	for _, cmd := range remove {
		log.Printf("Deleting outdated slash command: /%s", cmd.Name)
		if err := s.ApplicationCommandDelete(appID, "", cmd.ID); err != nil {
			log.Printf("Failed to delete command /%s: %v", cmd.Name, err)
		}
	}

	log.Println("Slash command sync complete.")
	return nil
}

// diffCommands 作成・更新・削除が必要なコマンドに振り分ける。
// updateにはリモートのIDを付けたローカル定義を入れる
func diffCommands(local, remote []*discordgo.ApplicationCommand) (create, update, remove []*discordgo.ApplicationCommand) {
	remoteByName := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, cmd := range remote {
		remoteByName[cmd.Name] = cmd
	}

	for _, cmd := range local {
		existing, ok := remoteByName[cmd.Name]
		if !ok {
			create = append(create, cmd)
			continue
		}
		delete(remoteByName, cmd.Name)
		if !commandsAreEqual(cmd, existing) {
			edited := *cmd
			edited.ID = existing.ID
			update = append(update, &edited)
		}
	}

	for _, cmd := range remote {
		if _, stale := remoteByName[cmd.Name]; stale {
			remove = append(remove, cmd)
		}
	}
	return create, update, remove
}

func commandsAreEqual(c1, c2 *discordgo.ApplicationCommand) bool {
	if c1.Name != c2.Name || c1.Description != c2.Description {
		return false
	}
	return optionListsAreEqual(c1.Options, c2.Options)
}

func optionListsAreEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = sortedOptions(a), sortedOptions(b)
	for i := range a {
		if !optionsAreEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func optionsAreEqual(o1, o2 *discordgo.ApplicationCommandOption) bool {
	if o1.Type != o2.Type || o1.Name != o2.Name || o1.Description != o2.Description || o1.Required != o2.Required {
		return false
	}
	if len(o1.Choices) != len(o2.Choices) {
		return false
	}
	if len(o1.Choices) > 0 && !reflect.DeepEqual(sortedChoices(o1.Choices), sortedChoices(o2.Choices)) {
		return false
	}
	return optionListsAreEqual(o1.Options, o2.Options)
}

func sortedOptions(opts []*discordgo.ApplicationCommandOption) []*discordgo.ApplicationCommandOption {
	out := append([]*discordgo.ApplicationCommandOption(nil), opts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// sortedChoices 名前順に並べ、比較できるよう値を文字列にそろえる
func sortedChoices(choices []*discordgo.ApplicationCommandOptionChoice) []discordgo.ApplicationCommandOptionChoice {
	out := make([]discordgo.ApplicationCommandOptionChoice, len(choices))
	for i, c := range choices {
		out[i] = discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: fmt.Sprint(c.Value)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
