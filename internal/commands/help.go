package commands

import (
	"context"
	"fmt"
	"strings"

	"discovir_bot/internal/utils"
	"discovir_bot/internal/version"

	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct {
	registry *Registry
}

func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Aliases() []string {
	return []string{"h"}
}

func (c *HelpCommand) Description() string {
	return "Returns all available commands."
}

func (c *HelpCommand) Execute(ctx context.Context, args []string) (*Response, error) {
	return &Response{Content: c.buildHelpText()}, nil
}

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) buildHelpText() string {
	prefix := c.registry.Prefix()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n\n", version.Name, version.Description)
	sb.WriteString("Commands:\n")

	// コマンドを登録順に追加
	for _, cmd := range c.registry.All() {
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(&sb, "\t%s%s (%s%s) - %s\n", prefix, cmd.Name(), prefix, strings.Join(aliases, ", "+prefix), cmd.Description())
		} else {
			fmt.Fprintf(&sb, "\t%s%s - %s\n", prefix, cmd.Name(), cmd.Description())
		}
	}

	return utils.CodeBlock(sb.String())
}
