package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type InfoCommand struct {
	source string
}

func NewInfoCommand(source string) *InfoCommand {
	return &InfoCommand{source: source}
}

func (c *InfoCommand) Name() string {
	return "info"
}

func (c *InfoCommand) Aliases() []string {
	return []string{"i"}
}

func (c *InfoCommand) Description() string {
	return "Returns the source of COVID data used."
}

func (c *InfoCommand) Execute(ctx context.Context, args []string) (*Response, error) {
	return &Response{Content: "Source of data: " + c.source}, nil
}

func (c *InfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}
