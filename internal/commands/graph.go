package commands

import (
	"context"
	"fmt"
	"strings"

	"discovir_bot/internal/dataset"
	"discovir_bot/internal/embeds"

	"github.com/bwmarrin/discordgo"
)

// GraphUsageMessage 月・地域が分からないときの案内
const GraphUsageMessage = "Please supply a full month name and a full state name as arguments."

// GraphCommand 月・地域ごとのアクティブ症例数グラフ
type GraphCommand struct {
	data *dataset.Dataset
}

func NewGraphCommand(data *dataset.Dataset) *GraphCommand {
	return &GraphCommand{data: data}
}

func (c *GraphCommand) Name() string { return "graph" }

func (c *GraphCommand) Aliases() []string { return []string{"g"} }

func (c *GraphCommand) Description() string {
	return "Returns a graph of active COVID cases over a specific month in a particular state."
}

// Execute args: <month> <region...>（地域名は空白を含んでよい）
func (c *GraphCommand) Execute(ctx context.Context, args []string) (*Response, error) {
	if len(args) < 2 {
		return nil, &UserError{Message: GraphUsageMessage}
	}
	month, ok := c.data.Month(args[0])
	if !ok {
		return nil, &UserError{Message: GraphUsageMessage}
	}
	region, ok := c.data.Region(strings.Join(args[1:], " "))
	if !ok {
		return nil, &UserError{Message: GraphUsageMessage}
	}

	series, err := c.data.ActiveSeries(month, region)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pngBuf, err := embeds.BuildActiveCasesChartPNG(embeds.ActiveChart{
		Region: region,
		Month:  month,
		Year:   c.data.Year(),
		Values: series,
	})
	if err != nil {
		return nil, fmt.Errorf("グラフ生成に失敗しました: %w", err)
	}

	return &Response{
		File: &Attachment{
			Name:        "graph.png",
			ContentType: "image/png",
			Data:        pngBuf.Bytes(),
		},
	}, nil
}

func (c *GraphCommand) SlashDefinition() *discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(c.data.Months()))
	for _, m := range c.data.Months() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m.Name, Value: m.Name})
	}

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "month",
				Description: "Full month name, e.g. january",
				Required:    true,
				Choices:     choices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "region",
				Description: "Full state name, e.g. California",
				Required:    true,
			},
		},
	}
}
