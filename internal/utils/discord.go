package utils

import (
	"fmt"
	"strings"
)

// FormatUserDisplayName formats a user label as "name#id", "name", or "ID:id".
func FormatUserDisplayName(name, id string) string {
	name = strings.TrimSpace(name)
	id = strings.TrimSpace(id)
	switch {
	case name != "" && id != "":
		return fmt.Sprintf("%s#%s", name, id)
	case name != "":
		return name
	case id != "":
		return fmt.Sprintf("ID:%s", id)
	default:
		return "-"
	}
}

// CodeBlock wraps text in a Discord preformatted block.
func CodeBlock(text string) string {
	text = strings.ReplaceAll(text, "```", "`\u200b``")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return "```\n" + text + "```"
}
