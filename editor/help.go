package editor

import (
	"fmt"
	"strings"
)

// Help categories
type HelpCategory struct {
	Name     string
	Commands []HelpCommand
}

type HelpCommand struct {
	Key         string
	Description string
}

var helpCategories = []HelpCategory{
	{
		Name: "Key Editing",
		Commands: []HelpCommand{
			{"<char>", "Guess plaintext under cursor, solve key byte"},
			{"Bksp", "Forget key byte at cursor column, move left"},
			{"Del", "Forget key byte at cursor column"},
			{"Ctrl+Z", "Undo"},
			{"Ctrl+Y", "Redo"},
		},
	},
	{
		Name: "Navigation",
		Commands: []HelpCommand{
			{"Arrows", "Move cursor (wraps at the edges)"},
			{"Home/End", "First/last column"},
			{"Click", "Move cursor to cell"},
		},
	},
	{
		Name: "System",
		Commands: []HelpCommand{
			{"Ctrl+S", "Save result to output file"},
			{"ESC", "Save and quit"},
		},
	},
}

// GetHelpText returns the help text for display
func GetHelpText() string {
	var b strings.Builder
	for i, cat := range helpCategories {
		b.WriteString(fmt.Sprintf("%s:\n", cat.Name))
		for _, cmd := range cat.Commands {
			b.WriteString(fmt.Sprintf("  %-9s %s\n", cmd.Key, cmd.Description))
		}
		if i < len(helpCategories)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// GetCompactHelp returns a single-line help hint
func GetCompactHelp() string {
	return "type:guess bksp/del:forget ^Z/^Y:undo/redo ^S:save esc:quit"
}
