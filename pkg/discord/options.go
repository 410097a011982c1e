package discord

import "github.com/bwmarrin/discordgo"

// Options indexes the options of a slash command by name.
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// ExtractOptions flattens the top-level options of a command.
func ExtractOptions(data discordgo.ApplicationCommandInteractionData) Options {
	out := make(Options, len(data.Options))
	for _, opt := range data.Options {
		out[opt.Name] = opt
	}
	return out
}

// String returns the string value of option name, or "" when absent.
func (o Options) String(name string) string {
	opt, ok := o[name]
	if !ok || opt == nil {
		return ""
	}
	if s, ok := opt.Value.(string); ok {
		return s
	}
	return ""
}
