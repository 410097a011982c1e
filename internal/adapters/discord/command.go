package discord

import (
	"github.com/bwmarrin/discordgo"

	"livefeedback/internal/domain/entities"
)

const (
	cmdStart          = "start"
	cmdHelp           = "help"
	cmdAbout          = "about"
	cmdResponses      = "responses"
	cmdCodes          = "codes"
	cmdListByCode     = "listbycode"
	cmdListAll        = "listall"
	cmdListAllCSV     = "listallcsv"
	cmdAddCode        = "addcode"
	cmdDelCode        = "delcode"
	cmdFlushResponses = "flushresponses"
	cmdFlushCodes     = "flushcodes"
	cmdPrune          = "pruneresponses"
	cmdBroadcast      = "broadcast"
)

func secretOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "secret", Description: "Admin secret", Required: true,
	}
}

func codeOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "code", Description: "Speech code", Required: required,
	}
}

func confirmationOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "confirmation", Description: "Type YES to confirm", Required: true,
	}
}

func layoutOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.Layouts))
	for _, l := range entities.Layouts {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(l), Value: string(l)})
	}
	return &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "layout", Description: "CSV layout (default by_code)", Choices: choices,
	}
}

// commands lists every slash command the bot registers.
func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: cmdStart, Description: "Check in to a speech with its code", Options: []*discordgo.ApplicationCommandOption{codeOption(false)}},
		{Name: cmdHelp, Description: "Display this help message"},
		{Name: cmdAbout, Description: "Display information about the bot"},
		{Name: cmdResponses, Description: "List the speeches you checked in to"},
		{Name: cmdCodes, Description: "List allowed speech codes", Options: []*discordgo.ApplicationCommandOption{secretOption()}},
		{Name: cmdListByCode, Description: "List participants of a speech", Options: []*discordgo.ApplicationCommandOption{secretOption(), codeOption(true)}},
		{Name: cmdListAll, Description: "List participants of every speech", Options: []*discordgo.ApplicationCommandOption{secretOption()}},
		{Name: cmdListAllCSV, Description: "Export participants as a CSV document", Options: []*discordgo.ApplicationCommandOption{secretOption(), layoutOption()}},
		{Name: cmdAddCode, Description: "Add an allowed speech code", Options: []*discordgo.ApplicationCommandOption{secretOption(), codeOption(true)}},
		{Name: cmdDelCode, Description: "Delete an allowed speech code", Options: []*discordgo.ApplicationCommandOption{secretOption(), codeOption(true)}},
		{Name: cmdFlushResponses, Description: "Delete all responses (DANGEROUS)", Options: []*discordgo.ApplicationCommandOption{secretOption(), confirmationOption()}},
		{Name: cmdFlushCodes, Description: "Delete all speech codes AND all responses (DANGEROUS)", Options: []*discordgo.ApplicationCommandOption{secretOption(), confirmationOption()}},
		{Name: cmdPrune, Description: "Delete responses whose code is no longer allowed", Options: []*discordgo.ApplicationCommandOption{secretOption()}},
		{Name: cmdBroadcast, Description: "Send a message to every user, or to the users of one speech", Options: []*discordgo.ApplicationCommandOption{
			secretOption(),
			{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "Message to send", Required: true},
			codeOption(false),
		}},
	}
}
