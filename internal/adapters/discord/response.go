package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "livefeedback/pkg/discord"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// respondEphemeral answers the interaction, sending the overflow of long
// content as follow-up messages.
func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	parts := pkgdiscord.SplitMessage(content, pkgdiscord.MaxMessageLength)
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: parts[0],
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Interaction response failed: %v", err)
		return
	}
	followUp(s, i, parts[1:])
}

// deferEphemeral acknowledges a slow command; the result is sent with
// followUp or editDeferred.
func deferEphemeral(s *discordgo.Session, i *discordgo.Interaction) bool {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Printf("❌ Deferred response failed: %v", err)
		return false
	}
	return true
}

func editDeferred(s *discordgo.Session, i *discordgo.Interaction, content string) {
	parts := pkgdiscord.SplitMessage(content, pkgdiscord.MaxMessageLength)
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &parts[0]}); err != nil {
		log.Printf("❌ Response edit failed: %v", err)
		return
	}
	followUp(s, i, parts[1:])
}

func followUp(s *discordgo.Session, i *discordgo.Interaction, parts []string) {
	for _, p := range parts {
		_, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
			Content: p,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		if err != nil {
			log.Printf("❌ Follow-up message failed: %v", err)
			return
		}
	}
}
