package discord

import (
	"context"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"livefeedback/internal/domain/entities"
	pkgdiscord "livefeedback/pkg/discord"
)

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// toUser maps the Discord author of an interaction to a registry user.
func toUser(i *discordgo.InteractionCreate) (entities.User, bool) {
	u := interactionUser(i)
	if u == nil {
		return entities.User{}, false
	}
	id, err := strconv.ParseInt(u.ID, 10, 64)
	if err != nil {
		return entities.User{}, false
	}
	return entities.User{
		ID:        id,
		Username:  u.Username,
		FirstName: resolveDisplayName(i.Member, u),
	}, true
}

func (h *Handler) HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	user, ok := toUser(i)
	if !ok {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error_generic", nil))
		return
	}
	code := pkgdiscord.ExtractOptions(i.ApplicationCommandData()).String("code")

	out, err := h.attendance.Register(ctx, user, code)
	if err != nil {
		log.Printf("❌ Registration failed (user=%d): %v", user.ID, err)
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error_generic", nil))
		return
	}
	respondEphemeral(s, i.Interaction, renderOutcome(h.translator, locale, out))
}

func (h *Handler) HandleResponses(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	user, ok := toUser(i)
	if !ok {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error_generic", nil))
		return
	}
	responses, err := h.attendance.MyResponses(ctx, user.ID)
	if err != nil {
		log.Printf("❌ Listing responses failed (user=%d): %v", user.ID, err)
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error_generic", nil))
		return
	}
	respondEphemeral(s, i.Interaction, renderMyResponses(h.translator, locale, responses))
}

func (h *Handler) HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i.Interaction, renderHelp(h.translator, string(i.Locale)))
}

func (h *Handler) HandleAbout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i.Interaction, h.translator.T(string(i.Locale), "about_text", nil))
}
