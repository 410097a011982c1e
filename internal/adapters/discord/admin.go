package discord

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"livefeedback/internal/application"
	"livefeedback/internal/domain"
	"livefeedback/internal/domain/entities"
	pkgdiscord "livefeedback/pkg/discord"
)

// errorMessage renders err for the user and logs what is not a domain error.
func (h *Handler) errorMessage(locale string, err error, data map[string]any) string {
	if domain.KindOf(err) == domain.KindInternal {
		log.Printf("❌ Admin command failed: %v", err)
	}
	return h.translator.T(locale, pkgdiscord.ErrorKey(err), data)
}

func (h *Handler) HandleCodes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	codes, err := h.admin.ListCodes(ctx, opts.String("secret"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, renderCodes(h.translator, locale, codes))
}

func (h *Handler) HandleListByCode(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	report, err := h.admin.ListByCode(ctx, opts.String("secret"), opts.String("code"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, renderCodeReport(h.translator, locale, report))
}

func (h *Handler) HandleListAll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	reports, err := h.admin.ListAll(ctx, opts.String("secret"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, renderAllReports(h.translator, locale, reports))
}

func (h *Handler) HandleListAllCSV(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	layout, err := entities.ParseLayout(opts.String("layout"))
	if err != nil {
		// unknown layouts are rejected by Export after the secret check
		layout = entities.ExportLayout(opts.String("layout"))
	}
	if !deferEphemeral(s, i.Interaction) {
		return
	}
	body, err := h.admin.Export(ctx, opts.String("secret"), layout)
	if err != nil {
		editDeferred(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: h.translator.T(locale, "export_ready", map[string]any{"Layout": string(layout)}),
		Flags:   discordgo.MessageFlagsEphemeral,
		Files: []*discordgo.File{{
			Name:        application.ExportFileName(layout, time.Now(), h.location),
			ContentType: "text/csv",
			Reader:      bytes.NewReader(body),
		}},
	})
	if err != nil {
		log.Printf("❌ Sending CSV export failed: %v", err)
	}
}

func (h *Handler) HandleAddCode(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	code, err := h.admin.AddCode(ctx, opts.String("secret"), opts.String("code"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "code_added", map[string]any{"Code": code}))
}

func (h *Handler) HandleDelCode(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	code, err := h.admin.DeleteCode(ctx, opts.String("secret"), opts.String("code"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, map[string]any{"Code": code}))
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "code_deleted", map[string]any{"Code": code}))
}

func (h *Handler) HandleFlushResponses(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	if err := h.admin.FlushResponses(ctx, opts.String("secret"), opts.String("confirmation")); err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "flush_responses_done", nil))
}

func (h *Handler) HandleFlushCodes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	if err := h.admin.FlushCodes(ctx, opts.String("secret"), opts.String("confirmation")); err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "flush_codes_done", nil))
}

func (h *Handler) HandlePrune(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	n, err := h.admin.PruneResponses(ctx, opts.String("secret"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "prune_done", map[string]any{"Count": int(n)}))
}

func (h *Handler) HandleBroadcast(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	opts := pkgdiscord.ExtractOptions(i.ApplicationCommandData())

	scope := entities.AllUsers()
	if code := opts.String("code"); code != "" {
		scope = entities.ByCode(code)
	}
	if !deferEphemeral(s, i.Interaction) {
		return
	}
	res, err := h.admin.Broadcast(ctx, opts.String("secret"), opts.String("message"), scope)
	if err != nil {
		editDeferred(s, i.Interaction, h.errorMessage(locale, err, nil))
		return
	}
	if res.Failed > 0 {
		log.Printf("⚠️ Broadcast finished: %d attempted, %d failed", res.Attempted, res.Failed)
	}
	editDeferred(s, i.Interaction, h.translator.T(locale, "broadcast_done", map[string]any{"Count": res.Attempted}))
}
