package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"livefeedback/internal/config"
)

// NewSession creates a Discord session; it is shared by the bot and the
// DM notifier.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages
	return s, nil
}

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	routes  map[string]func(*discordgo.Session, *discordgo.InteractionCreate)
}

func NewBot(session *discordgo.Session, cfg *config.Config, handler *Handler) *Bot {
	bot := &Bot{
		session: session,
		config:  cfg,
		handler: handler,
	}
	bot.routes = map[string]func(*discordgo.Session, *discordgo.InteractionCreate){
		cmdStart:          handler.HandleStart,
		cmdHelp:           handler.HandleHelp,
		cmdAbout:          handler.HandleAbout,
		cmdResponses:      handler.HandleResponses,
		cmdCodes:          handler.HandleCodes,
		cmdListByCode:     handler.HandleListByCode,
		cmdListAll:        handler.HandleListAll,
		cmdListAllCSV:     handler.HandleListAllCSV,
		cmdAddCode:        handler.HandleAddCode,
		cmdDelCode:        handler.HandleDelCode,
		cmdFlushResponses: handler.HandleFlushResponses,
		cmdFlushCodes:     handler.HandleFlushCodes,
		cmdPrune:          handler.HandlePrune,
		cmdBroadcast:      handler.HandleBroadcast,
	}
	session.AddHandler(bot.handleInteraction)
	return bot
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	if route, ok := b.routes[name]; ok {
		route(s, i)
		return
	}
	log.Printf("⚠️ Unknown command: %s", name)
}

// Start opens the session, registers the slash commands and blocks until
// ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	appID := b.session.State.User.ID
	for _, cmd := range commands() {
		if _, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Registering command %s failed: %v", cmd.Name, err)
		}
	}

	log.Println("🤖 Bot online. Press CTRL+C to quit.")
	<-ctx.Done()
	log.Println("👋 Shutting down the bot")
	return nil
}
