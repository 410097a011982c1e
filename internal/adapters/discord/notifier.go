package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"livefeedback/internal/ports/output"
)

var _ output.Notifier = (*DMNotifier)(nil)

// DMNotifier delivers messages as Discord direct messages.
type DMNotifier struct {
	session *discordgo.Session
}

func NewDMNotifier(session *discordgo.Session) *DMNotifier {
	return &DMNotifier{session: session}
}

func (n *DMNotifier) Notify(ctx context.Context, userID int64, message string) error {
	ch, err := n.session.UserChannelCreate(strconv.FormatInt(userID, 10), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}
	if _, err := n.session.ChannelMessageSend(ch.ID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}
