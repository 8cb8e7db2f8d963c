package bot

import (
	"context"
	"fmt"
	"html"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/christ0s/freegames-reporter/internal/models"
)

const deviceID = id.DeviceID("FREEGAMES_BOT")

// Bot posts giveaway announcements to a single Matrix room.
type Bot struct {
	client *mautrix.Client
	roomID id.RoomID
	log    zerolog.Logger
}

func New(homeserver, user, accessToken, roomID string, logger zerolog.Logger) (*Bot, error) {
	client, err := mautrix.NewClient(homeserver, id.UserID(user), accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix client: %v", err)
	}
	client.DeviceID = deviceID

	return &Bot{
		client: client,
		roomID: id.RoomID(roomID),
		log:    logger,
	}, nil
}

// Notify sends one message per giveaway, in order, and returns the IDs
// whose send was acknowledged by the homeserver. A failed send is logged
// and skipped; it does not stop the remaining sends.
func (b *Bot) Notify(ctx context.Context, giveaways []models.Giveaway) []int {
	var sent []int
	for _, gw := range giveaways {
		plain, formatted := buildMessage(gw)
		content := &event.MessageEventContent{
			MsgType:       event.MsgText,
			Body:          plain,
			Format:        event.FormatHTML,
			FormattedBody: formatted,
		}

		if _, err := b.client.SendMessageEvent(ctx, b.roomID, event.EventMessage, content); err != nil {
			b.log.Error().Err(err).Str("title", gw.DisplayTitle()).Msg("failed to send message")
			continue
		}
		b.log.Info().Int("id", gw.ID).Str("title", gw.DisplayTitle()).Msg("sent message")
		sent = append(sent, gw.ID)
	}
	return sent
}

// Close releases the connection to the homeserver. Safe to call after a
// partially failed batch.
func (b *Bot) Close() {
	b.client.Client.CloseIdleConnections()
}

// buildMessage renders the plain-text and HTML bodies for one giveaway.
func buildMessage(gw models.Giveaway) (plain, formatted string) {
	title := gw.DisplayTitle()
	platforms := gw.DisplayPlatforms()
	worth := gw.DisplayWorth()
	link := gw.ClaimURL()
	endDate := gw.DisplayEndDate()

	plain = fmt.Sprintf(
		"\U0001f3ae New Free Game: %s\n"+
			"\U0001f3e2 Platform: %s\n"+
			"\U0001f4b0 Worth: %s\n"+
			"\U0001f517 Claim here: %s\n"+
			"⏳ Expires: %s",
		title, platforms, worth, link, endDate,
	)
	formatted = fmt.Sprintf(
		"<b>\U0001f3ae New Free Game: %s</b><br/>"+
			"\U0001f3e2 Platform: %s<br/>"+
			"\U0001f4b0 Worth: %s<br/>"+
			"\U0001f517 Claim here: <a href=%q>%s</a><br/>"+
			"⏳ Expires: %s",
		html.EscapeString(title), html.EscapeString(platforms), html.EscapeString(worth),
		link, html.EscapeString(link), html.EscapeString(endDate),
	)
	return plain, formatted
}
