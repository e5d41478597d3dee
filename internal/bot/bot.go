package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/moonread/catalog-bot/internal/catalog"
	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
	"github.com/moonread/catalog-bot/internal/output/render"
	"github.com/moonread/catalog-bot/internal/platform/config"
	"github.com/moonread/catalog-bot/internal/platform/htmlutils"
	"github.com/moonread/catalog-bot/internal/platform/observability"
)

// Queries is the read-only catalog API the bot answers commands from.
type Queries interface {
	Search(keyword string) []catalog.Entry
	Browse(letter string) catalog.BrowseResult
	Random() (catalog.Entry, error)
	Stats() catalog.Stats
}

// sender delivers outgoing messages. *tgbotapi.BotAPI satisfies it.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api         *tgbotapi.BotAPI
	sender      sender
	queries     Queries
	renderer    *render.Renderer
	limiter     *rate.Limiter
	pollTimeout int
	logger      *zerolog.Logger
}

func New(cfg *config.Config, queries Queries, renderer *render.Renderer, logger *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("creating bot API: %w", err)
	}

	logger.Info().Str(LogFieldUsername, api.Self.UserName).Msg("Authorized on Telegram")

	b := newBot(api, queries, renderer, rate.NewLimiter(rate.Limit(cfg.SendPartsPerSecond), 1), logger)
	b.api = api
	b.pollTimeout = cfg.PollTimeout

	return b, nil
}

func newBot(s sender, queries Queries, renderer *render.Renderer, limiter *rate.Limiter, logger *zerolog.Logger) *Bot {
	return &Bot{
		sender:      s,
		queries:     queries,
		renderer:    renderer,
		limiter:     limiter,
		pollTimeout: DefaultPollTimeout,
		logger:      logger,
	}
}

// Run polls Telegram for updates and answers commands until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("bot run context canceled: %w", ctx.Err())
		case update, ok := <-updates:
			if !ok {
				return coreerrors.ErrUpdatesClosed
			}

			if update.Message == nil {
				continue
			}

			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, updateHandleTimeout)
	defer cancel()

	start := time.Now()
	cmd := ParseCommand(msg.Command(), msg.CommandArguments())

	var userID int64

	var username string

	if msg.From != nil {
		userID = msg.From.ID
		username = msg.From.UserName
	}

	logger := b.logger.With().
		Str(LogFieldRequestID, uuid.NewString()).
		Str(LogFieldCommand, msg.Command()).
		Int64(LogFieldUserID, userID).
		Logger()

	logger.Info().Str(LogFieldUsername, username).Msg("Handling command")

	text, status := b.respond(cmd, &logger)

	if err := b.sendMessage(ctx, msg.Chat.ID, text); err != nil {
		status = observability.StatusError

		logger.Error().Err(err).Int64(LogFieldChatID, msg.Chat.ID).Msg("failed to send reply")
	}

	label := cmd.Kind.String()
	observability.CommandsHandled.WithLabelValues(label, status).Inc()
	observability.CommandDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
}

// sendMessage splits text into Telegram-sized HTML parts and sends them in order,
// pacing parts through the shared limiter.
func (b *Bot) sendMessage(ctx context.Context, chatID int64, text string) error {
	parts := htmlutils.SplitHTML(text, MaxMessageSize)

	b.logger.Debug().Int64(LogFieldChatID, chatID).Int(LogFieldParts, len(parts)).Msg("sending reply")

	for i, part := range parts {
		if err := b.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting to send part %d of %d: %w", i+1, len(parts), err)
		}

		reply := tgbotapi.NewMessage(chatID, htmlutils.StripItemMarkers(part))
		reply.ParseMode = tgbotapi.ModeHTML
		reply.DisableWebPagePreview = true

		if _, err := b.sender.Send(reply); err != nil {
			observability.MessagesSent.WithLabelValues(observability.StatusError).Inc()

			return fmt.Errorf("sending part %d of %d to chat %d: %w", i+1, len(parts), chatID, err)
		}

		observability.MessagesSent.WithLabelValues(observability.StatusOK).Inc()
	}

	return nil
}
