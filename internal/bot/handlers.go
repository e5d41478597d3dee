package bot

import (
	"github.com/rs/zerolog"

	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
	"github.com/moonread/catalog-bot/internal/platform/observability"
)

// respond runs cmd against the catalog and returns the reply text and a status label.
// It never fails: every outcome, including an empty catalog, has a reply.
func (b *Bot) respond(cmd Command, logger *zerolog.Logger) (string, string) {
	switch cmd.Kind {
	case CommandStart:
		return b.renderer.Welcome(b.queries.Stats().Total), observability.StatusOK
	case CommandHelp:
		return b.renderer.Help(), observability.StatusOK
	case CommandSearch:
		return b.handleSearch(cmd.Arg, logger)
	case CommandBrowse:
		return b.handleBrowse(cmd.Arg, logger)
	case CommandRandom:
		return b.handleRandom(logger)
	case CommandStats:
		return b.handleStats()
	default:
		logger.Debug().Err(coreerrors.ErrUnknownCommand).Msg("ignoring unsupported command")

		return b.renderer.UnknownCommand(), observability.StatusError
	}
}

func (b *Bot) handleSearch(keyword string, logger *zerolog.Logger) (string, string) {
	if keyword == "" {
		return b.renderer.SearchUsage(), observability.StatusError
	}

	results := b.queries.Search(keyword)
	logger.Debug().Int(LogFieldResults, len(results)).Msg("search finished")

	return b.renderer.Search(keyword, results), resultStatus(len(results))
}

func (b *Bot) handleBrowse(letter string, logger *zerolog.Logger) (string, string) {
	if letter == "" {
		return b.renderer.BrowseUsage(), observability.StatusError
	}

	res := b.queries.Browse(letter)
	logger.Debug().Str("bucket", res.Key).Int(LogFieldResults, len(res.Entries)).Msg("browse finished")

	return b.renderer.Browse(res), resultStatus(len(res.Entries))
}

func (b *Bot) handleRandom(logger *zerolog.Logger) (string, string) {
	entry, err := b.queries.Random()
	if coreerrors.Is(err, coreerrors.ErrEmptyCatalog) {
		logger.Warn().Msg("random requested on empty catalog")

		return b.renderer.EmptyCatalog(), observability.StatusEmpty
	}

	if err != nil {
		logger.Error().Err(err).Msg("random pick failed")

		return b.renderer.EmptyCatalog(), observability.StatusError
	}

	return b.renderer.Random(entry), observability.StatusOK
}

func (b *Bot) handleStats() (string, string) {
	stats := b.queries.Stats()

	return b.renderer.Stats(stats), resultStatus(stats.Total)
}

func resultStatus(n int) string {
	if n == 0 {
		return observability.StatusEmpty
	}

	return observability.StatusOK
}
