package render

import (
	"fmt"
	"html"
)

// Welcome is the /start message.
func (r *Renderer) Welcome(total int) string {
	return "🌙 <b>Welcome to Moon Read Catalog Bot!</b> 📚\n\n" +
		fmt.Sprintf("Find novels from our collection of <b>%d+ EPUBs</b>!\n\n", total) +
		"<b>How to use:</b>\n\n" +
		"🔍 <b>Search for a book:</b>\n" +
		"<code>/search tempest</code>\n" +
		"Example: <code>/search villainess</code>\n\n" +
		"📖 <b>Random book:</b>\n" +
		"<code>/random</code>\n\n" +
		"📋 <b>Browse alphabetically:</b>\n" +
		"<code>/browse A</code> - Show all books starting with A\n" +
		"<code>/browse #</code> - Show books starting with numbers\n\n" +
		"ℹ️ <b>Help:</b>\n" +
		"<code>/help</code>\n\n" +
		"Start searching now! 🚀"
}

// Help is the /help message.
func (r *Renderer) Help() string {
	msg := "📚 <b>Moon Read Catalog Bot - Help</b>\n\n" +
		"<b>Available Commands:</b>\n\n" +
		"🔍 <b>Search:</b>\n" +
		"• <code>/search keyword</code> - Search for books\n" +
		"• Example: <code>/search romance</code>\n" +
		"• Example: <code>/search villainess tempest</code>\n\n" +
		"📋 <b>Browse:</b>\n" +
		"• <code>/browse A</code> - Show all books starting with A\n" +
		"• <code>/browse #</code> - Show books starting with numbers\n" +
		"• Available: A-Z and #\n\n" +
		"📖 <b>Random:</b>\n" +
		"• <code>/random</code> - Get a random book recommendation\n\n" +
		"📊 <b>Statistics:</b>\n" +
		"• <code>/stats</code> - Show catalog statistics\n\n" +
		"<b>Search Tips:</b>\n" +
		"• Search is case-insensitive\n" +
		"• Words are matched as one phrase: <code>/search villainess returns</code>\n" +
		"• Partial matches work (e.g., \"temp\" finds \"Tempest\")"

	if r.supportContact != "" {
		msg += "\n\n<b>Need help?</b> Contact " + html.EscapeString(r.supportContact)
	}

	return msg
}

// SearchUsage is shown when /search has no keyword.
func (r *Renderer) SearchUsage() string {
	return "❌ Please provide a search keyword!\n\n" +
		"<b>Example:</b>\n" +
		"<code>/search tempest</code>\n" +
		"<code>/search villainess romance</code>"
}

// BrowseUsage is shown when /browse has no letter.
func (r *Renderer) BrowseUsage() string {
	return "❌ Please specify a letter!\n\n" +
		"<b>Examples:</b>\n" +
		"<code>/browse A</code> - Books starting with A\n" +
		"<code>/browse #</code> - Books starting with numbers\n\n" +
		"Available: A-Z and #"
}

// UnknownCommand is shown for commands the bot does not support.
func (r *Renderer) UnknownCommand() string {
	return "🤔 Unknown command. Type <code>/help</code> to see what I can do."
}
