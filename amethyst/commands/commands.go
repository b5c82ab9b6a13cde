package commands

import (
	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Version,
	Bday,
	Slap,
	Cookie,
	Tea,
	Cake,
	Hug,
	Bomb,
	RPS,
	Roulette,
	Stats,
	ServerStats,
	VCTracker,
	VCTop,
	AddQuote,
	Quote,
	DelQuote,
	ListQuotes,
	SetQuoteRole,
	AddGif,
	DelGif,
	ListGifs,
	SetGifRole,
	Welcome,
	Boost,
	SetLeaveChannel,
	Settings,
	SetBotGif,
	MTG,
}

// Games lists the collector prefixes used by interactive commands.
var Games = []string{bombGame, rpsGame, statsGame, vctopGame, mtgGame}

// Register binds every command handler to r.
func Register(r handler.Router, b *amethyst.Bot, w *handlers.Wrapper, c *handlers.Collectors) {
	guild := handlers.Options{GuildOnly: true}
	fun := handlers.Options{GuildOnly: true, Cooldown: config.DefaultMemberCooldown}
	game := handlers.Options{GuildOnly: true, Cooldown: config.DefaultMemberCooldown, Interactive: true}
	manage := handlers.Options{GuildOnly: true, Permissions: discord.PermissionManageChannels}
	announce := handlers.Options{GuildOnly: true, Permissions: discord.PermissionManageChannels, Cooldown: config.DefaultMemberCooldown}

	r.Command("/version", w.Wrap("version", handlers.Options{}, VersionHandler(b)))

	bdayChannel := manage
	bdayChannel.Check = requireBirthdayChannel(b)
	bdayInfo := guild
	bdayInfo.Check = requireBirthdayChannel(b)
	r.Route("/bday", func(r handler.Router) {
		r.Command("/add", w.Wrap("bday add", bdayChannel, BdayAddHandler(b)))
		r.Command("/remove", w.Wrap("bday remove", bdayChannel, BdayRemoveHandler(b)))
		r.Command("/edit", w.Wrap("bday edit", bdayChannel, BdayEditHandler(b)))
		r.Command("/info", w.Wrap("bday info", bdayInfo, BdayInfoHandler(b)))
		r.Command("/list", w.Wrap("bday list", bdayChannel, BdayListHandler(b)))
		r.Command("/setchannel", w.Wrap("bday setchannel", manage, BdaySetChannelHandler(b)))
		r.Command("/setrole", w.Wrap("bday setrole", bdayChannel, BdaySetRoleHandler(b)))
	})

	for _, g := range gifts {
		r.Command("/"+g.name, w.Wrap(g.name, fun, GiftHandler(b, g)))
	}

	r.Command("/bomb", w.Wrap("bomb", game, BombHandler(b, c)))
	r.Command("/rps", w.Wrap("rps", game, RPSHandler(b, c)))
	r.Command("/roulette", w.Wrap("roulette", fun, RouletteHandler(b)))

	viewer := handlers.Options{GuildOnly: true, Interactive: true}
	r.Command("/stats", w.Wrap("stats", viewer, StatsHandler(b, c)))
	r.Command("/serverstats", w.Wrap("serverstats", guild, ServerStatsHandler(b)))
	r.Command("/vctop", w.Wrap("vctop", viewer, VCTopHandler(b, c)))
	r.Route("/vctracker", func(r handler.Router) {
		r.Command("/ignorechannel", w.Wrap("vctracker ignorechannel", manage, IgnoreChannelHandler(b)))
	})

	quoteRole := guild
	quoteRole.Check = requireRole(b, quotesRole)
	r.Command("/addquote", w.Wrap("addquote", quoteRole, AddQuoteHandler(b)))
	r.Command("/quote", w.Wrap("quote", guild, QuoteHandler(b)))
	r.Command("/delquote", w.Wrap("delquote", quoteRole, DelQuoteHandler(b)))
	r.Command("/listquotes", w.Wrap("listquotes", guild, ListQuotesHandler(b)))
	r.Command("/setquoterole", w.Wrap("setquoterole", manage, SetQuoteRoleHandler(b)))

	gifRole := guild
	gifRole.Check = requireRole(b, gifsRole)
	r.Command("/addgif", w.Wrap("addgif", gifRole, AddGifHandler(b)))
	r.Command("/delgif", w.Wrap("delgif", gifRole, DelGifHandler(b)))
	r.Autocomplete("/delgif", DelGifAutocompleteHandler(b))
	r.Command("/listgifs", w.Wrap("listgifs", guild, ListGifsHandler(b)))
	r.Command("/setgifrole", w.Wrap("setgifrole", manage, SetGifRoleHandler(b)))

	for _, a := range announcements {
		withChannel := announce
		withChannel.Check = requireAnnouncementChannel(b, a.kind)
		r.Route("/"+a.name, func(r handler.Router) {
			r.Command("/setchannel", w.Wrap(a.name+" setchannel", announce, AnnouncementChannelHandler(b, a)))
			r.Command("/setmessage", w.Wrap(a.name+" setmessage", withChannel, AnnouncementMessageHandler(b, a)))
			r.Command("/setimage", w.Wrap(a.name+" setimage", withChannel, AnnouncementImageHandler(b, a)))
		})
	}
	r.Command("/setleavechannel", w.Wrap("setleavechannel", manage, SetLeaveChannelHandler(b)))
	r.Route("/settings", func(r handler.Router) {
		r.Command("/command_ping", w.Wrap("settings command_ping", guild, CommandPingHandler(b)))
	})

	r.Command("/set_bot_gif", w.Wrap("set_bot_gif", handlers.Options{OwnersOnly: true}, SetBotGifHandler(b)))

	lookup := handlers.Options{Cooldown: config.LookupCooldown, Interactive: true}
	r.Route("/mtg", func(r handler.Router) {
		r.Command("/card", w.Wrap("mtg card", lookup, MTGCardHandler(b, c)))
	})
}
