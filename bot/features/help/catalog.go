package help

// Category is one section of the help menu
type Category struct {
	Key      string
	Name     string
	Summary  string
	Title    string
	Commands []CommandEntry
}

// CommandEntry is one line of a category listing
type CommandEntry struct {
	Usage       string
	Description string
}

// Categories is the help menu in display order
var Categories = []Category{
	{
		Key:     "gaming",
		Name:    "🎮 Gaming",
		Summary: "Steam profiles, LFG system, game deals, gaming roles",
		Title:   "🎮 Gaming Commands",
		Commands: []CommandEntry{
			{"/steam <profile>", "View Steam profile information"},
			{"/playing", "See what server members are currently playing"},
			{"/lfg <game> <players>", "Create a looking-for-group post"},
			{"/gamedeal <game>", "Search for game deals and discounts"},
			{"/gamerole <game>", "Get a gaming role for a specific game"},
		},
	},
	{
		Key:     "tournament",
		Name:    "🏆 Tournament",
		Summary: "Create and manage tournaments with brackets",
		Title:   "🏆 Tournament Commands",
		Commands: []CommandEntry{
			{"/createtournament", "Create a new tournament"},
			{"/jointournament", "Join an active tournament"},
			{"/leavetournament", "Leave a tournament you joined"},
			{"/tournamentinfo", "View detailed tournament information"},
			{"/starttournament", "Start the tournament (organizer only)"},
			{"/listtournaments", "List all active tournaments"},
			{"/deletetournament", "Delete a tournament (organizer only)"},
		},
	},
	{
		Key:     "economy",
		Name:    "💰 Economy",
		Summary: "Virtual currency, shop, gambling games, leaderboards",
		Title:   "💰 Economy Commands",
		Commands: []CommandEntry{
			{"/balance", "Check your current balance and active boosts"},
			{"/daily", "Claim your daily reward (24h cooldown)"},
			{"/work", "Work to earn money"},
			{"/transfer <user> <amount>", "Transfer money to another user"},
			{"/leaderboard", "View the richest users on the server"},
			{"/shop", "View items available in the shop"},
			{"/buy <item>", "Buy an item from the shop"},
			{"/inventory", "View your items and boosts"},
			{"/use <item>", "Activate a consumable item"},
			{"/sell <item> <quantity>", "Sell items for money"},
			{"/rob <user>", "Attempt to rob another user"},
			{"/slots <bet>", "Play the slot machine"},
			{"/blackjack <bet>", "Play blackjack game"},
		},
	},
	{
		Key:     "utility",
		Name:    "🔧 Utility",
		Summary: "Polls, reminders, translate, calculator, server info",
		Title:   "🔧 Utility Commands",
		Commands: []CommandEntry{
			{"/poll <question> <options>", "Create a poll"},
			{"/remind <time> <message>", "Set a reminder"},
			{"/translate <text> <language>", "Translate text to another language"},
			{"/calculate <expression>", "Calculate math expressions"},
			{"/userinfo <user>", "Get detailed information about a user"},
			{"/serverinfo", "Get server information and statistics"},
			{"/avatar <user>", "View and download user's avatar"},
		},
	},
	{
		Key:     "study",
		Name:    "📚 Study",
		Summary: "Pomodoro timer, homework tracker, quiz system",
		Title:   "📚 Study Commands",
		Commands: []CommandEntry{
			{"/pomodoro", "Start a 25-minute Pomodoro study timer"},
			{"/stoppomodoro", "Stop your active Pomodoro timer"},
			{"/homework add", "Add a new homework assignment"},
			{"/homeworklist", "View all your homework assignments"},
			{"/homeworkdone", "Mark a homework assignment as complete"},
			{"/homeworkdelete", "Delete a homework assignment"},
			{"/quiz", "Take a quick trivia quiz to test your knowledge"},
		},
	},
	{
		Key:     "moderation",
		Name:    "🛡️ Moderation",
		Summary: "Kick, ban, mute, clear, slowmode, warnings, giveaways",
		Title:   "🛡️ Moderation Commands",
		Commands: []CommandEntry{
			{"/kick <member> <reason>", "Kick a member from the server"},
			{"/ban <member> <reason>", "Ban a member from the server"},
			{"/mute <member> <duration>", "Temporarily mute a member"},
			{"/unmute <member>", "Remove mute from a member"},
			{"/warn <member> <reason>", "Warn a member"},
			{"/clear <amount>", "Clear specified number of messages"},
			{"/slowmode <seconds>", "Set channel slowmode delay"},
			{"/setwelcome <channel>", "Set welcome message channel"},
			{"/setautorole <role>", "Set auto-role for new members"},
			{"/removeautorole", "Remove auto-role"},
			{"/giveaway <duration> <prize>", "Start a giveaway"},
		},
	},
	{
		Key:     "fun",
		Name:    "🎉 Fun",
		Summary: "Jokes, memes, 8ball, trivia, dice, fortune",
		Title:   "🎉 Fun Commands",
		Commands: []CommandEntry{
			{"/joke", "Get a random joke"},
			{"/meme", "Get a random meme from Reddit"},
			{"/8ball <question>", "Ask the magic 8-ball a question"},
			{"/trivia", "Start a trivia game with multiple questions"},
			{"/flip", "Flip a coin (heads or tails)"},
			{"/roll <dice>", "Roll dice (e.g., 2d6 for two 6-sided dice)"},
			{"/choose <options>", "Let the bot choose between options"},
			{"/fortune", "Get your fortune told"},
			{"/rate <thing>", "Rate something out of 10"},
		},
	},
	{
		Key:     "stats",
		Name:    "📊 Stats",
		Summary: "Server stats, channel stats, top chatters, emoji stats",
		Title:   "📊 Stats Commands",
		Commands: []CommandEntry{
			{"/serverstats", "View comprehensive server statistics"},
			{"/channelstats <channel>", "View specific channel statistics"},
			{"/roleinfo <role>", "View detailed role information"},
			{"/topchatters", "View most active chatters in the server"},
			{"/emojistats", "View emoji usage statistics"},
			{"/membercount", "View member count growth over time"},
		},
	},
}

// FindCategory returns the category with the given key
func FindCategory(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
