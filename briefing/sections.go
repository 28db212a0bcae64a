package briefing

// SectionConfig is one topical section of the edition. Sections are composed
// in the order they are listed.
type SectionConfig struct {
	ID       string
	Title    string
	FeedURLs []string
	// Optional sections are left out of the edition when nothing was fetched.
	Optional bool
}

// DefaultSections is the standing layout of the daily edition.
var DefaultSections = []SectionConfig{
	{ID: "crypto", Title: "Crypto", FeedURLs: []string{"https://www.coindesk.com/arc/outboundfeeds/rss/"}},
	{ID: "public_markets", Title: "Public Markets", FeedURLs: []string{"https://feeds.content.dowjones.io/public/rss/mw_topstories"}},
	{ID: "startups", Title: "Startups / VC", FeedURLs: []string{"https://techcrunch.com/feed/"}},
	{ID: "healthcare", Title: "Healthcare (Kinnect / DSOs / Practices)"},
	{ID: "kinnect_scout", Title: "Kinnect Scout (Competitors, threats, moves to watch)"},
	{ID: "tools_ai", Title: "Tools & AI (new workflows, marketing, ops upgrades)", FeedURLs: []string{"https://www.producthunt.com/feed"}},
	{ID: "politics_global", Title: "Politics & Global (market impact)"},
	{ID: "foreign_markets", Title: "Foreign Markets", Optional: true},
}

// DefaultReaderContext is used when no reader persona is configured.
const DefaultReaderContext = `Reader context (for the Healthcare and Kinnect Scout sections):
- Kinnect is a three-sided platform that matches traditionally underserved medical private practices with residents (starting with orthodontics).
- It modernizes recruiting with AI matching (preferences plus culture/fit), retains users via guided mentorship, and enables knowledge exchange throughout a doctor's career.
- Key pain points: outdated recruiting, private practices losing to hospitals, bad fits from centralized recruiting, headhunters costing about 15% of first-year salary, few mentors for private-practice realities.`

// WatchlistPlaceholder stands in for the raw text of a section that has no
// feed or whose feeds returned nothing.
const WatchlistPlaceholder = "No feed configured or no items fetched. Do NOT claim facts. Instead: write a short watchlist: what to watch for, threats/opportunities, and what could matter next."
