package catalog

// Champion is static champion data, keyed by the upstream champion id.
type Champion struct {
	ChampionID int
	Key        string
	Name       string
	Title      string
}

// Item is static item data. PlainText and Group are optional upstream.
type Item struct {
	ItemID      int
	Name        string
	Description string
	PlainText   *string
	Group       *string
}

type SummonerSpell struct {
	SpellID       int
	Key           string
	Name          string
	Description   string
	SummonerLevel int
}

// RefreshResult reports how many rows each catalog holds after a refresh.
type RefreshResult struct {
	Champions      int
	Items          int
	SummonerSpells int
}
