package structs

type MiniApp struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type SocialLink struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Emoji   string `json:"emoji"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// BotConfig is the chatbot singleton. Welcome keeps a {firstname}
// placeholder substituted when the bot greets a user.
type BotConfig struct {
	Welcome       string       `json:"welcome"`
	WelcomeImage  string       `json:"welcome_image"`
	InfoText      string       `json:"info_text"`
	MiniApp       MiniApp      `json:"mini_app"`
	Socials       []SocialLink `json:"socials"`
	ButtonsPerRow int          `json:"buttons_per_row"`
}

type PatchBotConfig struct {
	Welcome       *string       `json:"welcome"`
	WelcomeImage  *string       `json:"welcome_image"`
	InfoText      *string       `json:"info_text"`
	MiniApp       *MiniApp      `json:"mini_app"`
	Socials       *[]SocialLink `json:"socials"`
	ButtonsPerRow *int          `json:"buttons_per_row"`
}

type BotStats struct {
	Users    int64 `json:"users"`
	Messages int64 `json:"messages"`
	Orders   int64 `json:"orders"`
}
