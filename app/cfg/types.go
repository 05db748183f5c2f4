package cfg

type Cfg struct {
	// Grab configuration
	Days      int
	Services  []string
	ChannelID string
	Output    string
	ConfigDir string

	// Serve configuration
	Serve bool
	Port  string

	// Collaborators
	SportsDB string

	// Application metadata
	UserAgent string
	Timeout   int
	Debug     bool
	Version   string
}
