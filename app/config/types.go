package config

// rawService mirrors the YAML shape of a service descriptor file. Field
// paths accept either a dot string ("data.programs") or a list of segments;
// normalization happens in the loader.
type rawService struct {
	ServiceName    string            `yaml:"service_name"`
	APIURL         string            `yaml:"api_url"`
	Headers        map[string]string `yaml:"headers"`
	Channels       []Channel         `yaml:"channels"`
	TargetChannels any               `yaml:"target_channels"`
	APILevel1      any               `yaml:"api_level_1"`
	APILevel2      any               `yaml:"api_level_2"`
	Channel        any               `yaml:"channel"`
	ProgramTitle   any               `yaml:"program_title"`
	Subtitle       any               `yaml:"subtitle"`
	Description    any               `yaml:"description"`
	StartTime      any               `yaml:"start_time"`
	EndTime        any               `yaml:"end_time"`
	Live           any               `yaml:"live"`
	Duration       any               `yaml:"duration"`
	Rating         any               `yaml:"rating"`
	RatingCriteria any               `yaml:"rating_criteria"`
	Season         any               `yaml:"season"`
	Episode        any               `yaml:"episode"`
	Tags           any               `yaml:"tags"`
	Genre          any               `yaml:"genre"`
	Timezone       string            `yaml:"timezone"`
	NoLoop         bool              `yaml:"no_loop"`
	UseListInURL   bool              `yaml:"use_list_in_url"`
	BatchSize      int               `yaml:"batch_size"`
}

// Channel is one configured channel of a service.
type Channel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Service is a normalized service descriptor. Every path is a normalized
// ordered key sequence; an empty path resolves to "absent" at extraction
// time, never to an error.
type Service struct {
	Name           string
	APIURL         string
	Headers        map[string]string
	Channels       []Channel
	TargetChannels []string
	APILevel1      []string
	APILevel2      []string
	Channel        []string
	ProgramTitle   []string
	Subtitle       []string
	Description    []string
	StartTime      []string
	EndTime        []string
	Live           []string
	Duration       []string
	Rating         []string
	RatingCriteria []string
	Season         []string
	Episode        []string
	Tags           []string
	Genre          []string
	Timezone       string
	NoLoop         bool
	UseListInURL   bool
	BatchSize      int
}
