package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	Port         string
	AliasesFile  string
	APIAccessKey string

	// One-shot import mode
	ImportFile string
	Period     string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
