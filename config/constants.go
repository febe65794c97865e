package config

import "github.com/kchaow/filemanager/internal/util"

// CLI verbosity values. Higher is more verbose.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Supported console languages
const (
	LangRussian = "ru"
	LangEnglish = "en"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLang    = LangRussian
	DefaultLogLvl  = util.WarnLevel
	DefaultLogFile = ""

	// DefaultDirToken selects the default directory at the directory prompt
	DefaultDirToken = "-"

	// EnvPrefix prefixes every environment override, i.e. FILEMANAGER_LANG
	EnvPrefix = "FILEMANAGER"
)
