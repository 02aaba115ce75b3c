package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Celebration"
	AppID       = "com.github.tartampluch.go-celebration"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion       = "version"
	FlagDebug         = "debug"
	FlagTheme         = "theme"
	FlagThemeFile     = "theme-file"
	FlagLang          = "lang"
	FlagAssets        = "assets"
	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging to stdout"
	FlagDescTheme     = "Embedded theme to use (ocean, sunset)"
	FlagDescThemeFile = "Path to a YAML theme file (overrides -theme)"
	FlagDescLang      = "UI language (en, fr)"
	FlagDescAssets    = "Directory containing the countdown and celebration images"
	MsgVersionOutput  = "%s version %s (%s/%s)\n"
	MsgVersionThemes  = "themes: %s (default %s)\n"
)

// -----------------------------------------------------------------------------
// Celebration Timing
// -----------------------------------------------------------------------------

const (
	// InitialCount is the value the countdown starts from. It is also the
	// upper bound of the reveal set.
	InitialCount = 3

	// TickInterval separates two countdown decrements.
	TickInterval = 1 * time.Second

	// AmbientInterval separates two ambient confetti pairs while the
	// birthday stage is shown.
	AmbientInterval = 3 * time.Second
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 900
	MainWindowHeight    = 700
	SettingsWindowWidth = 520

	// Preference Keys
	PrefLanguage    = "language"
	PrefTheme       = "theme"
	PrefThemeFile   = "theme_file"
	PrefAssetDir    = "asset_dir"
	PrefHonoreeCard = "honoree_card"
	PrefLastRun     = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Visual Parameters
// -----------------------------------------------------------------------------

const (
	TitleTextSize     = 44
	ButtonTextSize    = 22
	CountdownTextSize = 120
	BirthdayTextSize  = 64
	HonoreeTextSize   = 40
	MessageTextSize   = 22
	FooterTextSize    = 16

	RevealTileSize   = 160
	BirthdayTileSize = 220
	RevealColumns    = 3

	// Stage view animations.
	PulseDuration      = 2 * time.Second
	FlipInDuration     = 500 * time.Millisecond
	MessageFadeIn      = 500 * time.Millisecond
	MessageStagger     = 300 * time.Millisecond
	PulseScale         = 0.1
	GradientAngle      = 135
	SparkleCount       = 18
	SparkleSize        = 6
	SparkleSeed        = 42
	ConfettiPieceW     = 8
	ConfettiPieceH     = 5
	ConfettiAnimLength = time.Second
)

// -----------------------------------------------------------------------------
// Assets
// -----------------------------------------------------------------------------

const (
	DefaultAssetDir       = "assets"
	DefaultCountdownImage = "countdown-%d.jpeg"
	DefaultBirthdayImage  = "birthday.jpeg"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyMenuFile       = "menu_file"
	TKeyMenuSettings   = "menu_settings"
	TKeyBtnCelebrate   = "btn_celebrate"
	TKeyHappyBirthday  = "happy_birthday"
	TKeyTurningAge     = "turning_age" // Requires Age, plural
	TKeyFooterMadeBy   = "footer_made_by"
	TKeyFooterTagline  = "footer_tagline"
	TKeyBtnSaveTheDate = "btn_save_the_date"
	TKeyNotifSaved     = "notif_saved"
	TKeyEventSummary   = "event_summary" // Requires Name
	TKeyLblLanguage    = "lbl_language"
	TKeyLblTheme       = "lbl_theme"
	TKeyLblAssetDir    = "lbl_asset_dir"
	TKeyLblHonoree     = "lbl_honoree_card"
	TKeyHelpHonoree    = "help_honoree_card"
	TKeyLblGeneral     = "lbl_general"
	TKeyBtnBrowse      = "btn_browse"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyLblFooter      = "lbl_footer"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	DefaultTheme    = "ocean"
	DefaultLeapYear = 2000 // Leap year fallback for dates like --02-29
	UIDSalt         = "go-celebration-v1-"

	// MaxCardDecodeErrors bounds consecutive decode failures before a
	// card stream is given up on.
	MaxCardDecodeErrors = 3
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Celebration//Save The Date//EN"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalDomain  = "gocelebration"
	ICalYearly  = "FREQ=YEARLY"

	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTStamp  = "DTSTAMP"
	PropRRule    = "RRULE"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"
	PropMethod   = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"

	ExtVCF     = ".vcf"
	ExtVCard   = ".vcard"
	ExtICS     = ".ics"
	ExtYAML    = ".yaml"
	ICSFileFmt = "birthday-%s.ics"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrThemeRead     = "failed to read theme"
	ErrThemeParse    = "failed to parse theme YAML"
	ErrThemeInvalid  = "invalid theme"
	ErrThemeUnknown  = "unknown theme"
	ErrThemeColor    = "invalid hex colour"
	ErrCardOpen      = "failed to open honoree card"
	ErrCardEmpty     = "honoree card contains no contact"
	ErrCardNotFile   = "honoree card is not a regular file"
	ErrCardParse     = "failed to parse honoree card"
	ErrDateParse     = "unable to parse date"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrNoBirthday    = "honoree has no known birthday"
	ErrExportWrite   = "failed to write calendar file"
	ErrAssetMissing  = "asset not found, using placeholder"
	ErrHonoreeLoad   = "honoree card ignored"
	ErrThemeFallback = "theme failed to load, using default"

	// Theme validation
	ErrThemeNoID       = "theme id is required"
	ErrThemeNoTitle    = "title is required"
	ErrThemeNoMessages = "at least one message is required"
	ErrThemeNoConfetti = "at least one confetti colour is required"
	ErrThemeCountdown  = "assets.countdown must contain exactly one %d and no other verb"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgStageChanged   = "Stage changed"
	MsgBeginIgnored   = "Begin celebration ignored outside initial stage"
	MsgCountdownTick  = "Countdown tick"
	MsgValueRevealed  = "Countdown value revealed"
	MsgAmbientFired   = "Ambient burst fired"
	MsgStaleCallback  = "Ignoring stale timer callback"
	MsgControllerDown = "Controller closed, pending timers cancelled"
	MsgEffectFired    = "Effect fired"
	MsgThemeLoaded    = "Theme loaded"
	MsgHonoreeLoaded  = "Honoree card loaded"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgCalendarSaved  = "Save-the-date calendar written"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsSaved  = "Saving preferences"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgWindowClosed   = "Main window closed"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackName    = "Unknown"
	FallbackSummary = "Birthday: %s"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyStage     = "stage"
	LogKeyFrom      = "from"
	LogKeyTo        = "to"
	LogKeyCount     = "count"
	LogKeyValue     = "value"
	LogKeyRevealed  = "revealed"
	LogKeyEffect    = "effect"
	LogKeyBursts    = "bursts"
	LogKeyParticles = "particles"
	LogKeyTheme     = "theme"
	LogKeyName      = "name"
	LogKeyPath      = "path"
	LogKeyFired     = "fired"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"

	// Celebration startup keys
	LogKeyCelebration = "celebration"
	LogKeyThemes      = "themes"
	LogKeyOverrides   = "overrides"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI         = "ui"
	CompUISet      = "ui_settings"
	CompController = "controller"
	CompCountdown  = "countdown"
	CompAmbient    = "ambient"
	CompTheme      = "theme"
	CompHonoree    = "honoree"
	CompConfetti   = "confetti"
	CompMain       = "main"
	CompI18n       = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
