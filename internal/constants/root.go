package constants

import "time"

const (
	AppName            = "habitrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitrack/habitrack.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ShortWeekdayFormat labels chart points ("Mon", "Tue", ...)
	ShortWeekdayFormat = "Mon"

	// StateVersion is the version written into persisted state documents
	StateVersion = 1

	// Export constants
	ExportFilePrefix = "habittrack_export_"
	ExportFileSuffix = ".json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitrack-"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "habitrack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.habitrack"

	// Environment variables
	EnvDBConnection = "HABITRACK_DB_CONNECTION"
)
