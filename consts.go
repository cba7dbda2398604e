package runlog

const (
	// LoggerFieldName is the record field carrying the dotted logger name.
	LoggerFieldName = "logger"

	// DefaultLogDirName is the directory, relative to the working directory,
	// used when Options.LogDir is empty.
	DefaultLogDirName = "logs"

	// FileTimestampLayout is the time layout embedded in log file names (YYYYMMDD-HHMMSS).
	FileTimestampLayout = "20060102-150405"

	// RecordTimeLayout is the time layout of the text record format.
	RecordTimeLayout = "15:04:05"

	logFileExt  = ".log"
	emptyString = ""
)

// Record formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const errMsgConfigInvalid = "Logging configuration is invalid."
