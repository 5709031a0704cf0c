package out

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

type LogFields map[string]interface{}

type LoggerPort interface {
	Debug(event string, fields LogFields)
	Info(event string, fields LogFields)
	Warn(event string, fields LogFields)
	Error(event string, fields LogFields)
	WithFields(fields LogFields) LoggerPort
	WithModule(module string) LoggerPort
}

// ParseLogLevel разбирает уровень из конфига, по умолчанию DEBUG
func ParseLogLevel(level string) LogLevel {
	switch LogLevel(level) {
	case LogLevelInfo, "info":
		return LogLevelInfo
	case LogLevelWarn, "warn":
		return LogLevelWarn
	case LogLevelError, "error":
		return LogLevelError
	default:
		return LogLevelDebug
	}
}

func (l LogLevel) Enabled(min LogLevel) bool {
	return l.rank() >= min.rank()
}

func (l LogLevel) rank() int {
	switch l {
	case LogLevelInfo:
		return 1
	case LogLevelWarn:
		return 2
	case LogLevelError:
		return 3
	default:
		return 0
	}
}
