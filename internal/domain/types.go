package domain

// AccessLevel is AWS's coarse classification of what an action does
type AccessLevel string

const (
	AccessLevelRead                  AccessLevel = "Read"
	AccessLevelWrite                 AccessLevel = "Write"
	AccessLevelList                  AccessLevel = "List"
	AccessLevelTagging               AccessLevel = "Tagging"
	AccessLevelPermissionsManagement AccessLevel = "Permissions management"
)

// AccessLevels lists every access level in the order AWS documents them
var AccessLevels = []AccessLevel{
	AccessLevelList,
	AccessLevelRead,
	AccessLevelTagging,
	AccessLevelWrite,
	AccessLevelPermissionsManagement,
}

// Valid reports whether the level is one of the known access levels
func (l AccessLevel) Valid() bool {
	for _, known := range AccessLevels {
		if l == known {
			return true
		}
	}
	return false
}

// Effect is the effect of a policy statement
type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

// Severity represents how serious a lint finding is
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// LogLevel represents log levels
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)
