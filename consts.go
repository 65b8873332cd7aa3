package logcontent

const (
	emptyString = ""

	// NoneText is emitted for an absent optional value.
	NoneText = "None"

	// separator joins the caller's message prefix and the rendered content.
	separator = ": "

	unrenderablePrefix = "value unrenderable: "
	nilText            = "<nil>"
	defaultFileName    = "content"
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgNilService    = "Logger service is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgWorkingDir    = "Working dir has not been set."
	errMsgAbsLogDir     = "RelLogFileDir must be a relative path."
	errMsgNoChannels    = "no logging channels enabled"
	errMsgUnknownLevel  = "Unknown log level."
	errMsgClosed        = "Logger service is closed."

	msgShutdownTimeout = "Logger shutdown timeout exceeded"
)
