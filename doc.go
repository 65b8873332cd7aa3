// Package logcontent logs values conditionally, choosing what to render
// from the shape of the value and the severity being logged at.
//
// A Result logs its error at Error/Warn and its value at Info/Debug/Trace.
// An Option logs "None" at Error/Warn when absent and its value at
// Info/Debug/Trace when present. Every other combination is silent, so a
// value can be chained through several severities and only the relevant
// line reaches the sink:
//
//	svc := &logcontent.Service{WorkingDir: wd, LoggingConfig: cfg}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	policy := logcontent.NewResultPolicy(logcontent.Sprint[int](), logcontent.ErrorText())
//	n := logcontent.Log(svc, policy, logcontent.ResultOf(strconv.Atoi(s))).
//		Info("Successfully parsed").
//		Error("Failed to parse str").
//		Value()
//
// Renderers turn payloads into strings and may vary detail by severity;
// policies decide per (variant, severity) whether to render at all. New
// shapes plug in by implementing Policy or Content. Emission is delegated
// to a Sink: the zerolog backed Service in this package, or one of the
// adapters in the sinks sub-package.
package logcontent
