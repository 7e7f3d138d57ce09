package lumen

// DevMode enables development-time diagnostics. When true, widget usage
// errors (such as flipping a group between controlled and uncontrolled)
// are reported through the diagnostics sink. When false they are dropped.
//
// Set this at application startup:
//
//	lumen.DevMode = os.Getenv("LUMEN_DEV") == "1"
var DevMode = false
