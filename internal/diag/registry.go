package diag

// registry maps diagnostic codes to their short messages.
//
// W1xx: widget configuration
var registry = map[string]string{
	"W101": "group switched between controlled and uncontrolled",
	"W102": "controlled group also supplies a default index",
	"W103": "controlled index is not a valid ordinal",
	"W104": "group is missing an accessible label",
}
