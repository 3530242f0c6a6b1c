package i18n

func init() {
	Register(NewCatalog("en-US", map[Code]string{
		"UNKNOWN":             "an unexpected error occurred",
		"UNINITIALIZED":       "{{if .entity}}{{.entity}}{{else}}session state{{end}} has not been initialized",
		"ALREADY_INITIALIZED": "{{if .entity}}{{.entity}}{{else}}session state{{end}} has already been initialized",
		"CONFLICT":            "the current session phase does not allow this operation",
		"NO_BATTLE":           "no battle has been triggered",
		"INVALID_INPUT":       "the supplied payload could not be decoded",
		"ENGINE_FAILURE":      "the game engine rejected the operation",
		"LOCK_FAILURE":        "internal synchronization failure",
	}))
}
