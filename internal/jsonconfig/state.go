package jsonconfig

// State is the terminal outcome of a single Ensure call.
type State int

const (
	// StateValid means the persisted file passed every check and was left untouched.
	StateValid State = iota
	// StateNoFile means the file was absent and the defaults were written.
	StateNoFile
	// StateCorrupt means the file did not hold a JSON object and was replaced.
	StateCorrupt
	// StateKeyMismatch means the top-level key sets differed and the file was replaced.
	StateKeyMismatch
	// StateTypeMismatch means a value kind differed and the file was replaced.
	StateTypeMismatch
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateNoFile:
		return "no-file"
	case StateCorrupt:
		return "corrupt"
	case StateKeyMismatch:
		return "key-mismatch"
	case StateTypeMismatch:
		return "type-mismatch"
	default:
		return "unknown"
	}
}

// Rewritten reports whether the state implies the defaults were written.
func (s State) Rewritten() bool {
	return s != StateValid
}
