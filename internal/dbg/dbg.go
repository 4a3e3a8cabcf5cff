package dbg

type dbgFlags = int

const (
	DbgFlagLog dbgFlags = 1 << iota
	DbgFlagError
	DbgFlagAll = DbgFlagLog | DbgFlagError
)

var flags dbgFlags

func SetDebug(dbgFlags dbgFlags) {
	flags = dbgFlags
}

func GetDebugLog() bool {
	return flags&DbgFlagLog != 0
}

func GetDebugError() bool {
	return flags&DbgFlagError != 0
}
