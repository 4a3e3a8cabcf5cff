package conv

// Api selects which generated surface a descriptor renders for.
type Api int

const (
	// ApiC renders the original C spelling, verbatim from the dump.
	ApiC Api = iota + 1
	// ApiCTypes renders the low-level ctypes surface that mirrors C
	// layout exactly.
	ApiCTypes
	// ApiPython renders the high-level pythonic surface.
	ApiPython
)

func (api Api) String() string {
	switch api {
	case ApiC:
		return "c"
	case ApiCTypes:
		return "ctypes"
	case ApiPython:
		return "python"
	}
	return "unknown"
}

// ctypes symbols shared by several variants.
const (
	cInt      = "c_int"
	cFuncType = "CFUNCTYPE"
	cPointer  = "POINTER"
)
