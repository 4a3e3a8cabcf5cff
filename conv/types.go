package conv

import (
	"fmt"
	"strings"

	"github.com/xrbinds/pyxrgen/ast"
)

// Type is one classified C type. A descriptor owns its recursively
// classified children, never changes after construction, and renders
// without touching the dump again.
type Type interface {
	// Ref returns the dump node this descriptor was built from.
	Ref() *ast.TypeRef
	// Name renders the type for the given surface.
	Name(api Api) string
	// UsedCTypes reports the ctypes symbols needed to spell the type on
	// the given surface. Always empty for ApiC.
	UsedCTypes(api Api) CTypeSet
}

type typeBase struct {
	ref *ast.TypeRef
}

func (t *typeBase) Ref() *ast.TypeRef { return t.ref }

// ArrayType is a constant-size C array.
type ArrayType struct {
	typeBase
	Elem  Type
	Count int
}

func (t *ArrayType) Name(api Api) string {
	if api == ApiC {
		return fmt.Sprintf("%s[%d]", t.Elem.Name(api), t.Count)
	}
	return fmt.Sprintf("(%s * %d)", t.Elem.Name(api), t.Count)
}

func (t *ArrayType) UsedCTypes(api Api) CTypeSet {
	if api == ApiC {
		return NewCTypeSet()
	}
	return t.Elem.UsedCTypes(api)
}

// EnumType collapses every enum to a plain 32-bit signed integer on the
// generated surfaces; member identity is not resolved here.
type EnumType struct {
	typeBase
}

func (t *EnumType) Name(api Api) string {
	if api == ApiC {
		return t.ref.Spelling
	}
	return cInt
}

func (t *EnumType) UsedCTypes(api Api) CTypeSet {
	if api == ApiC {
		return NewCTypeSet()
	}
	return NewCTypeSet(cInt)
}

// FunctionPointerType is a pointer to a function prototype, rendered as a
// CFUNCTYPE adapter. Result and argument types inside the adapter are
// always spelled at the ctypes surface, whichever surface the adapter
// itself is rendered for.
type FunctionPointerType struct {
	typeBase
	Ret  Type
	Args []Type
}

func (t *FunctionPointerType) Name(api Api) string {
	if api == ApiC {
		return t.ref.Spelling
	}
	parts := make([]string, 0, len(t.Args)+1)
	parts = append(parts, t.Ret.Name(ApiCTypes))
	for _, arg := range t.Args {
		parts = append(parts, arg.Name(ApiCTypes))
	}
	return fmt.Sprintf("CFUNCTYPE(%s)", strings.Join(parts, ", "))
}

func (t *FunctionPointerType) UsedCTypes(api Api) CTypeSet {
	if api == ApiC {
		return NewCTypeSet()
	}
	set := NewCTypeSet(cFuncType)
	set.Merge(t.Ret.UsedCTypes(ApiCTypes))
	for _, arg := range t.Args {
		set.Merge(arg.UsedCTypes(ApiCTypes))
	}
	return set
}

// IntegerType is a fixed-size integer, either a native integer kind or a
// typedef that resolved to a fixed-width alias.
type IntegerType struct {
	typeBase
	ctypesName string
}

// CTypesName returns the resolved ctypes integer name, like "c_uint32".
func (t *IntegerType) CTypesName() string { return t.ctypesName }

func (t *IntegerType) Name(api Api) string {
	switch api {
	case ApiC:
		return t.ref.Spelling
	case ApiPython:
		return "int"
	default:
		return t.ctypesName
	}
}

func (t *IntegerType) UsedCTypes(api Api) CTypeSet {
	if api == ApiCTypes {
		return NewCTypeSet(t.ctypesName)
	}
	return NewCTypeSet()
}

// PointerType is a pointer to anything except void, char and function
// prototypes, which classify as their own variants.
type PointerType struct {
	typeBase
	Pointee Type
}

func (t *PointerType) Name(api Api) string {
	if api == ApiC {
		return t.ref.Spelling
	}
	return fmt.Sprintf("POINTER(%s)", t.Pointee.Name(api))
}

func (t *PointerType) UsedCTypes(api Api) CTypeSet {
	if api == ApiC {
		return NewCTypeSet()
	}
	set := t.Pointee.UsedCTypes(api)
	set.Add(cPointer)
	return set
}

// PrimitiveType carries a fixed ctypes name and a fixed pythonic name,
// supplied by the classifier for the char, float and special pointer
// cases.
type PrimitiveType struct {
	typeBase
	ctypesName string
	pyName     string
}

func (t *PrimitiveType) Name(api Api) string {
	switch api {
	case ApiC:
		return t.ref.Spelling
	case ApiPython:
		return t.pyName
	default:
		return t.ctypesName
	}
}

func (t *PrimitiveType) UsedCTypes(api Api) CTypeSet {
	if api == ApiC {
		return NewCTypeSet()
	}
	return NewCTypeSet(t.ctypesName)
}

// RecordType is a struct or union. The generated record binding is shared
// between the ctypes and pythonic surfaces, so both render the same
// derived name, and nothing needs importing.
type RecordType struct {
	typeBase
	capiName string
	pyName   string
}

// CAPIName returns the qualifier-stripped declaration name.
func (t *RecordType) CAPIName() string { return t.capiName }

func (t *RecordType) Name(api Api) string {
	if api == ApiC {
		return t.ref.Spelling
	}
	return t.pyName
}

func (t *RecordType) UsedCTypes(api Api) CTypeSet {
	return NewCTypeSet()
}

// TypedefType keeps the typedef identity as a distinct generated alias
// instead of collapsing to the underlying type's name.
type TypedefType struct {
	typeBase
	capiName   string
	pyName     string
	Underlying Type
}

// CAPIName returns the qualifier-stripped typedef name.
func (t *TypedefType) CAPIName() string { return t.capiName }

func (t *TypedefType) Name(api Api) string {
	if api == ApiC {
		return t.ref.Spelling
	}
	return t.pyName
}

func (t *TypedefType) UsedCTypes(api Api) CTypeSet {
	if api == ApiC {
		return NewCTypeSet()
	}
	if t.capiName != t.pyName {
		// A stripped prefix marks the alias as project-local: it is
		// generated alongside the records, nothing to import.
		return NewCTypeSet()
	}
	return NewCTypeSet(t.capiName)
}

// VoidType is the C void type.
type VoidType struct {
	typeBase
}

func (t *VoidType) Name(api Api) string {
	if api == ApiC {
		return "void"
	}
	return "None"
}

func (t *VoidType) UsedCTypes(api Api) CTypeSet {
	return NewCTypeSet()
}
