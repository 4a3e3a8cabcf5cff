package conv

import (
	"errors"
	"fmt"
	"regexp"

	"fortio.org/safecast"

	"github.com/xrbinds/pyxrgen/ast"
	"github.com/xrbinds/pyxrgen/names"
)

var (
	// ErrUnsupportedKind reports a type kind with no classification rule.
	ErrUnsupportedKind = errors.New("unsupported type kind")
	// ErrBadShape reports a type node whose shape contradicts its kind;
	// it marks a dispatch or dump bug, never malformed user input.
	ErrBadShape = errors.New("type node shape contradicts its kind")
)

// ctypes names for the native fixed-size integer kinds.
var intKindNames = map[ast.TypeKind]string{
	ast.Int:       "c_int",
	ast.Long:      "c_long",
	ast.LongLong:  "c_longlong",
	ast.Short:     "c_short",
	ast.UInt:      "c_uint",
	ast.ULong:     "c_ulong",
	ast.ULongLong: "c_ulonglong",
	ast.UShort:    "c_ushort",
}

// Fixed-width aliases are always spelled as typedefs at the parser level,
// so they resolve by spelling, not by kind. Start-anchored only, matching
// the original resolver's behavior.
var fixedWidthRE = regexp.MustCompile(`^(?:const )?(u?int(?:8|16|32|64))_t`)

// CTypesNameForSpelling resolves a fixed-width alias spelling like
// "uint32_t", optionally const-qualified, to its ctypes name. It returns
// the empty string when the spelling is not a fixed-width alias.
func CTypesNameForSpelling(spelling string) string {
	m := fixedWidthRE.FindStringSubmatch(spelling)
	if m == nil {
		return ""
	}
	return "c_" + m[1]
}

// DefaultTrimPrefixes is the API name prefix assumed when no config is
// given.
var DefaultTrimPrefixes = []string{"Xr"}

// Config parameterizes classification for one API project.
type Config struct {
	// TrimPrefixes lists the API name prefixes stripped when deriving
	// high-level surface names.
	TrimPrefixes []string
}

// Classifier turns dump type nodes into descriptor trees. It holds no
// mutable state, so one classifier may serve any number of Classify calls,
// concurrently if the caller wants.
type Classifier struct {
	trimPrefixes []string
}

func NewClassifier(conf *Config) *Classifier {
	if conf == nil {
		return &Classifier{trimPrefixes: DefaultTrimPrefixes}
	}
	return &Classifier{trimPrefixes: conf.TrimPrefixes}
}

// Classify builds the descriptor tree for one type node, recursively
// classifying pointees, element types and argument/result types. Every
// call builds a fresh tree; structurally identical nodes produce
// independent but identical descriptors.
//
// A kind outside the dispatch table fails with ErrUnsupportedKind, a node
// whose shape contradicts its kind with ErrBadShape. No partial descriptor
// escapes on error.
func (c *Classifier) Classify(ref *ast.TypeRef) (Type, error) {
	if ref == nil {
		return nil, fmt.Errorf("%w: nil type node", ErrBadShape)
	}
	switch ref.Kind {
	case ast.CharS:
		return newPrimitive(ref, "c_char", "str"), nil
	case ast.ConstantArray:
		return c.newArray(ref)
	case ast.Elaborated:
		// "struct Foo" written with its keyword, or a qualifier wrapper:
		// unwrap one level.
		if ref.Named == nil {
			return nil, fmt.Errorf("%w: elaborated type %q has no named type", ErrBadShape, ref.Spelling)
		}
		return c.Classify(ref.Named)
	case ast.Enum:
		return &EnumType{typeBase{ref}}, nil
	case ast.Float:
		return newPrimitive(ref, "c_float", "float"), nil
	case ast.Short, ast.UShort, ast.Int, ast.UInt,
		ast.Long, ast.ULong, ast.LongLong, ast.ULongLong:
		return &IntegerType{typeBase{ref}, intKindNames[ref.Kind]}, nil
	case ast.Pointer:
		return c.classifyPointer(ref)
	case ast.Record:
		return c.newRecord(ref)
	case ast.Typedef:
		if name := CTypesNameForSpelling(ref.Spelling); name != "" {
			return &IntegerType{typeBase{ref}, name}, nil
		}
		return c.newTypedef(ref)
	case ast.UChar:
		return newPrimitive(ref, "c_uchar", "str"), nil
	case ast.Void:
		return &VoidType{typeBase{ref}}, nil
	}
	return nil, fmt.Errorf("%w: %v (%q)", ErrUnsupportedKind, ref.Kind, ref.Spelling)
}

func (c *Classifier) classifyPointer(ref *ast.TypeRef) (Type, error) {
	pt := ref.Pointee
	if pt == nil {
		return nil, fmt.Errorf("%w: pointer %q has no pointee", ErrBadShape, ref.Spelling)
	}
	switch pt.Kind {
	case ast.CharS:
		// Assumes every char* is a nul-terminated string. APIs that pass
		// raw byte buffers as char* will be mismapped.
		return newPrimitive(ref, "c_char_p", "str"), nil
	case ast.FunctionProto:
		return c.newFunctionPointer(ref)
	case ast.Void:
		return newPrimitive(ref, "c_void_p", "None"), nil
	}
	pointee, err := c.Classify(pt)
	if err != nil {
		return nil, err
	}
	return &PointerType{typeBase{ref}, pointee}, nil
}

func newPrimitive(ref *ast.TypeRef, ctypesName, pyName string) *PrimitiveType {
	return &PrimitiveType{typeBase{ref}, ctypesName, pyName}
}

func (c *Classifier) newArray(ref *ast.TypeRef) (Type, error) {
	if ref.Kind != ast.ConstantArray || ref.Elem == nil {
		return nil, fmt.Errorf("%w: %q is not a constant-size array", ErrBadShape, ref.Spelling)
	}
	if ref.Count < 0 {
		return nil, fmt.Errorf("%w: array %q has negative count %d", ErrBadShape, ref.Spelling, ref.Count)
	}
	count, err := safecast.Conv[int](ref.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: array %q count %d: %v", ErrBadShape, ref.Spelling, ref.Count, err)
	}
	elem, err := c.Classify(ref.Elem)
	if err != nil {
		return nil, err
	}
	return &ArrayType{typeBase{ref}, elem, count}, nil
}

func (c *Classifier) newFunctionPointer(ref *ast.TypeRef) (Type, error) {
	if ref.Kind != ast.Pointer || ref.Pointee == nil || ref.Pointee.Kind != ast.FunctionProto {
		return nil, fmt.Errorf("%w: %q is not a function pointer", ErrBadShape, ref.Spelling)
	}
	proto := ref.Pointee
	if proto.Ret == nil {
		return nil, fmt.Errorf("%w: function prototype %q has no result type", ErrBadShape, proto.Spelling)
	}
	ret, err := c.Classify(proto.Ret)
	if err != nil {
		return nil, err
	}
	args := make([]Type, len(proto.Params))
	for i, param := range proto.Params {
		args[i], err = c.Classify(param)
		if err != nil {
			return nil, err
		}
	}
	return &FunctionPointerType{typeBase{ref}, ret, args}, nil
}

func (c *Classifier) newRecord(ref *ast.TypeRef) (Type, error) {
	if ref.Kind != ast.Record || ref.Decl == nil {
		return nil, fmt.Errorf("%w: %q is not a record", ErrBadShape, ref.Spelling)
	}
	capiName := names.CAPIName(ref.Decl.Spelling)
	return &RecordType{typeBase{ref}, capiName, names.PyName(capiName, c.trimPrefixes)}, nil
}

func (c *Classifier) newTypedef(ref *ast.TypeRef) (Type, error) {
	if ref.Kind != ast.Typedef || ref.Decl == nil || ref.Decl.Underlying == nil {
		return nil, fmt.Errorf("%w: typedef %q has no underlying type", ErrBadShape, ref.Spelling)
	}
	underlying, err := c.Classify(ref.Decl.Underlying)
	if err != nil {
		return nil, err
	}
	capiName := names.CAPIName(ref.Spelling)
	return &TypedefType{typeBase{ref}, capiName, names.PyName(capiName, c.trimPrefixes), underlying}, nil
}
