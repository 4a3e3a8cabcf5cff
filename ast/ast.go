package ast

import (
	"encoding/json"
	"fmt"
)

// TypeKind is the structural kind tag the clang-side dump tool records for
// every type node. The set is closed: it covers exactly the kinds the C
// APIs we bind actually use.
type TypeKind int

const (
	Invalid TypeKind = iota
	Void
	CharS
	UChar
	Float
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Pointer
	ConstantArray
	Record
	Enum
	Typedef
	Elaborated
	FunctionProto
)

var kindNames = map[TypeKind]string{
	Void:          "Void",
	CharS:         "Char_S",
	UChar:         "UChar",
	Float:         "Float",
	Short:         "Short",
	UShort:        "UShort",
	Int:           "Int",
	UInt:          "UInt",
	Long:          "Long",
	ULong:         "ULong",
	LongLong:      "LongLong",
	ULongLong:     "ULongLong",
	Pointer:       "Pointer",
	ConstantArray: "ConstantArray",
	Record:        "Record",
	Enum:          "Enum",
	Typedef:       "Typedef",
	Elaborated:    "Elaborated",
	FunctionProto: "FunctionProto",
}

var kindValues = make(map[string]TypeKind, len(kindNames))

func init() {
	for k, name := range kindNames {
		kindValues[name] = k
	}
}

func (k TypeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// Kinds serialize as their clang-style names so a dump stays reviewable.
func (k TypeKind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown type kind %d", int(k))
	}
	return json.Marshal(name)
}

func (k *TypeKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := kindValues[name]
	if !ok {
		return fmt.Errorf("unknown type kind %q", name)
	}
	*k = kind
	return nil
}

// TypeRef is one type node of the dump. Only the fields matching Kind are
// populated; the rest stay nil. The conversion core reads these nodes and
// never mutates them.
type TypeRef struct {
	Kind     TypeKind   `json:"kind"`
	Spelling string     `json:"spelling"`
	Pointee  *TypeRef   `json:"pointee,omitempty"` // Pointer
	Elem     *TypeRef   `json:"elem,omitempty"`    // ConstantArray
	Count    int64      `json:"count,omitempty"`   // ConstantArray
	Named    *TypeRef   `json:"named,omitempty"`   // Elaborated
	Decl     *Decl      `json:"decl,omitempty"`    // Record, Enum, Typedef
	Ret      *TypeRef   `json:"ret,omitempty"`     // FunctionProto
	Params   []*TypeRef `json:"params,omitempty"`  // FunctionProto
}

// Decl is the declaration the dump tool resolved for a named type.
type Decl struct {
	Spelling   string   `json:"spelling"`
	Underlying *TypeRef `json:"underlying,omitempty"` // Typedef
}

// Entry is one declaration occurrence the external walker saw, paired with
// the type node it carries.
type Entry struct {
	Name string   `json:"name"`
	Type *TypeRef `json:"type"`
}

// Dump is the whole type dump of one translation unit.
type Dump struct {
	Entries []*Entry `json:"types"`
}

// UnmarshalDump decodes a type dump produced by the clang-side tool.
func UnmarshalDump(data []byte) (*Dump, error) {
	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("unmarshal type dump: %w", err)
	}
	return &dump, nil
}
