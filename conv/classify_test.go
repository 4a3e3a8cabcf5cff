package conv_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/xrbinds/pyxrgen/ast"
	"github.com/xrbinds/pyxrgen/conv"
)

func classify(t *testing.T, ref *ast.TypeRef) conv.Type {
	t.Helper()
	typ, err := conv.NewClassifier(nil).Classify(ref)
	if err != nil {
		t.Fatalf("Classify(%q): %v", ref.Spelling, err)
	}
	return typ
}

func intRef() *ast.TypeRef {
	return &ast.TypeRef{Kind: ast.Int, Spelling: "int"}
}

func uint32Ref() *ast.TypeRef {
	return &ast.TypeRef{
		Kind:     ast.Typedef,
		Spelling: "uint32_t",
		Decl: &ast.Decl{
			Spelling:   "uint32_t",
			Underlying: &ast.TypeRef{Kind: ast.UInt, Spelling: "unsigned int"},
		},
	}
}

func instanceRef() *ast.TypeRef {
	return &ast.TypeRef{
		Kind:     ast.Record,
		Spelling: "XrInstance",
		Decl:     &ast.Decl{Spelling: "XrInstance"},
	}
}

func TestClassifyVariants(t *testing.T) {
	testCases := []struct {
		name     string
		ref      *ast.TypeRef
		variant  conv.Type
		c        string
		ctypes   string
		python   string
		deps     []string // UsedCTypes(ApiCTypes), sorted
	}{
		{
			name:    "char",
			ref:     &ast.TypeRef{Kind: ast.CharS, Spelling: "char"},
			variant: &conv.PrimitiveType{},
			c:       "char", ctypes: "c_char", python: "str",
			deps: []string{"c_char"},
		},
		{
			name:    "unsigned char",
			ref:     &ast.TypeRef{Kind: ast.UChar, Spelling: "unsigned char"},
			variant: &conv.PrimitiveType{},
			c:       "unsigned char", ctypes: "c_uchar", python: "str",
			deps: []string{"c_uchar"},
		},
		{
			name:    "float",
			ref:     &ast.TypeRef{Kind: ast.Float, Spelling: "float"},
			variant: &conv.PrimitiveType{},
			c:       "float", ctypes: "c_float", python: "float",
			deps: []string{"c_float"},
		},
		{
			name:    "int",
			ref:     intRef(),
			variant: &conv.IntegerType{},
			c:       "int", ctypes: "c_int", python: "int",
			deps: []string{"c_int"},
		},
		{
			name:    "unsigned long long",
			ref:     &ast.TypeRef{Kind: ast.ULongLong, Spelling: "unsigned long long"},
			variant: &conv.IntegerType{},
			c:       "unsigned long long", ctypes: "c_ulonglong", python: "int",
			deps: []string{"c_ulonglong"},
		},
		{
			name:    "void",
			ref:     &ast.TypeRef{Kind: ast.Void, Spelling: "void"},
			variant: &conv.VoidType{},
			c:       "void", ctypes: "None", python: "None",
			deps: []string{},
		},
		{
			name: "enum",
			ref: &ast.TypeRef{
				Kind:     ast.Enum,
				Spelling: "XrResult",
				Decl:     &ast.Decl{Spelling: "XrResult"},
			},
			variant: &conv.EnumType{},
			c:       "XrResult", ctypes: "c_int", python: "c_int",
			deps: []string{"c_int"},
		},
		{
			name:    "record",
			ref:     instanceRef(),
			variant: &conv.RecordType{},
			c:       "XrInstance", ctypes: "Instance", python: "Instance",
			deps: []string{},
		},
		{
			name: "pointer to record",
			ref: &ast.TypeRef{
				Kind:     ast.Pointer,
				Spelling: "XrInstance *",
				Pointee:  instanceRef(),
			},
			variant: &conv.PointerType{},
			c:       "XrInstance *", ctypes: "POINTER(Instance)", python: "POINTER(Instance)",
			deps: []string{"POINTER"},
		},
		{
			name: "char pointer",
			ref: &ast.TypeRef{
				Kind:     ast.Pointer,
				Spelling: "const char *",
				Pointee:  &ast.TypeRef{Kind: ast.CharS, Spelling: "const char"},
			},
			variant: &conv.PrimitiveType{},
			c:       "const char *", ctypes: "c_char_p", python: "str",
			deps: []string{"c_char_p"},
		},
		{
			name: "void pointer",
			ref: &ast.TypeRef{
				Kind:     ast.Pointer,
				Spelling: "void *",
				Pointee:  &ast.TypeRef{Kind: ast.Void, Spelling: "void"},
			},
			variant: &conv.PrimitiveType{},
			c:       "void *", ctypes: "c_void_p", python: "None",
			deps: []string{"c_void_p"},
		},
		{
			name:    "fixed-width typedef",
			ref:     uint32Ref(),
			variant: &conv.IntegerType{},
			c:       "uint32_t", ctypes: "c_uint32", python: "int",
			deps: []string{"c_uint32"},
		},
		{
			name: "const fixed-width typedef",
			ref: &ast.TypeRef{
				Kind:     ast.Typedef,
				Spelling: "const int32_t",
				Decl: &ast.Decl{
					Spelling:   "int32_t",
					Underlying: &ast.TypeRef{Kind: ast.Int, Spelling: "int"},
				},
			},
			variant: &conv.IntegerType{},
			c:       "const int32_t", ctypes: "c_int32", python: "int",
			deps: []string{"c_int32"},
		},
		{
			name: "project typedef",
			ref: &ast.TypeRef{
				Kind:     ast.Typedef,
				Spelling: "XrVersion",
				Decl: &ast.Decl{
					Spelling: "XrVersion",
					Underlying: &ast.TypeRef{
						Kind:     ast.Typedef,
						Spelling: "uint64_t",
						Decl: &ast.Decl{
							Spelling:   "uint64_t",
							Underlying: &ast.TypeRef{Kind: ast.ULongLong, Spelling: "unsigned long long"},
						},
					},
				},
			},
			variant: &conv.TypedefType{},
			c:       "XrVersion", ctypes: "Version", python: "Version",
			deps: []string{},
		},
		{
			name: "elaborated record",
			ref: &ast.TypeRef{
				Kind:     ast.Elaborated,
				Spelling: "struct XrInstance",
				Named:    instanceRef(),
			},
			variant: &conv.RecordType{},
			c:       "XrInstance", ctypes: "Instance", python: "Instance",
			deps: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typ := classify(t, tc.ref)
			if reflect.TypeOf(typ) != reflect.TypeOf(tc.variant) {
				t.Fatalf("variant = %T, expect %T", typ, tc.variant)
			}
			if got := typ.Name(conv.ApiC); got != tc.c {
				t.Errorf("Name(ApiC) = %q, expect %q", got, tc.c)
			}
			if got := typ.Name(conv.ApiCTypes); got != tc.ctypes {
				t.Errorf("Name(ApiCTypes) = %q, expect %q", got, tc.ctypes)
			}
			if got := typ.Name(conv.ApiPython); got != tc.python {
				t.Errorf("Name(ApiPython) = %q, expect %q", got, tc.python)
			}
			if got := typ.UsedCTypes(conv.ApiCTypes).Sorted(); !reflect.DeepEqual(got, tc.deps) {
				t.Errorf("UsedCTypes(ApiCTypes) = %v, expect %v", got, tc.deps)
			}
			if got := typ.UsedCTypes(conv.ApiC); len(got) != 0 {
				t.Errorf("UsedCTypes(ApiC) = %v, expect empty", got)
			}
			if typ.UsedCTypes(conv.ApiCTypes).Contains("") {
				t.Error("dependency set contains the empty symbol")
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	refs := func() []*ast.TypeRef {
		return []*ast.TypeRef{
			intRef(),
			uint32Ref(),
			instanceRef(),
			{Kind: ast.ConstantArray, Spelling: "int[4]", Count: 4, Elem: intRef()},
		}
	}
	apis := []conv.Api{conv.ApiC, conv.ApiCTypes, conv.ApiPython}
	first, second := refs(), refs()
	for i := range first {
		a := classify(t, first[i])
		b := classify(t, second[i])
		for _, api := range apis {
			if a.Name(api) != b.Name(api) {
				t.Errorf("%q: Name(%v) differs between identical nodes", first[i].Spelling, api)
			}
			if !reflect.DeepEqual(a.UsedCTypes(api), b.UsedCTypes(api)) {
				t.Errorf("%q: UsedCTypes(%v) differs between identical nodes", first[i].Spelling, api)
			}
		}
	}
}

func TestClassifyUnsupportedKind(t *testing.T) {
	// a bare function prototype only ever appears behind a pointer
	proto := &ast.TypeRef{Kind: ast.FunctionProto, Spelling: "void (void)"}
	_, err := conv.NewClassifier(nil).Classify(proto)
	if !errors.Is(err, conv.ErrUnsupportedKind) {
		t.Fatalf("err = %v, expect ErrUnsupportedKind", err)
	}
}

func TestClassifyBadShape(t *testing.T) {
	testCases := []struct {
		name string
		ref  *ast.TypeRef
	}{
		{"nil node", nil},
		{"pointer without pointee", &ast.TypeRef{Kind: ast.Pointer, Spelling: "int *"}},
		{"array without element", &ast.TypeRef{Kind: ast.ConstantArray, Spelling: "int[4]", Count: 4}},
		{"array with negative count", &ast.TypeRef{
			Kind: ast.ConstantArray, Spelling: "int[-1]", Count: -1, Elem: intRef(),
		}},
		{"record without declaration", &ast.TypeRef{Kind: ast.Record, Spelling: "XrInstance"}},
		{"typedef without underlying", &ast.TypeRef{
			Kind: ast.Typedef, Spelling: "XrVersion", Decl: &ast.Decl{Spelling: "XrVersion"},
		}},
		{"elaborated without named type", &ast.TypeRef{Kind: ast.Elaborated, Spelling: "struct XrInstance"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typ, err := conv.NewClassifier(nil).Classify(tc.ref)
			if !errors.Is(err, conv.ErrBadShape) {
				t.Fatalf("err = %v, expect ErrBadShape", err)
			}
			if typ != nil {
				t.Fatal("expect no descriptor on defect")
			}
		})
	}
}

func TestCTypesNameForSpelling(t *testing.T) {
	testCases := []struct {
		spelling string
		expect   string
	}{
		{"uint32_t", "c_uint32"},
		{"int8_t", "c_int8"},
		{"const int64_t", "c_int64"},
		{"uint16_t", "c_uint16"},
		{"XrVersion", ""},
		{"size_t", ""},
		{"Uint32_t", ""},
		{"const const uint32_t", ""},
	}
	for _, tc := range testCases {
		if got := conv.CTypesNameForSpelling(tc.spelling); got != tc.expect {
			t.Errorf("CTypesNameForSpelling(%q) = %q, expect %q", tc.spelling, got, tc.expect)
		}
	}
}
