package debug

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Verbs fmt accepts per operand kind.
const (
	boolVerbs    = "tv"
	intVerbs     = "vdboOxXcqU"
	floatVerbs   = "vbgGxXfFeE"
	stringVerbs  = "vsxXq"
	bytesVerbs   = "sqxX"
	pointerVerbs = "vpbodxX"
	methodVerbs  = "vsxXq"
)

// maxArgNum is fmt's bound on widths, precisions and argument indexes.
const maxArgNum = 1e6

// template checks a printf template against its operands the way
// fmt.Fprintf parses them, without rendering. Problems fmt would report
// inline (missing or extra operands, bad verb, width, precision or
// index, no verb) make check fail.
type template struct {
	format string
	args   []interface{}

	argNum    int
	reordered bool
	goodIndex bool

	methods []int        // operands rendered through their own methods
	starred map[int]bool // operands consumed as * width or precision
}

func (t *template) check() bool {
	end := len(t.format)
	for i := 0; i < end; {
		for i < end && t.format[i] != '%' {
			i++
		}
		if i >= end {
			break
		}
		i++
		t.goodIndex = true

		sharp := false
	flags:
		for ; i < end; i++ {
			switch t.format[i] {
			case '#':
				sharp = true
			case '0', '+', '-', ' ':
			default:
				break flags
			}
		}

		var afterIndex, present bool
		i, afterIndex = t.argIndex(i)
		if i < end && t.format[i] == '*' {
			i++
			if _, ok := t.intArg(); !ok {
				return false
			}
			afterIndex = false
		} else {
			if _, present, i = parseNum(t.format, i, end); afterIndex && present {
				t.goodIndex = false
			}
		}

		if i+1 < end && t.format[i] == '.' {
			i++
			if afterIndex {
				t.goodIndex = false
			}
			i, afterIndex = t.argIndex(i)
			if i < end && t.format[i] == '*' {
				i++
				if prec, ok := t.intArg(); !ok || prec < 0 {
					return false
				}
				afterIndex = false
			} else {
				_, _, i = parseNum(t.format, i, end)
			}
		}

		if !afterIndex {
			i, _ = t.argIndex(i)
		}
		if i >= end {
			return false
		}

		verb, size := rune(t.format[i]), 1
		if verb >= utf8.RuneSelf {
			verb, size = utf8.DecodeRuneInString(t.format[i:])
		}
		i += size

		switch {
		case verb == '%':
			// literal, no operand
		case !t.goodIndex, t.argNum >= len(t.args), verb == 'w':
			return false
		default:
			arg := t.args[t.argNum]
			if !argAccepts(arg, verb) {
				return false
			}
			if usesMethods(arg, verb, sharp && verb == 'v') {
				t.methods = append(t.methods, t.argNum)
			}
			t.argNum++
		}
	}
	return t.reordered || t.argNum >= len(t.args)
}

// argIndex parses an explicit [n] operand index at i.
func (t *template) argIndex(i int) (int, bool) {
	if i >= len(t.format) || t.format[i] != '[' {
		return i, false
	}
	t.reordered = true
	index, width, ok := parseArgIndex(t.format[i:])
	if ok && index >= 0 && index < len(t.args) {
		t.argNum = index
		return i + width, true
	}
	t.goodIndex = false
	return i + width, ok
}

// intArg consumes a * operand.
func (t *template) intArg() (int, bool) {
	if t.argNum >= len(t.args) {
		return 0, false
	}
	if t.starred == nil {
		t.starred = make(map[int]bool)
	}
	t.starred[t.argNum] = true
	v := reflect.ValueOf(t.args[t.argNum])
	t.argNum++

	var n int64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > maxArgNum {
			return 0, false
		}
		n = int64(u)
	default:
		return 0, false
	}
	if n > maxArgNum || n < -maxArgNum {
		return 0, false
	}
	return int(n), true
}

// guard wraps the operands rendered through methods so a panicking
// method sets failed instead of being printed inline by fmt.
func (t *template) guard(failed *bool) []interface{} {
	if len(t.methods) == 0 {
		return t.args
	}
	args := append([]interface{}(nil), t.args...)
	for _, i := range t.methods {
		if !t.starred[i] {
			args[i] = guardedArg{arg: args[i], failed: failed}
		}
	}
	return args
}

func parseArgIndex(s string) (index, width int, ok bool) {
	if len(s) < 3 {
		return 0, 1, false
	}
	for i := 1; i < len(s); i++ {
		if s[i] == ']' {
			n, present, next := parseNum(s, 1, i)
			if !present || next != i {
				return 0, i + 1, false
			}
			return n - 1, i + 1, true
		}
	}
	return 0, 1, false
}

func parseNum(s string, start, end int) (num int, present bool, next int) {
	if start >= end {
		return 0, false, end
	}
	for next = start; next < end && '0' <= s[next] && s[next] <= '9'; next++ {
		if num > maxArgNum || num < -maxArgNum {
			return 0, false, end
		}
		num = num*10 + int(s[next]-'0')
		present = true
	}
	return
}

func argAccepts(arg interface{}, verb rune) bool {
	if arg == nil {
		return verb == 'T' || verb == 'v'
	}
	switch verb {
	case 'T', 'v':
		return true
	case 'p':
		switch reflect.ValueOf(arg).Kind() {
		case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
			return true
		}
		return false
	}
	v, ok := arg.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(arg)
	}
	return valueAccepts(v, verb, 0)
}

func valueAccepts(v reflect.Value, verb rune, depth int) bool {
	if v.IsValid() && v.CanInterface() && methodAccepts(v.Interface(), verb) {
		return true
	}
	switch v.Kind() {
	case reflect.Invalid:
		return depth == 0
	case reflect.Bool:
		return strings.ContainsRune(boolVerbs, verb)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strings.ContainsRune(intVerbs, verb)
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return strings.ContainsRune(floatVerbs, verb)
	case reflect.String:
		return strings.ContainsRune(stringVerbs, verb)
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if !valueAccepts(iter.Key(), verb, depth+1) || !valueAccepts(iter.Value(), verb, depth+1) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !valueAccepts(v.Field(i), verb, depth+1) {
				return false
			}
		}
		return true
	case reflect.Interface:
		e := v.Elem()
		return !e.IsValid() || valueAccepts(e, verb, depth+1)
	case reflect.Array, reflect.Slice:
		if strings.ContainsRune(bytesVerbs, verb) && v.Type().Elem().Kind() == reflect.Uint8 {
			return true
		}
		for i := 0; i < v.Len(); i++ {
			if !valueAccepts(v.Index(i), verb, depth+1) {
				return false
			}
		}
		return true
	case reflect.Ptr:
		if depth == 0 && !v.IsNil() {
			switch e := v.Elem(); e.Kind() {
			case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map:
				return valueAccepts(e, verb, depth+1)
			}
		}
		return strings.ContainsRune(pointerVerbs, verb)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return strings.ContainsRune(pointerVerbs, verb)
	}
	return false
}

func methodAccepts(arg interface{}, verb rune) bool {
	if _, ok := arg.(fmt.Formatter); ok {
		return true
	}
	if strings.ContainsRune(methodVerbs, verb) {
		switch arg.(type) {
		case error, fmt.Stringer:
			return true
		}
	}
	return false
}

// usesMethods reports whether fmt renders the top level operand through
// Format, GoString, Error or String.
func usesMethods(arg interface{}, verb rune, sharpV bool) bool {
	if arg == nil || verb == 'T' || verb == 'p' {
		return false
	}
	if _, ok := arg.(reflect.Value); ok {
		return false
	}
	if _, ok := arg.(fmt.Formatter); ok {
		return true
	}
	if sharpV {
		_, ok := arg.(fmt.GoStringer)
		return ok
	}
	if strings.ContainsRune(methodVerbs, verb) {
		switch arg.(type) {
		case error, fmt.Stringer:
			return true
		}
	}
	return false
}

// guardedArg renders an operand through its methods like fmt does, but
// reports a panic instead of printing it.
type guardedArg struct {
	arg    interface{}
	failed *bool
}

// Format implements fmt.Formatter.
func (g guardedArg) Format(f fmt.State, verb rune) {
	defer func() {
		if recover() == nil {
			return
		}
		// fmt prints nil pointer receivers that panic as <nil>.
		if v := reflect.ValueOf(g.arg); v.Kind() == reflect.Ptr && v.IsNil() {
			io.WriteString(f, "<nil>")
			return
		}
		*g.failed = true
	}()
	switch arg := g.arg.(type) {
	case fmt.Formatter:
		arg.Format(f, verb)
	case fmt.GoStringer:
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, fmt.FormatString(f, 's'), arg.GoString())
			return
		}
		g.method(f, verb)
	default:
		g.method(f, verb)
	}
}

func (g guardedArg) method(f fmt.State, verb rune) {
	switch arg := g.arg.(type) {
	case error:
		fmt.Fprintf(f, fmt.FormatString(f, verb), arg.Error())
	case fmt.Stringer:
		fmt.Fprintf(f, fmt.FormatString(f, verb), arg.String())
	}
}
