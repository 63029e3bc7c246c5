package debug

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateCheckAgreesWithFmt(t *testing.T) {
	x := 1
	testCases := []struct {
		format string
		args   []interface{}
	}{
		{"%d", []interface{}{1}},
		{"%[2]d %[1]d", []interface{}{1, 2}},
		{"%[3]d", []interface{}{1}},
		{"%[1]d %d", []interface{}{1}},
		{"%[1]d", []interface{}{1, 2}},
		{"%[2]*[1]d", []interface{}{12, 5}},
		{"%[2]2d", []interface{}{1, 2}},
		{"%[x]d", []interface{}{1}},
		{"%*d", []interface{}{5, 1}},
		{"%-*d", []interface{}{-5, 1}},
		{"%*d", []interface{}{"5", 1}},
		{"%*d", []interface{}{int64(2e6), 1}},
		{"%*d", nil},
		{"%.*f", []interface{}{2, 1.0}},
		{"%.*f", []interface{}{-1, 1.0}},
		{"%08.3f", []interface{}{3.14159}},
		{"%5.", []interface{}{1}},
		{"%", nil},
		{"%v %v", []interface{}{1}},
		{"x", []interface{}{1}},
		{"%t", []interface{}{true}},
		{"%d", []interface{}{true}},
		{"%e", []interface{}{1}},
		{"%q", []interface{}{'a'}},
		{"%U", []interface{}{0x1F600}},
		{"%z", []interface{}{1}},
		{"%x", []interface{}{[]byte{1, 2}}},
		{"%c", []interface{}{[]byte{65}}},
		{"%d", []interface{}{[]int{1}}},
		{"%d", []interface{}{[]string{"a"}}},
		{"%d", []interface{}{map[string]int{"a": 1}}},
		{"%s", []interface{}{struct{ A int }{1}}},
		{"%d", []interface{}{&struct{ A int }{1}}},
		{"%s", []interface{}{[]interface{}{"a", nil}}},
		{"%s", []interface{}{label("x")}},
		{"%d", []interface{}{label("x")}},
		{"%v", []interface{}{nil}},
		{"%d", []interface{}{nil}},
		{"%p", []interface{}{1}},
		{"%p", []interface{}{&x}},
		{"%d", []interface{}{&x}},
		{"%s", []interface{}{errors.New("boom")}},
		{"%w", []interface{}{errors.New("boom")}},
		{"%x", []interface{}{celsius(3)}},
		{"%#v", []interface{}{label("x")}},
		{"%%d %d", []interface{}{1}},
		{"%[5]%", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			flagged := strings.Contains(fmt.Sprintf(tc.format, tc.args...), "%!")
			tmpl := template{format: tc.format, args: tc.args}
			require.Equal(t, !flagged, tmpl.check(), "%q %v", tc.format, tc.args)
		})
	}
}

func TestTemplateGuard(t *testing.T) {
	args := []interface{}{3, label("a"), panicky{}, 4}
	tmpl := template{format: "%*s %s %d", args: args}
	require.True(t, tmpl.check())

	var failed bool
	guarded := tmpl.guard(&failed)
	require.Equal(t, 3, guarded[0])
	require.IsType(t, guardedArg{}, guarded[1])
	require.IsType(t, guardedArg{}, guarded[2])
	require.Equal(t, 4, guarded[3])
	require.Equal(t, label("a"), args[1], "operands are not modified")

	_ = fmt.Sprintf("%*s %s %d", guarded...)
	require.True(t, failed)
}
