package erroz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	class := MustDefine(&Definition{Name: "NotFound", Template: "%resource not found", StatusCode: Int(404)})
	e := class.New(Data{"resource": "User"})

	require.Equal(t, "NotFound: User not found", e.Error())

	var err error = e
	require.EqualError(t, err, "NotFound: User not found")
}

func TestError_Error_NoName(t *testing.T) {
	e := &Error{Message: "bare"}
	require.Equal(t, "bare", e.Error())
	require.Empty(t, e.Stack())
}

func TestError_Format(t *testing.T) {
	class := MustDefine(&Definition{Name: "TestError", Message: "There was an error"})
	e := class.New(nil)

	require.Equal(t, "TestError: There was an error", fmt.Sprintf("%v", e))
	require.Equal(t, "TestError: There was an error", fmt.Sprintf("%s", e))
	require.Equal(t, `"TestError: There was an error"`, fmt.Sprintf("%q", e))

	verbose := fmt.Sprintf("%+v", e)
	require.Equal(t, e.Stack(), verbose)
	require.True(t, strings.HasPrefix(verbose, "TestError: There was an error\n    at "))
	require.Contains(t, verbose, "TestError_Format")
}

func TestError_JSend(t *testing.T) {
	class := MustDefine(&Definition{Name: "NotFound", Template: "%resource not found", StatusCode: Int(404)})
	e := class.New(Data{"resource": "User"})

	resp := e.JSend()
	require.Equal(t, Response{
		Status:  StatusFail,
		Code:    "not-found",
		Message: "User not found",
		Data:    Data{"resource": "User"},
	}, resp)
}

func TestError_JSend_IncludeStack(t *testing.T) {
	class := MustDefine(&Definition{Name: "NotFound", Template: "%resource not found", StatusCode: Int(404)},
		WithIncludeStack(true))
	e := class.New(Data{"resource": "User"})

	resp := e.JSend()
	require.Equal(t, e.Stack(), resp.Data["stack"])
	require.Equal(t, "User", resp.Data["resource"])

	// The instance data is left untouched.
	require.Equal(t, Data{"resource": "User"}, e.Data)
}

func TestError_JSend_NilData(t *testing.T) {
	e := &Error{Name: "X", Code: "x", Status: StatusError, Message: "m"}
	require.Equal(t, Data{}, e.JSend().Data)
}
