package erroz

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCodeOf(t *testing.T) {
	class := MustDefine(&Definition{Name: "Teapot", Message: "I'm a teapot", StatusCode: Int(418)})
	e := class.New(nil)

	require.Equal(t, 418, StatusCodeOf(e))
	require.Equal(t, 418, StatusCodeOf(fmt.Errorf("brew: %w", e)))
	require.Equal(t, 500, StatusCodeOf(stderrors.New("plain")))
	require.Equal(t, 500, StatusCodeOf(nil))
}

func TestStatusOf(t *testing.T) {
	class := MustDefine(&Definition{Name: "Teapot", Message: "I'm a teapot", StatusCode: Int(418)})

	require.Equal(t, StatusFail, StatusOf(class.New(nil)))
	require.Equal(t, StatusFail, StatusOf(fmt.Errorf("brew: %w", class.New(nil))))
	require.Equal(t, StatusError, StatusOf(stderrors.New("plain")))
	require.Equal(t, StatusError, StatusOf(nil))
}
