package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithAuth(header string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken(ctxWithAuth("Bearer abc.def.ghi"))
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// 스킴 대소문자는 구분하지 않는다
	token, err = ExtractBearerToken(ctxWithAuth("bearer xyz"))
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)
}

func TestExtractBearerTokenErrors(t *testing.T) {
	_, err := ExtractBearerToken(ctxWithAuth(""))
	assert.ErrorIs(t, err, ErrMissingHeader)

	_, err = ExtractBearerToken(ctxWithAuth("Basic dXNlcjpwdw=="))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken(ctxWithAuth("Bearer   "))
	assert.ErrorIs(t, err, ErrEmptyToken)
}
