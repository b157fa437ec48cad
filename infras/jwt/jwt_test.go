package jwt_test

import (
	"testing"

	"careerday/config"
	"careerday/infras/jwt"
	"careerday/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "careerday"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = 60

	return jwt.New(cfg)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := newService("s3cret")

	token, err := svc.GenerateToken("op-1", "hr@acme.example", constant.RoleCompany, "c-acme")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "op-1", claims.UserID)
	assert.Equal(t, constant.RoleCompany, claims.Role)
	assert.Equal(t, "c-acme", claims.CompanyID)
	assert.Equal(t, "careerday", claims.Issuer)
}

func TestJWT_ValidateRejects(t *testing.T) {
	token, err := newService("s3cret").GenerateToken("op-1", "hr@acme.example", constant.RoleCompany, "c-acme")
	require.NoError(t, err)

	_, err = newService("other").ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = newService("s3cret").ValidateToken("garbage")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = newService("").GenerateToken("op-1", "hr@acme.example", constant.RoleCompany, "")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrBearerFormat)
}
