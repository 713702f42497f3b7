package handler

import (
	"strings"

	"rewards-mediation-gateway/internal/adapter/http/middleware"
	"rewards-mediation-gateway/pkg/apperror"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// customParamPrefix marks query parameters forwarded to the backend.
const customParamPrefix = "custom_"

// customParamsFromQuery collects custom_<name>=value query parameters as name=value.
func customParamsFromQuery(c *gin.Context) map[string]string {
	var params map[string]string
	for key, values := range c.Request.URL.Query() {
		name := strings.TrimPrefix(key, customParamPrefix)
		if name == key || name == "" || len(values) == 0 {
			continue
		}
		if params == nil {
			params = make(map[string]string)
		}
		params[name] = values[0]
	}
	return params
}

// credentialsToken returns the authenticated credentials token or writes AUTH_001.
func credentialsToken(c *gin.Context) (string, bool) {
	token, ok := middleware.CredentialsToken(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return token, ok
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// bindOptionalJSON binds the body when one is sent.
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}
