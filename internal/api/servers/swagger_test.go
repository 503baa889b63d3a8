package servers

import (
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "Menu API", doc.Info.Title)
	for _, path := range []string{
		"/health",
		"/api/v1/orders",
		"/api/v1/nutrition",
		"/api/v1/nutrition/{labelId}",
		"/api/v1/sort/length",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestNewOrderVariantEnum(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	enum := doc.Components.Schemas["NewOrder"].Value.Properties["variant"].Value.Enum
	assert.ElementsMatch(t, []any{
		string(NewOrderVariantDefault),
		string(NewOrderVariantCommonConstructor),
		string(NewOrderVariantUrgentConstructor),
		string(NewOrderVariantUrgentFactory),
		string(NewOrderVariantCommonFactory),
	}, enum)
}

func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	pathParam := regexp.MustCompile(`\{(\w+)\}`)
	var documented []string
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, method+" "+pathParam.ReplaceAllString(path, ":$1"))
		}
	}

	e := echo.New()
	RegisterHandlers(e, nil)

	var registered []string
	for _, route := range e.Routes() {
		registered = append(registered, route.Method+" "+route.Path)
	}

	assert.ElementsMatch(t, documented, registered)
}
