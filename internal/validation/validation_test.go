package validation

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, body string, dst interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Register()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(dst)
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	var req models.RegisterRequest
	err := bind(t, `{"email": "not-an-email", "password": "pw", "name": "   "}`, &req)
	require.Error(t, err)

	fields := FieldErrors(err)

	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
	assert.Equal(t, []string{"Ensure this field has at least 5 characters."}, fields["password"])
	assert.Equal(t, []string{"This field may not be blank."}, fields["name"])
}

func TestFieldErrorsRequired(t *testing.T) {
	var req models.RecipeRequest
	err := bind(t, `{"title": "Soup"}`, &req)
	require.Error(t, err)

	fields := FieldErrors(err)

	assert.Contains(t, fields, "time_minutes")
	assert.Contains(t, fields, "price")
	assert.NotContains(t, fields, "title")
}

func TestFieldErrorsNestedLabels(t *testing.T) {
	var req models.RecipeRequest
	err := bind(t, `{"title": "Soup", "time_minutes": 5, "price": "1.00", "tags": [{"name": "ok"}, {"name": ""}]}`, &req)
	require.Error(t, err)

	fields := FieldErrors(err)

	assert.Contains(t, fields, "tags[1].name")
}

func TestFieldErrorsTypeMismatch(t *testing.T) {
	var req models.RecipeRequest
	err := bind(t, `{"title": "Soup", "time_minutes": "five", "price": "1.00"}`, &req)
	require.Error(t, err)

	fields := FieldErrors(err)

	assert.Equal(t, []string{"Expected a number."}, fields["time_minutes"])
}

func TestFieldErrorsBadPrice(t *testing.T) {
	var req models.RecipeRequest
	err := bind(t, `{"title": "Soup", "time_minutes": 5, "price": "cheap"}`, &req)
	require.Error(t, err)

	assert.Contains(t, FieldErrors(err), "price")
}

func TestFieldErrorsMalformedJSON(t *testing.T) {
	var req models.LabelRequest
	err := bind(t, `{"name": `, &req)
	require.Error(t, err)

	assert.Equal(t, []string{"Malformed JSON body."}, FieldErrors(err)[NonFieldErrors])
}

func TestPriceAcceptsNumberAndString(t *testing.T) {
	for _, body := range []string{
		`{"title": "Soup", "time_minutes": 5, "price": 5.5}`,
		`{"title": "Soup", "time_minutes": 5, "price": "5.50"}`,
	} {
		var req models.RecipeRequest
		require.NoError(t, bind(t, body, &req), body)
		assert.Equal(t, "5.50", req.Price.StringFixed(2))
	}
}
