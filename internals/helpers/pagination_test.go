package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p := resolveVia(t, "/list", 15, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 15, p.PerPage)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("page dan per_page", func(t *testing.T) {
		p := resolveVia(t, "/list?page=3&per_page=20", 15, 100)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, 40, p.Offset)
	})

	t.Run("alias limit", func(t *testing.T) {
		p := resolveVia(t, "/list?limit=30", 15, 100)
		assert.Equal(t, 30, p.PerPage)
	})

	t.Run("per_page dibatasi max", func(t *testing.T) {
		p := resolveVia(t, "/list?per_page=9999", 15, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("nilai invalid fallback", func(t *testing.T) {
		p := resolveVia(t, "/list?page=-2&per_page=abc", 15, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 15, p.PerPage)
	})
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 10)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
