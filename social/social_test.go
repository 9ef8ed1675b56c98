package social_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/faq"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/post"
	"github.com/euromove/euromove-server-go/router"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/social"
	"github.com/euromove/euromove-server-go/workshop"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func getApp(t *testing.T) *fiber.App {
	t.Setenv("DB_DIALECT", "")
	t.Setenv("DB_PATH", "file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared")

	hash, _ := bcrypt.GenerateFromPassword([]byte("euromove123"), bcrypt.MinCost)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	database.InitDatabase()
	assert.NoError(t, database.DBConn.AutoMigrate(
		&post.Post{}, &workshop.Workshop{}, &workshop.Booking{},
		&faq.FAQ{}, &social.SocialLink{}, &logo.Logo{},
	))

	session.Init()

	app := fiber.New()
	router.SetupRoutes(app)

	return app
}

func loginCookie(t *testing.T, app *fiber.App) string {
	vals := url.Values{"username": {"admin"}, "password": {"euromove123"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, _ := app.Test(req)

	for _, c := range resp.Cookies() {
		if c.Name == "euromove_session" {
			return c.Name + "=" + c.Value
		}
	}

	t.Fatal("no session cookie from login")
	return ""
}

func postJSON(app *fiber.App, path string, cookie string, payload interface{}) *http.Response {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	resp, _ := app.Test(req)
	return resp
}

func TestContactList(t *testing.T) {
	app := getApp(t)

	db := database.DBConn
	db.Create(&social.SocialLink{PlatformName: "Instagram", URL: "https://instagram.com/euromove"})
	db.Create(&social.SocialLink{PlatformName: "LinkedIn", URL: "https://linkedin.com/company/euromove"})

	resp, _ := app.Test(httptest.NewRequest("GET", "/contact", nil))
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	body, _ := io.ReadAll(resp.Body)
	json.Unmarshal(body, &result)

	socials, _ := result["socials"].([]interface{})
	if assert.Len(t, socials, 2) {
		// Newest first.
		assert.Equal(t, "LinkedIn", socials[0].(map[string]interface{})["platform_name"])
	}
}

func TestAdminCreate(t *testing.T) {
	app := getApp(t)
	cookie := loginCookie(t, app)

	resp := postJSON(app, "/admin/social", cookie, map[string]string{
		"platform_name": "Instagram",
		"url":           "https://instagram.com/euromove",
	})
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	database.DBConn.Model(&social.SocialLink{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminCreateBadURL(t *testing.T) {
	app := getApp(t)
	cookie := loginCookie(t, app)

	for _, bad := range []string{"", "not a url", "just-words"} {
		resp := postJSON(app, "/admin/social", cookie, map[string]string{
			"platform_name": "Instagram",
			"url":           bad,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, bad)
	}

	var count int64
	database.DBConn.Model(&social.SocialLink{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminDelete(t *testing.T) {
	app := getApp(t)

	database.DBConn.Create(&social.SocialLink{PlatformName: "X", URL: "https://x.com/euromove"})
	cookie := loginCookie(t, app)

	req := httptest.NewRequest("DELETE", "/admin/social/1", nil)
	req.Header.Set("Cookie", cookie)
	resp, _ := app.Test(req)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	database.DBConn.Model(&social.SocialLink{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
