package admin_test

import (
	"encoding/json"
	"io"
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
	"github.com/euromove/euromove-server-go/utils"
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

func TestDashboardRequiresLogin(t *testing.T) {
	app := getApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/admin", nil))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestDashboardAggregates(t *testing.T) {
	app := getApp(t)

	db := database.DBConn
	db.Create(&post.Post{Title: "p", Content: "...", Category: utils.CATEGORY_ABOUT_US})
	db.Create(&workshop.Workshop{Title: "w", Date: "2026-05-01", Mode: "Online"})
	db.Create(&faq.FAQ{Question: "q"})
	db.Create(&social.SocialLink{PlatformName: "Instagram", URL: "https://instagram.com/euromove"})
	db.Create(&logo.Logo{FileName: "abc_logo.png"})

	cookie := loginCookie(t, app)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", cookie)
	resp, _ := app.Test(req)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	body, _ := io.ReadAll(resp.Body)
	json.Unmarshal(body, &result)

	for _, key := range []string{"posts", "workshops", "faqs", "socials", "logos"} {
		list, ok := result[key].([]interface{})
		if assert.True(t, ok, key) {
			assert.Len(t, list, 1, key)
		}
	}
}
