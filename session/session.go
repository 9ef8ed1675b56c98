package session

import (
	"encoding/json"
	"os"

	"github.com/euromove/euromove-server-go/utils"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"golang.org/x/crypto/bcrypt"
)

// Session keys.  The admin flag is the only authentication state we hold;
// there are no per-user accounts on this site.
const adminKey = "admin_logged_in"
const flashKey = "flash"

var store *fibersession.Store

// Init creates the cookie-backed session store.  Must be called before the
// app serves requests.
func Init() {
	store = fibersession.New(fibersession.Config{
		KeyLookup:      "cookie:euromove_session",
		CookieHTTPOnly: true,
	})
}

// FlashMessage is a one-time notification shown on the next rendered page.
type FlashMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Flash appends a message to the session; it stays there until the next
// page read pops it.
func Flash(c *fiber.Ctx, level string, message string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}

	messages := decodeFlashes(sess)
	messages = append(messages, FlashMessage{Level: level, Message: message})

	// The session store only holds types it can serialise, so keep the list
	// as a JSON string.
	encoded, _ := json.Marshal(messages)
	sess.Set(flashKey, string(encoded))
	_ = sess.Save()
}

// Flashes pops all pending flash messages.  Always returns a non-nil slice
// so the JSON encodes as [] rather than null.
func Flashes(c *fiber.Ctx) []FlashMessage {
	sess, err := store.Get(c)
	if err != nil {
		return []FlashMessage{}
	}

	messages := decodeFlashes(sess)

	if len(messages) > 0 {
		sess.Delete(flashKey)
		_ = sess.Save()
	}

	return messages
}

func decodeFlashes(sess *fibersession.Session) []FlashMessage {
	messages := []FlashMessage{}

	if raw, ok := sess.Get(flashKey).(string); ok && raw != "" {
		_ = json.Unmarshal([]byte(raw), &messages)
	}

	return messages
}

// IsAdmin checks the session flag.
func IsAdmin(c *fiber.Ctx) bool {
	sess, err := store.Get(c)
	if err != nil {
		return false
	}

	flag, _ := sess.Get(adminKey).(bool)
	return flag
}

// AdminRequired guards the admin routes.  An anonymous visitor gets flashed
// and bounced to the login page rather than a bare 401 - the admin panel is
// browsed by a human, not an API client.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			Flash(c, utils.FLASH_DANGER, "You must log in first.")
			return c.Redirect("/admin/login", fiber.StatusFound)
		}

		return c.Next()
	}
}

// GetLogin handles GET /admin/login - the login page payload.
func GetLogin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"flash": Flashes(c),
	})
}

// Login handles POST /admin/login.
//
// @Summary Admin login
// @Tags session
// @Accept x-www-form-urlencoded
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Router /admin/login [post]
func Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}

	// The hash comes from the environment so the credential never lives in
	// the repository.  bcrypt comparison is constant-time.
	hash := os.Getenv("ADMIN_PASSWORD_HASH")

	if username == adminUser && hash != "" && bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
		sess, err := store.Get(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Session error")
		}

		// Set the flag and the flash in one save.  A second store.Get on a
		// request that arrived without a session cookie would mint a second
		// session and we'd lose one of the two.
		sess.Set(adminKey, true)
		messages := append(decodeFlashes(sess), FlashMessage{Level: utils.FLASH_SUCCESS, Message: "Logged in successfully!"})
		encoded, _ := json.Marshal(messages)
		sess.Set(flashKey, string(encoded))

		if err := sess.Save(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Session error")
		}

		return c.Redirect("/admin", fiber.StatusFound)
	}

	Flash(c, utils.FLASH_DANGER, "Invalid credentials")
	return c.Redirect("/admin/login", fiber.StatusFound)
}

// Logout handles GET /admin/logout - clears the admin flag.
func Logout(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err == nil {
		sess.Delete(adminKey)
		_ = sess.Save()
	}

	Flash(c, utils.FLASH_SUCCESS, "Logged out successfully.")
	return c.Redirect("/admin/login", fiber.StatusFound)
}
