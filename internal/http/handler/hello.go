package handler

import (
	"net/url"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"helloapi/internal/model"
)

// Greeting is the fixed body served on the root route.
const Greeting = "Hello, Quira.sh!"

// Hello godoc
// @Summary      Greeting
// @Description  Returns a fixed plain text greeting.
// @Tags         hello
// @Produce      plain
// @Success      200  {string}  string  "Hello, Quira.sh!"
// @Router       / [get]
func Hello() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(Greeting)
	}
}

// Echo godoc
// @Summary      Echo request body
// @Description  Returns the raw request body unchanged.
// @Tags         hello
// @Accept       plain
// @Produce      plain
// @Param        body  body      string  false  "Any payload"
// @Success      200   {string}  string
// @Failure      413   {object}  errorPayload
// @Router       /post [post]
func Echo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// BodyRaw skips Content-Encoding decoding so the bytes come back untouched.
		return c.Send(c.BodyRaw())
	}
}

// Status godoc
// @Summary      Application info
// @Description  Returns the application name and version.
// @Tags         hello
// @Produce      json
// @Success      200  {object}  model.AppInfo
// @Router       /status [get]
func Status(info model.AppInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(info)
	}
}

// SetName godoc
// @Summary      Echo name
// @Description  Returns the percent-decoded path segment as a user record.
// @Tags         hello
// @Produce      json
// @Param        name  path      string  true  "Name to echo"
// @Success      200   {object}  model.User
// @Failure      404   {object}  errorPayload
// @Router       /a/{name} [get]
func SetName() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Routing sees the raw path so an encoded %2F stays inside the segment.
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil || !utf8.ValidString(name) {
			return fiber.ErrNotFound
		}
		return c.JSON(model.User{Name: name})
	}
}
