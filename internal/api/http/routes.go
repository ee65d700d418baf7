package httpapi

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/presentation"
)

var validate = validator.New()

// RegisterRoutes wires the dashboard actions and state reads into the
// Fiber app. Action handlers return the updated dashboard state so a
// thin renderer never needs a second round trip; refresh and
// geolocation failures travel inside that state (searchError /
// geoError slots), not as HTTP errors.
func RegisterRoutes(app *fiber.App, dash *dashboard.Dashboard) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(dash.State())
	})

	v1.Get("/dashboard/background", func(c *fiber.Ctx) error {
		state := dash.State()
		return c.JSON(fiber.Map{
			"background": presentation.Select(state.Display.Snapshot),
		})
	})

	v1.Post("/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// A failed search leaves its message in the state; an
		// all-whitespace query is a silent no-op.
		_ = dash.Search(c.Context(), req.Query)
		return c.JSON(dash.State())
	})

	v1.Post("/locations/current", func(c *fiber.Ctx) error {
		_ = dash.UseCurrentLocation(c.Context())
		return c.JSON(dash.State())
	})

	v1.Post("/view/default", func(c *fiber.Ctx) error {
		dash.ReturnToDefault()
		return c.JSON(dash.State())
	})

	v1.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"locations": dash.State().SavedLocations,
		})
	})

	v1.Post("/locations", func(c *fiber.Ctx) error {
		dash.SaveCurrent()
		return c.JSON(dash.State())
	})

	v1.Delete("/locations/:name", func(c *fiber.Ctx) error {
		name, err := pathName(c)
		if err != nil {
			return err
		}
		// Deleting never navigates; the view stays where it is.
		dash.DeleteSaved(name)
		return c.JSON(dash.State())
	})

	v1.Post("/locations/:name/select", func(c *fiber.Ctx) error {
		name, err := pathName(c)
		if err != nil {
			return err
		}
		_ = dash.SelectSaved(c.Context(), name)
		return c.JSON(dash.State())
	})
}

type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

// pathName extracts and decodes the :name parameter. Location names
// carry spaces and commas, so they arrive percent-encoded.
func pathName(c *fiber.Ctx) (string, error) {
	raw := c.Params("name")
	if raw == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "location name is required")
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid location name")
	}
	return name, nil
}
