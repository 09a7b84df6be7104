package httpapi

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/planetpulse/globaltwin/internal/dashboard"
	"github.com/planetpulse/globaltwin/internal/layer"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. defaultCity
// is used when the request carries no city parameter.
func RegisterRoutes(app *fiber.App, service *dashboard.Service, defaultCity string) {
	v1 := app.Group("/api/v1")

	v1.Get("/layers", func(c *fiber.Ctx) error {
		type layerInfo struct {
			ID    layer.Layer `json:"id"`
			Title string      `json:"title"`
		}
		out := make([]layerInfo, 0, len(layer.Canonical))
		for _, l := range layer.Canonical {
			out = append(out, layerInfo{ID: l, Title: l.Title()})
		}
		return c.JSON(fiber.Map{"layers": out})
	})

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		req, err := parseDashboardQuery(c, defaultCity)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		d, err := service.Run(c.UserContext(), req)
		if err != nil {
			// Layer failures are absorbed into the cycle; the only
			// error Run returns is a failed summarization, which
			// aborts all six panels at once.
			return fiber.NewError(fiber.StatusBadGateway, "summarization failed: "+err.Error())
		}
		return c.JSON(d)
	})
}

// dashboardQuery holds query parameters for one refresh cycle.
type dashboardQuery struct {
	City   string   `validate:"required"`
	Layers []string `validate:"omitempty,dive,oneof=weather earthquakes air_quality covid19 disasters news"`
}

func parseDashboardQuery(c *fiber.Ctx, defaultCity string) (dashboard.Request, error) {
	q := dashboardQuery{
		City: c.Query("city", defaultCity),
	}
	if raw := c.Query("layers"); raw != "" {
		q.Layers = strings.Split(raw, ",")
	}

	if err := validate.Struct(q); err != nil {
		return dashboard.Request{}, err
	}

	sel := layer.DefaultSelection()
	if len(q.Layers) > 0 {
		parsed, err := layer.ParseSelection(q.Layers)
		if err != nil {
			return dashboard.Request{}, err
		}
		sel = parsed
	}

	return dashboard.Request{City: q.City, Layers: sel}, nil
}
