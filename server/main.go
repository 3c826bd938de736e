package main

import (
	"context"
	"errors"
	"os"

	"github.com/crewplan/flow"
	"github.com/crewplan/flow/postgres"
	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Addr        string `envconfig:"ADDR" default:":3000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// saveRequest is the body of workflow create/update calls: author-entered
// metadata plus the serialized document.
type saveRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Data        flow.Document `json:"data"`
}

func main() {
	// Best-effort .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect")
	}
	defer pool.Close()

	var store flow.Store = postgres.New(pool)

	app := fiber.New()

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", func(c fiber.Ctx) error {
		if err := store.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", func(c fiber.Ctx) error {
		if err := store.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Workflows ─────────────────────────────────────────────────────
	saveWorkflow := func(c fiber.Ctx, id string) error {
		var req saveRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		// Reject documents the editor could never load back.
		g, err := flow.GraphFromDocument(req.Data)
		if errors.Is(err, flow.ErrParse) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		data, err := flow.MarshalDocument(g, req.Data.Viewport)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		savedID, err := store.SaveWorkflow(c.Context(), &flow.Workflow{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Data:        data,
		})
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		log.Info().Str("workflow", savedID).Str("name", req.Name).Msg("workflow saved")
		return c.Status(201).JSON(fiber.Map{"id": savedID, "findings": flow.Validate(g)})
	}

	app.Post("/workflows", func(c fiber.Ctx) error {
		return saveWorkflow(c, "")
	})

	app.Put("/workflows/:id", func(c fiber.Ctx) error {
		return saveWorkflow(c, c.Params("id"))
	})

	app.Get("/workflows", func(c fiber.Ctx) error {
		workflows, err := store.ListWorkflows(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(workflows)
	})

	app.Get("/workflows/:id", func(c fiber.Ctx) error {
		w, err := store.GetWorkflow(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if w == nil {
			return c.Status(404).JSON(fiber.Map{"error": "workflow not found"})
		}
		return c.JSON(w)
	})

	app.Delete("/workflows/:id", func(c fiber.Ctx) error {
		if err := store.DeleteWorkflow(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Validation ────────────────────────────────────────────────────
	app.Post("/workflows/validate", func(c fiber.Ctx) error {
		var doc flow.Document
		if err := c.Bind().JSON(&doc); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		g, err := flow.GraphFromDocument(doc)
		if errors.Is(err, flow.ErrParse) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"findings": flow.Validate(g)})
	})

	// ── Reference lists ───────────────────────────────────────────────
	app.Get("/people", func(c fiber.Ctx) error {
		people, err := store.ListPeople(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(people)
	})

	app.Get("/tools", func(c fiber.Ctx) error {
		tools, err := store.ListTools(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(tools)
	})

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
