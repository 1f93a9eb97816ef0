// Package http exposes the resume builder over a Fiber application.
package http

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cv-builder/internal/domain"
	"cv-builder/internal/export"
	"cv-builder/internal/model"
	"cv-builder/internal/render"
	"cv-builder/internal/report"
	"cv-builder/internal/scoring"
	"cv-builder/internal/storage"
)

type Handler struct {
	repo      storage.ResumeRepository
	exportLog storage.ExportLogger
	renderer  *render.Renderer
	exporter  *export.Exporter
	texts     *report.Chain
	tplDir    string
}

func NewHandler(repo storage.ResumeRepository, exportLog storage.ExportLogger, renderer *render.Renderer, exporter *export.Exporter, texts *report.Chain, tplDir string) *Handler {
	return &Handler{repo: repo, exportLog: exportLog, renderer: renderer, exporter: exporter, texts: texts, tplDir: tplDir}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)
	app.Put("/resumes/:userId", h.SaveResume)
	app.Get("/resumes/:userId", h.GetResume)
	app.Delete("/resumes/:userId", h.ClearResume)
	app.Get("/resumes/:userId/score", h.ScoreResume)
	app.Post("/resumes/:userId/export", h.ExportResume)
	app.Post("/resumes/:userId/generate", h.GenerateText)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) userID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("userId"))
}

func (h *Handler) SaveResume(c *fiber.Ctx) error {
	uid, err := h.userID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateMap(h.tplDir, payload); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var doc domain.ResumeDocument
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	doc.EnsureIDs()

	if err := h.repo.Set(c.Context(), uid, &doc); err != nil {
		slog.Error("failed to save resume", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(doc)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	uid, err := h.userID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	doc, err := h.repo.Get(c.Context(), uid)
	if err == storage.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		slog.Error("failed to load resume", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}
	return c.JSON(doc)
}

func (h *Handler) ClearResume(c *fiber.Ctx) error {
	uid, err := h.userID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	if err := h.repo.Clear(c.Context(), uid); err != nil {
		slog.Error("failed to clear resume", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to clear resume"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ScoreResume scores whatever is stored. A user without a stored document
// gets the score of an empty one; scoring itself never fails.
func (h *Handler) ScoreResume(c *fiber.Ctx) error {
	uid, err := h.userID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	doc, err := h.repo.Get(c.Context(), uid)
	if err != nil && err != storage.ErrNotFound {
		slog.Error("failed to load resume", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}
	return c.JSON(scoring.Score(doc))
}

type exportReq struct {
	Template string `json:"template"`
}

func (h *Handler) ExportResume(c *fiber.Ctx) error {
	uid, err := h.userID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	var req exportReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
	}
	if req.Template == "" {
		req.Template = "classico"
	}

	doc, err := h.repo.Get(c.Context(), uid)
	if err == storage.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		slog.Error("failed to load resume", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}

	html, err := h.renderer.RenderHTML(doc, req.Template)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.exporter.Export(c.Context(), html, req.Template)
	if err != nil {
		// Capture and assembly failures surface the same way; no partial
		// file ever reaches the client.
		slog.Error("export failed", "user_id", uid, "template", req.Template, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "export failed, try again"})
	}

	if h.exportLog != nil {
		if err := h.exportLog.LogExport(context.Background(), uid, req.Template, res.Filename, res.Pages); err != nil {
			slog.Warn("failed to log export", "user_id", uid, "error", err)
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.PDF)
}

type generateReq struct {
	Type         string `json:"type"`
	ExperienceID string `json:"experience_id,omitempty"`
	Company      string `json:"company,omitempty"`
	Position     string `json:"position,omitempty"`
}

func (h *Handler) GenerateText(c *fiber.Ctx) error {
	uid, err := h.userID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	doc, err := h.repo.Get(c.Context(), uid)
	if err != nil && err != storage.ErrNotFound {
		slog.Error("failed to load resume", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}
	if doc == nil {
		doc = &domain.ResumeDocument{}
	}

	var out *report.GeneratedText
	switch req.Type {
	case "objective":
		out, err = h.texts.Objective(c.Context(), doc)
	case "experience_bullets":
		exp, ok := findExperience(doc, req.ExperienceID)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "experience not found"})
		}
		out, err = h.texts.ExperienceBullets(c.Context(), exp)
	case "cover_letter":
		out, err = h.texts.CoverLetter(c.Context(), doc, report.CoverLetterRequest{Company: req.Company, Position: req.Position})
	case "score_narrative":
		out, err = h.texts.ScoreNarrative(c.Context(), doc, scoring.Score(doc))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown generation type"})
	}
	if err != nil {
		slog.Error("text generation failed", "user_id", uid, "type", req.Type, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "text generation failed, try again"})
	}
	return c.JSON(out)
}

func findExperience(doc *domain.ResumeDocument, id string) (domain.Experience, bool) {
	expID, err := uuid.Parse(id)
	if err != nil {
		return domain.Experience{}, false
	}
	for _, e := range doc.Experience {
		if e.ID == expID {
			return e, true
		}
	}
	return domain.Experience{}, false
}
