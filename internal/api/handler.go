// Package api exposes the parse and consolidate pipelines over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chaiyo/thaistatement/internal/consolidate"
	"github.com/chaiyo/thaistatement/internal/extractor"
	"github.com/chaiyo/thaistatement/internal/models"
	"github.com/chaiyo/thaistatement/internal/parser"
)

// pageBreak separates pages in pre-extracted text uploads.
const pageBreak = "\n---PAGE_BREAK---\n"

// Handler holds the HTTP handlers for the statement API.
type Handler struct {
	Logger   *slog.Logger
	Password string // default password for encrypted uploads
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "thaistatement",
		BodyLimit: 32 << 20,
	})
	h.Register(app)
	return app
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/parse", h.handleParse)
	app.Post("/api/consolidate", h.handleConsolidate)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ParseResponse is the JSON response from POST /api/parse.
type ParseResponse struct {
	Statement *models.Statement `json:"statement"`
	Bank      models.BankType   `json:"bank"`
	Language  models.Language   `json:"language"`
	Count     int               `json:"count"`
}

// handleParse accepts either a multipart PDF upload (field "file", optional
// "password") or pre-extracted page text (field "text" with page-break
// separators) and returns the parsed Statement.
func (h *Handler) handleParse(c *fiber.Ctx) error {
	pages, source, err := h.readPages(c)
	if err != nil {
		return err
	}

	stmt, err := parser.ParsePages(pages, source)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("parsing failed: %v", err))
	}

	if stmt.AccountNumber == "UNKNOWN" {
		// Best-effort header extraction came up empty; surface it as a
		// diagnostic without failing the request.
		h.Logger.Warn("statement parsed without an account number",
			"source", source, "bank", stmt.Bank, "transactions", len(stmt.Transactions))
	}

	return c.JSON(ParseResponse{
		Statement: stmt,
		Bank:      stmt.Bank,
		Language:  stmt.Language,
		Count:     len(stmt.Transactions),
	})
}

func (h *Handler) readPages(c *fiber.Ctx) ([]string, string, error) {
	if text := c.FormValue("text"); text != "" {
		var pages []string
		for _, page := range strings.Split(text, strings.TrimSpace(pageBreak)) {
			if page = strings.TrimSpace(page); page != "" {
				pages = append(pages, page)
			}
		}
		if len(pages) == 0 {
			return nil, "", fiber.NewError(fiber.StatusBadRequest, "text field contained no pages")
		}
		return pages, c.FormValue("source", "inline-text"), nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "no file uploaded; use form field 'file' or 'text'")
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "only PDF files are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "failed to save uploaded file")
	}

	password := c.FormValue("password", h.Password)
	pages, err := extractor.ExtractText(tmpPath, password)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}
	return pages, filepath.Base(fh.Filename), nil
}

// ConsolidateRequest is the JSON body for POST /api/consolidate.
type ConsolidateRequest struct {
	Statements []models.Statement `json:"statements"`
	Language   models.Language    `json:"language"`
}

// ConsolidateResponse carries the consolidated accounts plus any balance
// continuity diagnostics.
type ConsolidateResponse struct {
	Accounts []models.Account      `json:"accounts"`
	Issues   []models.BalanceIssue `json:"issues"`
}

func (h *Handler) handleConsolidate(c *fiber.Ctx) error {
	var req ConsolidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
	}
	if req.Language == "" {
		req.Language = models.LangEnglish
	}

	accounts, issues, err := consolidate.Consolidate(req.Statements, req.Language)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	h.Logger.Info("consolidated statement batch",
		"statements", len(req.Statements), "accounts", len(accounts), "issues", len(issues))

	if accounts == nil {
		accounts = []models.Account{}
	}
	if issues == nil {
		issues = []models.BalanceIssue{}
	}
	return c.JSON(ConsolidateResponse{Accounts: accounts, Issues: issues})
}
