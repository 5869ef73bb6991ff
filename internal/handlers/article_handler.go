package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"schoolpress/internal/services"
)

type ArticleHandler struct {
	articles    *services.ArticleService
	attachments *services.AttachmentService
}

func NewArticleHandler(articles *services.ArticleService, attachments *services.AttachmentService) *ArticleHandler {
	return &ArticleHandler{articles: articles, attachments: attachments}
}

func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var input services.ArticleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	article, err := h.articles.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

func (h *ArticleHandler) List(c *fiber.Ctx) error {
	articles, err := h.articles.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(articles)
}

func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	article, err := h.articles.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(article)
}

// Update applies a merge-patch. The body is decoded into a map so that only
// the fields the client actually sent reach storage.
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var patch map[string]interface{}
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	article, err := h.articles.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(article)
}

func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.articles.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "article deleted successfully"})
}

func (h *ArticleHandler) Attach(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing file"})
	}

	article, err := h.attachments.Attach(c.Context(), c.Params("id"), file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "attachment uploaded successfully",
		"article": article,
	})
}

func (h *ArticleHandler) Download(c *fiber.Ctx) error {
	url, err := h.attachments.DownloadURL(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"url":        url,
		"expires_in": services.DownloadURLValidity.String(),
	})
}
