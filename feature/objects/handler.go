package objects

import (
	"bytes"
	"errors"
	"net/url"

	"ucs/core/logger"
	"ucs/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the objects routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/activity", h.HandleActivity)
	group.Put("/*", h.HandleUpload)
	group.Delete("/*", h.HandleDelete)
}

// HandleUpload stores the request body under the key in the path.
// @Summary Upload Object
// @Description Uploads the raw request body with a public-read ACL.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key path string true "Object key (e.g. 'images/logo.png')"
// @Success 204 "Uploaded"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 502 {object} map[string]string "Upload failed"
// @Router /objects/{key} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key, err := objectKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	payload := bytes.Clone(c.Body())

	if err := h.service.Upload(c.Context(), payload, key, logger.RayID(c)); err != nil {
		l.Error("Upload failed", zap.String("key", key), zap.Error(err))
		return storageFailure(c, err)
	}

	l.Info("Object uploaded", zap.String("key", key), zap.Int("size", len(payload)))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete removes the object named by the path.
// @Summary Delete Object
// @Description Deletes a single object from the bucket.
// @Tags objects
// @Produce json
// @Param key path string true "Object key (e.g. 'images/logo.png')"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 502 {object} map[string]string "Delete failed"
// @Router /objects/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key, err := objectKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Delete(c.Context(), key, logger.RayID(c)); err != nil {
		l.Error("Delete failed", zap.String("key", key), zap.Error(err))
		return storageFailure(c, err)
	}

	l.Info("Object deleted", zap.String("key", key))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleActivity lists recent uploads and deletes.
// @Summary Object Activity
// @Description Lists the most recent upload and delete attempts, newest first.
// @Tags objects
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {array} models.Activity "Activity"
// @Failure 503 {object} map[string]string "Ledger not configured"
// @Router /objects/activity [get]
func (h *Handler) HandleActivity(c *fiber.Ctx) error {
	entries, err := h.service.Activity(c.Context(), c.QueryInt("limit", defaultActivityLimit))
	if errors.Is(err, ErrLedgerDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Activity listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

// objectKey returns the unescaped wildcard path.
func objectKey(c *fiber.Ctx) (string, error) {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", errors.New("invalid object key")
	}
	if key == "" {
		return "", errors.New("object key is required")
	}
	return key, nil
}

// storageFailure writes the fixed storage message; the cause is only logged.
func storageFailure(c *fiber.Ctx, err error) error {
	var uerr *storage.UploadError
	var derr *storage.DeleteError
	if errors.As(err, &uerr) || errors.As(err, &derr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
