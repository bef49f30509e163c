package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mitienda-api/internal/application/dto"
	"github.com/jhoicas/Mitienda-api/internal/application/usecase"
	"github.com/jhoicas/Mitienda-api/internal/domain"
)

// PreferencesHandler preferencias persistidas del usuario (protegido).
type PreferencesHandler struct {
	uc *usecase.PreferencesUseCase
}

// NewPreferencesHandler construye el handler.
func NewPreferencesHandler(uc *usecase.PreferencesUseCase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

type preferenceBody struct {
	Value string `json:"value"`
}

// Get godoc
// @Summary      Obtener una preferencia
// @Tags         preferences
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "Clave (ej. currency)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/preferences/{key} [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	value, err := h.uc.Get(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "preferencia no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"key": key, "value": value})
}

// Set godoc
// @Summary      Guardar una preferencia
// @Tags         preferences
// @Security     Bearer
// @Accept       json
// @Param        key   path  string          true  "Clave"
// @Param        body  body  preferenceBody  true  "Valor"
// @Success      204
// @Router       /api/preferences/{key} [put]
func (h *PreferencesHandler) Set(c *fiber.Ctx) error {
	key := c.Params("key")
	var in preferenceBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Set(c.UserContext(), key, in.Value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clave requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
