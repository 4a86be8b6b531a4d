package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Notifications de l'entreprise (plus récentes d'abord)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "page"
// @Param        pageSize  query  int  false  "taille de page"
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "pagination invalide"})
	}
	out, err := h.uc.List(GetEntrepriseID(c), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// MarquerLue godoc
// @Summary      Marquer une notification comme lue
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/notifications/{id}/lue [post]
func (h *NotificationHandler) MarquerLue(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.MarquerLue(GetEntrepriseID(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "OK", Message: "notification marquée comme lue"})
}
