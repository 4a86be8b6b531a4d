package http

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// ModeleHandler gère le catalogue : modèles et leurs déclinaisons boutique.
type ModeleHandler struct {
	uc        *usecase.ModeleUseCase
	uploadDir string
}

func NewModeleHandler(uc *usecase.ModeleUseCase, uploadDir string) *ModeleHandler {
	return &ModeleHandler{uc: uc, uploadDir: uploadDir}
}

// Create godoc
// @Summary      Créer un modèle
// @Tags         modeles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateModeleRequest  true  "libelle"
// @Success      201   {object}  dto.ModeleResponse
// @Router       /api/modeles [post]
func (h *ModeleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateModeleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ModeleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(GetEntrepriseID(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *ModeleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateModeleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Update(GetEntrepriseID(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// AttacherPhoto godoc
// @Summary      Attacher une photo au modèle
// @Tags         modeles
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "fichier image"
// @Success      200    {object}  dto.ModeleResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/modeles/{id}/photo [post]
func (h *ModeleHandler) AttacherPhoto(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "champ multipart 'photo' requis"})
	}

	// Nom de fichier opaque : l'original vient du client.
	nom := uuid.New().String() + filepath.Ext(file.Filename)
	chemin := filepath.Join(h.uploadDir, nom)
	if err := c.SaveFile(file, chemin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: fmt.Sprintf("enregistrement du fichier: %v", err)})
	}

	out, err := h.uc.AttacherPhoto(GetEntrepriseID(c), id, nom)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *ModeleHandler) List(c *fiber.Ctx) error {
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

func (h *ModeleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(GetEntrepriseID(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateModeleBoutique godoc
// @Summary      Mettre un modèle en rayon dans une boutique
// @Tags         modeles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateModeleBoutiqueRequest  true  "modeleId, boutiqueId, prix, taille"
// @Success      201   {object}  dto.ModeleBoutiqueResponse
// @Router       /api/modeleBoutiques [post]
func (h *ModeleHandler) CreateModeleBoutique(c *fiber.Ctx) error {
	var in dto.CreateModeleBoutiqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.CreateModeleBoutique(GetEntrepriseID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ModeleHandler) UpdateModeleBoutique(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateModeleBoutiqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.UpdateModeleBoutique(GetEntrepriseID(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListModeleBoutiques liste les modèles en rayon d'une boutique.
func (h *ModeleHandler) ListModeleBoutiques(c *fiber.Ctx) error {
	boutiqueID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "pagination invalide"})
	}
	out, err := h.uc.ListModeleBoutiques(GetEntrepriseID(c), boutiqueID, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func (h *ModeleHandler) DeleteModeleBoutique(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteModeleBoutique(GetEntrepriseID(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
