package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

func GetAllCanchas(c *fiber.Ctx) error {
	var canchas []models.Cancha
	if err := db.DB.Find(&canchas).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Failed to fetch canchas",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found all canchas", Data: canchas})
}

func GetCancha(c *fiber.Ctx) error {
	id := c.Params("id")
	var cancha models.Cancha
	if db.DB.First(&cancha, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Cancha no encontrada",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found cancha", Data: cancha})
}

func CreateCancha(c *fiber.Ctx) error {
	type CanchaInput struct {
		TipoCancha string `json:"tipoCancha" validate:"required,min=2"`
		Estado     string `json:"estado" validate:"omitempty"`
	}

	input := new(CanchaInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Cannot parse JSON",
		})
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Datos inválidos",
			Errors:  errs,
		})
	}

	cancha := models.Cancha{TipoCancha: input.TipoCancha, Estado: input.Estado}
	if cancha.Estado == "" {
		cancha.Estado = models.CanchaDisponible
	}

	if err := db.DB.Create(&cancha).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(utils.APIResponse{Message: "Cancha creada", Data: cancha})
}

func UpdateCancha(c *fiber.Ctx) error {
	id := c.Params("id")

	var cancha models.Cancha
	if db.DB.First(&cancha, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Cancha no encontrada",
		})
	}

	type CanchaPatch struct {
		TipoCancha *string `json:"tipoCancha" validate:"omitempty,min=2"`
		Estado     *string `json:"estado"`
	}
	input := new(CanchaPatch)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Cannot parse JSON",
		})
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Datos inválidos",
			Errors:  errs,
		})
	}

	patch := map[string]interface{}{}
	if input.TipoCancha != nil {
		patch["tipo_cancha"] = *input.TipoCancha
	}
	if input.Estado != nil {
		patch["estado"] = *input.Estado
	}

	if len(patch) > 0 {
		if err := db.DB.Model(&cancha).Updates(patch).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
				Message: "Error interno del servidor",
			})
		}
	}
	return c.JSON(utils.APIResponse{Message: "Cancha actualizada", Data: cancha})
}

func DeleteCancha(c *fiber.Ctx) error {
	id := c.Params("id")

	var cancha models.Cancha
	if db.DB.First(&cancha, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Cancha no encontrada",
		})
	}

	if err := db.DB.Delete(&cancha).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Cancha eliminada"})
}
