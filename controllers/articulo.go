package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

func GetAllArticulos(c *fiber.Ctx) error {
	var articulos []models.Articulo
	if err := db.DB.Find(&articulos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Failed to fetch articulos",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found all articulos", Data: articulos})
}

func GetArticulo(c *fiber.Ctx) error {
	id := c.Params("id")
	var articulo models.Articulo
	if db.DB.First(&articulo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Artículo no encontrado",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found articulo", Data: articulo})
}

func CreateArticulo(c *fiber.Ctx) error {
	type ArticuloInput struct {
		Nombre string `json:"nombre" validate:"required,min=2"`
	}

	input := new(ArticuloInput)
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

	articulo := models.Articulo{Nombre: input.Nombre, Estado: models.ArticuloDisponible}
	if err := db.DB.Create(&articulo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(utils.APIResponse{Message: "Artículo creado", Data: articulo})
}

func UpdateArticulo(c *fiber.Ctx) error {
	id := c.Params("id")

	var articulo models.Articulo
	if db.DB.First(&articulo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Artículo no encontrado",
		})
	}

	type ArticuloPatch struct {
		Nombre *string `json:"nombre" validate:"omitempty,min=2"`
		Estado *string `json:"estado"`
	}
	input := new(ArticuloPatch)
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
	if input.Nombre != nil {
		patch["nombre"] = *input.Nombre
	}
	if input.Estado != nil {
		patch["estado"] = *input.Estado
	}

	if len(patch) > 0 {
		if err := db.DB.Model(&articulo).Updates(patch).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
				Message: "Error interno del servidor",
			})
		}
	}
	return c.JSON(utils.APIResponse{Message: "Artículo actualizado", Data: articulo})
}

func DeleteArticulo(c *fiber.Ctx) error {
	id := c.Params("id")

	var articulo models.Articulo
	if db.DB.First(&articulo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Artículo no encontrado",
		})
	}

	if err := db.DB.Delete(&articulo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Artículo eliminado"})
}
