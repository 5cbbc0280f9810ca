package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

// CreateReservaArticulo attaches an articulo to a reserva and marks it
// reserved, both in one transaction. Nothing here prevents linking an
// articulo that is already reserved; see findByCanchaFecha for the
// check-first pattern the front end uses.
func CreateReservaArticulo(c *fiber.Ctx) error {
	type LinkInput struct {
		IDReserva  uint `json:"idReserva" validate:"required"`
		IDArticulo uint `json:"idArticulo" validate:"required"`
	}

	input := new(LinkInput)
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

	var reserva models.Reserva
	if db.DB.First(&reserva, input.IDReserva).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Reserva no encontrada",
		})
	}
	var articulo models.Articulo
	if db.DB.First(&articulo, input.IDArticulo).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Artículo no encontrado",
		})
	}

	link := models.ReservaArticulo{IDReserva: input.IDReserva, IDArticulo: input.IDArticulo}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return tx.Model(&articulo).Update("estado", models.ArticuloReservado).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(utils.APIResponse{Message: "Artículo reservado", Data: link})
}

func GetAllReservaArticulos(c *fiber.Ctx) error {
	var links []models.ReservaArticulo
	if err := db.DB.Find(&links).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Failed to fetch reserva articulos",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found all reserva articulos", Data: links})
}

// DeleteReservaArticulo removes one link and releases its articulo.
func DeleteReservaArticulo(c *fiber.Ctx) error {
	id := c.Params("id")

	var link models.ReservaArticulo
	if db.DB.First(&link, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Registro no encontrado",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Articulo{}).
			Where("id = ?", link.IDArticulo).
			Update("estado", models.ArticuloDisponible).Error; err != nil {
			return err
		}
		return tx.Delete(&link).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	return c.JSON(utils.APIResponse{Message: "Artículo liberado"})
}
