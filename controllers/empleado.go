package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

type EmpleadoInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Lastname string `json:"lastname" validate:"required,min=2"`
	DNI      int    `json:"dni" validate:"required,gt=0"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Email    string `json:"email" validate:"required,email"`
	Cargo    string `json:"cargo" validate:"required"`
}

func GetAllEmpleados(c *fiber.Ctx) error {
	var empleados []models.Empleado
	if err := db.DB.Find(&empleados).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Failed to fetch empleados",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found all empleados", Data: empleados})
}

func GetEmpleado(c *fiber.Ctx) error {
	id := c.Params("id")
	var empleado models.Empleado
	if db.DB.First(&empleado, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Empleado no encontrado",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Found empleado", Data: empleado})
}

func CreateEmpleado(c *fiber.Ctx) error {
	input := new(EmpleadoInput)
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

	empleado := models.Empleado{
		Name:     input.Name,
		Lastname: input.Lastname,
		DNI:      input.DNI,
		Phone:    input.Phone,
		Email:    input.Email,
		Cargo:    input.Cargo,
	}

	if err := db.DB.Create(&empleado).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(utils.APIResponse{Message: "Empleado creado", Data: empleado})
}

func UpdateEmpleado(c *fiber.Ctx) error {
	id := c.Params("id")

	var empleado models.Empleado
	if db.DB.First(&empleado, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Empleado no encontrado",
		})
	}

	type EmpleadoPatch struct {
		Name     *string `json:"name" validate:"omitempty,min=2"`
		Lastname *string `json:"lastname" validate:"omitempty,min=2"`
		DNI      *int    `json:"dni" validate:"omitempty,gt=0"`
		Phone    *string `json:"phone" validate:"omitempty,min=10"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Cargo    *string `json:"cargo"`
	}
	input := new(EmpleadoPatch)
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
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Lastname != nil {
		patch["lastname"] = *input.Lastname
	}
	if input.DNI != nil {
		patch["dni"] = *input.DNI
	}
	if input.Phone != nil {
		patch["phone"] = *input.Phone
	}
	if input.Email != nil {
		patch["email"] = *input.Email
	}
	if input.Cargo != nil {
		patch["cargo"] = *input.Cargo
	}

	if len(patch) > 0 {
		if err := db.DB.Model(&empleado).Updates(patch).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
				Message: "Error interno del servidor",
			})
		}
	}
	return c.JSON(utils.APIResponse{Message: "Empleado actualizado", Data: empleado})
}

func DeleteEmpleado(c *fiber.Ctx) error {
	id := c.Params("id")

	var empleado models.Empleado
	if db.DB.First(&empleado, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Empleado no encontrado",
		})
	}

	if err := db.DB.Delete(&empleado).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Empleado eliminado"})
}
