package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

// Login authenticates a persona and hands back a signed token.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Cannot parse JSON",
		})
	}

	var persona models.Persona
	if db.DB.Where("email = ?", input.Email).First(&persona).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.APIResponse{
			Message: "Email o contraseña incorrectos",
		})
	}

	if !utils.CheckPassword(input.Password, persona.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.APIResponse{
			Message: "Email o contraseña incorrectos",
		})
	}

	token, err := utils.GenerateToken(persona.ID, persona.Email, persona.Rol)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error en el servidor",
		})
	}

	persona.Password = ""
	return c.JSON(utils.APIResponse{
		Message: "Login exitoso",
		Data:    persona,
		Token:   token,
	})
}

// ForgotPassword stores a one-hour recover token and mails the reset link.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Cannot parse JSON",
		})
	}

	var persona models.Persona
	if db.DB.Where("email = ?", input.Email).First(&persona).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "No existe ningún usuario con este correo electrónico.",
		})
	}

	token := utils.GenerateRecoverToken()
	expires := time.Now().Add(time.Hour)
	persona.RecoverToken = &token
	persona.RecoverTokenExpires = &expires

	if err := db.DB.Save(&persona).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error en el servidor",
		})
	}

	if err := utils.SendRecoverEmail(persona.Email, token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "No se pudo enviar el correo",
		})
	}

	return c.JSON(utils.APIResponse{Message: "Correo enviado"})
}

// ResetPassword consumes a recover token and stores the new hash.
func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}

	input := new(ResetInput)
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

	var persona models.Persona
	if db.DB.Where("recover_token = ?", input.Token).First(&persona).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Token inválido o expirado",
		})
	}

	// An expired token is rejected even when the string matches.
	if persona.RecoverTokenExpires == nil || persona.RecoverTokenExpires.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "El enlace ha expirado.",
		})
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error en el servidor",
		})
	}

	persona.Password = hashed
	persona.RecoverToken = nil
	persona.RecoverTokenExpires = nil

	if err := db.DB.Save(&persona).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error en el servidor",
		})
	}

	return c.JSON(utils.APIResponse{Message: "Contraseña actualizada correctamente"})
}
