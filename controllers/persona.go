package controllers

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

// RegisterInput is the registration schema. CodigoAdmin is validation-only
// and never persisted.
type RegisterInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Lastname    string `json:"lastname" validate:"required,min=2"`
	DNI         int    `json:"dni" validate:"required,gt=0"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	CodigoAdmin string `json:"codigoAdmin" validate:"omitempty"`
}

// UpdatePersonaInput mirrors RegisterInput with every field optional.
type UpdatePersonaInput struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Lastname *string `json:"lastname" validate:"omitempty,min=2"`
	DNI      *int    `json:"dni" validate:"omitempty,gt=0"`
	Phone    *string `json:"phone" validate:"omitempty,min=10"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// RegisterPersona creates an account and logs it in on the spot.
func RegisterPersona(c *fiber.Ctx) error {
	input := new(RegisterInput)
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

	var existing models.Persona
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.APIResponse{
			Message: "El email ya está registrado",
		})
	}

	// A wrong admin code rejects the whole registration; it never
	// downgrades silently to cliente.
	rol := models.RolCliente
	if input.CodigoAdmin != "" {
		if input.CodigoAdmin != os.Getenv("ADMIN_REGISTRATION_KEY") {
			log.Println("Rejected registration with wrong admin code for", input.Email)
			return c.Status(fiber.StatusForbidden).JSON(utils.APIResponse{
				Message: "Clave de validación incorrecta",
			})
		}
		rol = models.RolAdmin
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	persona := models.Persona{
		Name:     input.Name,
		Lastname: input.Lastname,
		DNI:      input.DNI,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: hashed,
		Rol:      rol,
	}

	if err := db.DB.Create(&persona).Error; err != nil {
		log.Printf("Error creating persona: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	token, err := utils.GenerateToken(persona.ID, persona.Email, persona.Rol)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	persona.Password = ""
	return c.Status(fiber.StatusCreated).JSON(utils.APIResponse{
		Message: "Usuario creado exitosamente",
		Data:    persona,
		Token:   token,
	})
}

func GetAllPersonas(c *fiber.Ctx) error {
	var personas []models.Persona
	if err := db.DB.Find(&personas).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Failed to fetch personas",
		})
	}
	for i := range personas {
		personas[i].Password = ""
	}
	return c.JSON(utils.APIResponse{Message: "Found all personas", Data: personas})
}

func GetPersona(c *fiber.Ctx) error {
	email := c.Params("email")
	var persona models.Persona
	if db.DB.Where("email = ?", email).First(&persona).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Persona no encontrada",
		})
	}
	persona.Password = ""
	return c.JSON(utils.APIResponse{Message: "Found persona", Data: persona})
}

// resolvePassword decides what to do with the password field of an update.
// An incoming value identical to the stored hash means "unchanged" and is
// dropped; anything else is new plaintext and gets hashed.
func resolvePassword(incoming, storedHash string) (string, bool, error) {
	if incoming == storedHash {
		return "", false, nil
	}
	hashed, err := utils.HashPassword(incoming)
	if err != nil {
		return "", false, err
	}
	return hashed, true, nil
}

// UpdatePersona merge-patches a persona looked up by email.
func UpdatePersona(c *fiber.Ctx) error {
	email := c.Params("email")

	var persona models.Persona
	if db.DB.Where("email = ?", email).First(&persona).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Persona no encontrada",
		})
	}

	input := new(UpdatePersonaInput)
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
	if input.Password != nil {
		value, changed, err := resolvePassword(*input.Password, persona.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
				Message: "Error interno del servidor",
			})
		}
		if changed {
			patch["password"] = value
		}
	}

	if len(patch) > 0 {
		if err := db.DB.Model(&persona).Updates(patch).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
				Message: "Error interno del servidor",
			})
		}
	}

	persona.Password = ""
	return c.JSON(utils.APIResponse{Message: "Persona actualizada", Data: persona})
}

func DeletePersona(c *fiber.Ctx) error {
	id := c.Params("id")

	var persona models.Persona
	if db.DB.First(&persona, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Persona no encontrada",
		})
	}

	if err := db.DB.Delete(&persona).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	return c.JSON(utils.APIResponse{Message: "Persona eliminada"})
}

// GetReporteUsuario builds the per-user activity report.
func GetReporteUsuario(c *fiber.Ctx) error {
	id := c.Params("id")

	var persona models.Persona
	if db.DB.First(&persona, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Persona no encontrada",
		})
	}

	var reservas []models.Reserva
	if err := db.DB.Where("mail_cliente = ?", persona.Email).Find(&reservas).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	var canchas []models.Cancha
	if err := db.DB.Find(&canchas).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	canchaNames := make(map[uint]string, len(canchas))
	for _, cancha := range canchas {
		canchaNames[cancha.ID] = cancha.TipoCancha
	}

	return c.JSON(utils.APIResponse{
		Message: "Reporte generado",
		Data:    BuildReporteUsuario(reservas, canchaNames),
	})
}

// UpdateProfilePicture uploads a new profile picture for the logged-in
// persona and stores its URL.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.APIResponse{
			Message: "Necesitás estar logueado para ver esto",
		})
	}

	var persona models.Persona
	if db.DB.First(&persona, userID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.APIResponse{
			Message: "Persona no encontrada",
		})
	}

	file, err := c.FormFile("fotoPerfil")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.APIResponse{
			Message: "Falta el archivo fotoPerfil",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("persona_%d_%d", persona.ID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "canchas/perfiles")
	if err != nil {
		log.Printf("Cloudinary upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "No se pudo subir la imagen",
		})
	}

	if err := db.DB.Model(&persona).Update("foto_perfil", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.APIResponse{
			Message: "Error interno del servidor",
		})
	}

	persona.Password = ""
	persona.FotoPerfil = secureURL
	return c.JSON(utils.APIResponse{Message: "Foto de perfil actualizada", Data: persona})
}
