package utils

import (
	"testing"
)

type registerSchema struct {
	Name     string `json:"name" validate:"required,min=2"`
	Lastname string `json:"lastname" validate:"required,min=2"`
	DNI      int    `json:"dni" validate:"required,gt=0"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func validInput() registerSchema {
	return registerSchema{
		Name:     "Juan",
		Lastname: "Pérez",
		DNI:      30123456,
		Phone:    "3511234567",
		Email:    "juan@mail.com",
		Password: "secreto123",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*registerSchema)
		wantField string
	}{
		{
			name:   "valid input passes",
			mutate: func(in *registerSchema) {},
		},
		{
			name:      "password shorter than 6",
			mutate:    func(in *registerSchema) { in.Password = "abc" },
			wantField: "password",
		},
		{
			name:      "short name",
			mutate:    func(in *registerSchema) { in.Name = "J" },
			wantField: "name",
		},
		{
			name:      "invalid email",
			mutate:    func(in *registerSchema) { in.Email = "no-es-un-mail" },
			wantField: "email",
		},
		{
			name:      "missing dni",
			mutate:    func(in *registerSchema) { in.DNI = 0 },
			wantField: "dni",
		},
		{
			name:      "short phone",
			mutate:    func(in *registerSchema) { in.Phone = "12345" },
			wantField: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			errs := ValidateStruct(&input)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", errs)
				}
				return
			}

			if errs == nil {
				t.Fatal("ValidateStruct() = nil, want field error")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("missing error for field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateStructOptionalFields(t *testing.T) {
	type patchSchema struct {
		Password *string `validate:"omitempty,min=6"`
	}

	if errs := ValidateStruct(&patchSchema{}); errs != nil {
		t.Errorf("empty patch should pass, got %v", errs)
	}

	short := "abc"
	if errs := ValidateStruct(&patchSchema{Password: &short}); errs == nil {
		t.Error("short password in patch should fail")
	}
}
