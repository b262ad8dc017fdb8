package core

import (
	"errors"
	"testing"
)

func TestValidateRecipe(t *testing.T) {
	tests := []struct {
		name    string
		recipe  *Recipe
		wantErr error
	}{
		{
			name: "valid recipe",
			recipe: &Recipe{
				Id:    "rex01",
				Title: "Vegan Chili",
			},
			wantErr: nil,
		},
		{
			name: "valid recipe with empty vector",
			recipe: &Recipe{
				Id:     "rex01",
				Title:  "Vegan Chili",
				Vector: nil,
			},
			wantErr: nil,
		},
		{
			name: "valid recipe with only required fields",
			recipe: &Recipe{
				Id:    "rex01",
				Title: "Toast",
			},
			wantErr: nil,
		},
		{
			name:    "nil recipe",
			recipe:  nil,
			wantErr: ErrInvalidRecipe,
		},
		{
			name: "empty id",
			recipe: &Recipe{
				Id:    "",
				Title: "Vegan Chili",
			},
			wantErr: ErrEmptyID,
		},
		{
			name: "empty title",
			recipe: &Recipe{
				Id:    "rex01",
				Title: "",
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "empty id and title",
			recipe: &Recipe{
				Id:    "",
				Title: "",
			},
			wantErr: ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecipe(tt.recipe)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRecipe() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateRecipe() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRecipe() error = %v, want %v", err, tt.wantErr)
			}

			if !errors.Is(err, ErrInvalidRecipe) {
				t.Errorf("ValidateRecipe() error = %v, want wrapped in %v", err, ErrInvalidRecipe)
			}
		})
	}
}
