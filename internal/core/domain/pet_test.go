package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

func completePet() domain.Pet {
	return domain.Pet{
		Name:        "Luna",
		Description: "Gentle and playful",
		Species:     domain.SpeciesDog,
		Sex:         domain.SexFemale,
		Size:        domain.SizeMedium,
		AgeCategory: domain.AgeYoung,
	}
}

func TestPet_HasMinimumData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Pet)
		want   bool
	}{
		{name: "all fields present", mutate: func(p *domain.Pet) {}, want: true},
		{name: "empty name", mutate: func(p *domain.Pet) { p.Name = "" }, want: false},
		{name: "whitespace name", mutate: func(p *domain.Pet) { p.Name = "   " }, want: false},
		{name: "whitespace description", mutate: func(p *domain.Pet) { p.Description = "\t " }, want: false},
		{name: "missing species", mutate: func(p *domain.Pet) { p.Species = "" }, want: false},
		{name: "missing sex", mutate: func(p *domain.Pet) { p.Sex = "" }, want: false},
		{name: "missing size", mutate: func(p *domain.Pet) { p.Size = "" }, want: false},
		{name: "missing age category", mutate: func(p *domain.Pet) { p.AgeCategory = "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pet := completePet()
			tt.mutate(&pet)
			assert.Equal(t, tt.want, pet.HasMinimumData())
		})
	}
}

func img(position int, isCover bool) domain.PetImage {
	return domain.PetImage{Position: position, IsCover: isCover}
}

func TestValidateImageSet(t *testing.T) {
	tests := []struct {
		name           string
		images         []domain.PetImage
		checkPositions bool
		want           bool
	}{
		{
			name:           "empty set",
			images:         nil,
			checkPositions: true,
			want:           false,
		},
		{
			name:           "single cover image",
			images:         []domain.PetImage{img(0, true)},
			checkPositions: true,
			want:           true,
		},
		{
			name: "five images one cover",
			images: []domain.PetImage{
				img(0, true), img(1, false), img(2, false), img(3, false), img(4, false),
			},
			checkPositions: true,
			want:           true,
		},
		{
			name: "six images",
			images: []domain.PetImage{
				img(0, true), img(1, false), img(2, false), img(3, false), img(4, false), img(5, false),
			},
			checkPositions: true,
			want:           false,
		},
		{
			name:           "no cover",
			images:         []domain.PetImage{img(0, false), img(1, false)},
			checkPositions: true,
			want:           false,
		},
		{
			name:           "two covers",
			images:         []domain.PetImage{img(0, true), img(1, true)},
			checkPositions: true,
			want:           false,
		},
		{
			name:           "duplicate positions rejected at submission",
			images:         []domain.PetImage{img(0, true), img(0, false)},
			checkPositions: true,
			want:           false,
		},
		{
			name:           "duplicate positions tolerated when positions unchecked",
			images:         []domain.PetImage{img(0, true), img(0, false)},
			checkPositions: false,
			want:           true,
		},
		{
			name:           "negative position rejected at submission",
			images:         []domain.PetImage{img(-1, true)},
			checkPositions: true,
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidateImageSet(tt.images, tt.checkPositions))
		})
	}
}

func TestIsValidPetImagePath(t *testing.T) {
	petID := "pet-123"

	assert.True(t, domain.IsValidPetImagePath("pets/pet-123/photo.jpg", petID))
	assert.True(t, domain.IsValidPetImagePath("pets/pet-123/nested/photo.jpg", petID))
	assert.False(t, domain.IsValidPetImagePath("pets/pet-123/", petID), "prefix alone has no object name")
	assert.False(t, domain.IsValidPetImagePath("pets/other-pet/photo.jpg", petID))
	assert.False(t, domain.IsValidPetImagePath("uploads/pet-123/photo.jpg", petID))
	assert.False(t, domain.IsValidPetImagePath("", petID))
}
