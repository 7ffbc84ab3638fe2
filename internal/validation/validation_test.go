package validation

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/model"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Secret", ""},
		{"too short", "Abcde", "at least 6"},
		{"no uppercase", "secret1", "uppercase"},
		{"no lowercase", "SECRET1", "lowercase"},
		{"unicode letters", "ÉcoleX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePasswordConfirmation(t *testing.T) {
	assert.NoError(t, ValidatePasswordConfirmation("Secret", "Secret"))
	assert.Error(t, ValidatePasswordConfirmation("Secret", "secret"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("Ada <ada@example.com>"))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ada"))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(string(bytes.Repeat([]byte("a"), 101))))
	assert.NoError(t, ValidateName(strings.Repeat("é", 100)))
	assert.EqualError(t, ValidateName("Ada "), "name contains invalid characters")
}

func TestValidateText(t *testing.T) {
	assert.EqualError(t, ValidateText("title", "", MaxTitleLength), "title is required")
	assert.EqualError(t, ValidateText("medium", strings.Repeat("x", 101), MaxMediumLength), "medium is too long (max 100 characters)")
	assert.NoError(t, ValidateText("title", "  Harbour  ", MaxTitleLength))
}

func validForm() ArtworkForm {
	return ArtworkForm{
		ImageURL:    "https://img.example.com/sunset.jpg",
		Title:       "Sunset",
		Category:    "digital art",
		Medium:      "Procreate",
		Description: "Warm *evening* light.",
		Dimensions:  "3000x2000",
		Price:       "120.50",
		Visibility:  "Private",
	}
}

func TestArtwork_Valid(t *testing.T) {
	in, err := Artwork(validForm())
	require.NoError(t, err)

	assert.Equal(t, "Sunset", in.Title)
	assert.Equal(t, model.CategoryDigitalArt, in.Category)
	assert.Equal(t, model.VisibilityPrivate, in.Visibility)
	require.NotNil(t, in.Price)
	assert.InDelta(t, 120.5, *in.Price, 1e-9)
	assert.Equal(t, "Warm *evening* light.", in.Description)
}

func TestArtwork_Defaults(t *testing.T) {
	f := validForm()
	f.Price = ""
	f.Visibility = ""
	f.Dimensions = ""

	in, err := Artwork(f)
	require.NoError(t, err)
	assert.Nil(t, in.Price)
	assert.Equal(t, model.VisibilityPublic, in.Visibility)
}

func TestArtwork_StripsMarkupFromTitle(t *testing.T) {
	f := validForm()
	f.Title = "<b>Sunset</b><script>alert(1)</script>"

	in, err := Artwork(f)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", in.Title)
}

func TestArtwork_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *ArtworkForm)
		field string
	}{
		{"missing image", func(f *ArtworkForm) { f.ImageURL = "" }, "imageURL"},
		{"relative image", func(f *ArtworkForm) { f.ImageURL = "/img.png" }, "imageURL"},
		{"javascript image", func(f *ArtworkForm) { f.ImageURL = "javascript:alert(1)" }, "imageURL"},
		{"missing title", func(f *ArtworkForm) { f.Title = "  " }, "title"},
		{"unknown category", func(f *ArtworkForm) { f.Category = "Pottery" }, "category"},
		{"all is not a category", func(f *ArtworkForm) { f.Category = "All" }, "category"},
		{"missing medium", func(f *ArtworkForm) { f.Medium = "" }, "medium"},
		{"missing description", func(f *ArtworkForm) { f.Description = "" }, "description"},
		{"price not a number", func(f *ArtworkForm) { f.Price = "cheap" }, "price"},
		{"negative price", func(f *ArtworkForm) { f.Price = "-1" }, "price"},
		{"bad visibility", func(f *ArtworkForm) { f.Visibility = "Hidden" }, "visibility"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)

			_, err := Artwork(f)
			var fe FieldErrors
			require.True(t, errors.As(err, &fe))
			assert.Len(t, fe, 1)
			assert.Contains(t, fe, tt.field)
			assert.Equal(t, fe[tt.field], fe.First())
		})
	}
}

func TestDetectImage(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	ct, err := detect(bytes.NewReader(png), "art.PNG", ImageConstraints)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	_, err = detect(bytes.NewReader(png), "art.exe", ImageConstraints)
	assert.ErrorContains(t, err, "extension")

	_, err = detect(bytes.NewReader([]byte("<html></html>")), "art.png", ImageConstraints)
	assert.ErrorContains(t, err, "invalid file type")
	var fe *FileError
	assert.ErrorAs(t, err, &fe)
}

func TestWithMaxSize(t *testing.T) {
	assert.Equal(t, int64(1<<20), ImageConstraints.WithMaxSize(1<<20).MaxSize)
	assert.Equal(t, ImageConstraints.MaxSize, ImageConstraints.WithMaxSize(0).MaxSize)
}

func TestArtwork_KeepsAmpersandInTitle(t *testing.T) {
	f := validForm()
	f.Title = "Salt & Pepper"

	in, err := Artwork(f)
	require.NoError(t, err)
	assert.Equal(t, "Salt & Pepper", in.Title)
}
