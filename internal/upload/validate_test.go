package upload

import "testing"

func TestValidate(t *testing.T) {
	t.Run("Given a jpeg within the limit When validated Then it is accepted with the canonical extension", func(t *testing.T) {
		res := Validate("menu.jpeg", "image/jpeg", 1024)
		if !res.OK {
			t.Fatalf("expected acceptance, got %q", res.Message)
		}
		if res.Ext != ".jpg" {
			t.Errorf("expected .jpg, got %q", res.Ext)
		}
	})

	t.Run("Given a content type with parameters When validated Then the parameters are ignored", func(t *testing.T) {
		res := Validate("menu.png", "image/png; charset=binary", 1024)
		if !res.OK {
			t.Fatalf("expected acceptance, got %q", res.Message)
		}
	})

	t.Run("Given a missing content type When validated Then the extension decides", func(t *testing.T) {
		res := Validate("photo.WEBP", "", 1024)
		if !res.OK {
			t.Fatalf("expected acceptance, got %q", res.Message)
		}
		if res.Ext != ".webp" {
			t.Errorf("expected .webp, got %q", res.Ext)
		}
	})

	t.Run("Given a non-image upload When validated Then it is rejected", func(t *testing.T) {
		res := Validate("report.pdf", "application/pdf", 1024)
		if res.OK {
			t.Fatal("expected rejection for non-image type")
		}
	})

	t.Run("Given an oversized upload When validated Then it is rejected", func(t *testing.T) {
		res := Validate("big.jpg", "image/jpeg", MaxImageBytes+1)
		if res.OK {
			t.Fatal("expected rejection for oversized file")
		}
	})

	t.Run("Given an empty file When validated Then it is rejected", func(t *testing.T) {
		res := Validate("empty.jpg", "image/jpeg", 0)
		if res.OK {
			t.Fatal("expected rejection for empty file")
		}
	})
}
