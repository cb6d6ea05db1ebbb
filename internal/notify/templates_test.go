package notify

import (
	"strings"
	"testing"
)

func TestConfirmationEmail(t *testing.T) {
	t.Run("Given a reservation When rendered Then the code and booking facts appear", func(t *testing.T) {
		// Given
		m := ReservationMail{
			CustomerName:     "Ayşe Yılmaz",
			ConfirmationCode: "LB12345678ABCD",
			Date:             "15.03.2026",
			Time:             "19:30",
			Guests:           "4",
			Status:           "pending",
		}

		// When
		subject, html := ConfirmationEmail(m)

		// Then
		if !strings.Contains(subject, "Rezervasyon Onayı") {
			t.Errorf("unexpected subject %q", subject)
		}
		for _, want := range []string{"LB12345678ABCD", "Ayşe Yılmaz", "19:30", "Beklemede"} {
			if !strings.Contains(html, want) {
				t.Errorf("expected body to contain %q", want)
			}
		}
	})

	t.Run("Given no customer message When rendered Then the message block is omitted", func(t *testing.T) {
		_, html := ConfirmationEmail(ReservationMail{Status: "pending"})
		if strings.Contains(html, "Mesajınız") {
			t.Error("message block should be absent without a customer message")
		}
	})
}

func TestStatusUpdateEmail(t *testing.T) {
	t.Run("Given a confirmed reservation with a table When rendered Then label and table appear", func(t *testing.T) {
		// Given
		m := ReservationMail{
			CustomerName: "Mehmet Demir",
			Status:       "confirmed",
			TableNumber:  "12",
			AdminNotes:   "pencere kenarı",
		}

		// When
		_, html := StatusUpdateEmail(m)

		// Then
		for _, want := range []string{"Onaylandı", "Masa No", "12", "pencere kenarı"} {
			if !strings.Contains(html, want) {
				t.Errorf("expected body to contain %q", want)
			}
		}
	})
}

func TestStatusLabel(t *testing.T) {
	t.Run("Given an unknown status When labelled Then the raw value is returned", func(t *testing.T) {
		if got := StatusLabel("archived"); got != "archived" {
			t.Errorf("expected passthrough, got %q", got)
		}
	})
}
