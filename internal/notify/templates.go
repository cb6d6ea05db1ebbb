package notify

import "fmt"

// ReservationMail is the data needed to render either reservation email.
// Date is already formatted as YYYY-MM-DD.
type ReservationMail struct {
	CustomerName     string
	ConfirmationCode string
	Date             string
	Time             string
	Guests           string
	Message          string
	Status           string
	TableNumber      string
	AdminNotes       string
}

// Customer-facing texts are Turkish, matching the site itself. Status
// keys are the API's English values; only the rendering is localized.

var statusLabels = map[string]string{
	"pending":   "Beklemede",
	"confirmed": "Onaylandı",
	"cancelled": "İptal Edildi",
	"completed": "Tamamlandı",
}

var statusColors = map[string]string{
	"pending":   "#ffc107",
	"confirmed": "#28a745",
	"cancelled": "#dc3545",
	"completed": "#6c757d",
}

var statusBlurbs = map[string]string{
	"pending":   "<p>Rezervasyonunuz değerlendiriliyor. En kısa sürede size dönüş yapacağız.</p>",
	"confirmed": "<p>Harika! Rezervasyonunuz onaylandı. Sizi aramızda görmek için sabırsızlanıyoruz!</p>",
	"cancelled": "<p>Üzgünüz, rezervasyonunuz iptal edilmiştir. Başka bir tarih için tekrar deneyebilirsiniz.</p>",
	"completed": "<p>Bizi tercih ettiğiniz için teşekkürler! Deneyiminiz hakkında görüşlerinizi paylaşırsanız çok memnun oluruz.</p>",
}

// StatusLabel returns the Turkish display label for a status value,
// falling back to the raw value.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}

const mailFooter = `
      <hr style="margin: 30px 0;">
      <p style="font-size: 12px; color: #666;">
        LunaBrew<br>
        Ankara, Çankaya, Tunalı Hilmi Caddesi, No: 12T.<br>
        Tel: (312) 454 8484<br>
        Email: info@lunabrew.com
      </p>`

// ConfirmationEmail renders the message sent right after a reservation
// is received.
func ConfirmationEmail(m ReservationMail) (subject, html string) {
	subject = "Rezervasyon Onayı - LunaBrew"
	extra := ""
	if m.Message != "" {
		extra = fmt.Sprintf("<p><strong>Mesajınız:</strong> %s</p>", m.Message)
	}
	html = fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #e3c086;">Rezervasyon Onayı</h2>
      <p>Sayın %s,</p>
      <p>Rezervasyonunuz başarıyla alınmıştır. Detaylar aşağıdaki gibidir:</p>
      <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Rezervasyon Detayları</h3>
        <p><strong>Onay Kodu:</strong> %s</p>
        <p><strong>Tarih:</strong> %s</p>
        <p><strong>Saat:</strong> %s</p>
        <p><strong>Kişi Sayısı:</strong> %s</p>
        <p><strong>Durum:</strong> %s</p>
        %s
      </div>
      <p>Rezervasyonunuzla ilgili herhangi bir değişiklik olması durumunda size bilgi vereceğiz.</p>
      <p>Teşekkürler,<br>LunaBrew Ekibi</p>%s
    </div>`,
		m.CustomerName, m.ConfirmationCode, m.Date, m.Time, m.Guests,
		StatusLabel(m.Status), extra, mailFooter)
	return subject, html
}

// StatusUpdateEmail renders the message sent after an admin changes a
// reservation's status.
func StatusUpdateEmail(m ReservationMail) (subject, html string) {
	subject = "Rezervasyon Durumu Güncellendi - LunaBrew"
	color, ok := statusColors[m.Status]
	if !ok {
		color = "#6c757d"
	}
	table := ""
	if m.TableNumber != "" {
		table = fmt.Sprintf("<p><strong>Masa No:</strong> %s</p>", m.TableNumber)
	}
	notes := ""
	if m.AdminNotes != "" {
		notes = fmt.Sprintf("<p><strong>Not:</strong> %s</p>", m.AdminNotes)
	}
	html = fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #e3c086;">Rezervasyon Durumu Güncellendi</h2>
      <p>Sayın %s,</p>
      <p>Rezervasyonunuzun durumu güncellendi:</p>
      <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Güncel Durum</h3>
        <p><strong>Durum:</strong> <span style="color: %s; font-weight: bold;">%s</span></p>
        <p><strong>Tarih:</strong> %s</p>
        <p><strong>Saat:</strong> %s</p>
        %s%s
      </div>
      %s
      <p>Teşekkürler,<br>LunaBrew Ekibi</p>%s
    </div>`,
		m.CustomerName, color, StatusLabel(m.Status), m.Date, m.Time,
		table, notes, statusBlurbs[m.Status], mailFooter)
	return subject, html
}
