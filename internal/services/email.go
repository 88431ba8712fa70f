package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"velora_back_office/internal/models"
)

// SendDailyOrdersRecap envoie le récapitulatif de soumission à la marque.
// L'échec n'est jamais bloquant pour la soumission elle-même.
func SendDailyOrdersRecap(to string, brandName string, day string, items []models.DailyOrderItem) error {
	msg := mail.NewMsg()

	if err := msg.From("noreply@velora.io"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("📦 Commandes du %s soumises - %s", day, brandName))
	msg.SetBodyString(mail.TypeTextHTML, buildRecapHTML(brandName, day, items))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du récapitulatif à", to)
	return client.DialAndSend(msg)
}

func buildRecapHTML(brandName string, day string, items []models.DailyOrderItem) string {
	var rows strings.Builder
	for _, it := range items {
		color := it.Color
		if color == "" {
			color = "—"
		}
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
			</tr>`, it.SKU, it.Size, color, it.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Commandes en rupture soumises</h2>
		<p>Bonjour %s,</p>
		<p>Les lignes suivantes du %s ont été soumises au réassort :</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">SKU</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Taille</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Couleur</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Quantité</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<p style="color: #999; font-size: 12px;">Cet email a été envoyé automatiquement par le back-office Velora.</p>
	</div>
</body>
</html>
`, brandName, day, rows.String())
}
