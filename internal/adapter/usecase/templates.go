package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Notification texts sent by the reminder service. Kept as plain
// formatting helpers; the business writes in Serbian to its customers.

func installmentEmailSubject() string { return "Podsetnik za ratu" }

func installmentEmailBody(customer string, amount decimal.Decimal, dueDate string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1 style="background: #4F46E5; color: white; padding: 20px; text-align: center;">Podsetnik za uplatu rate</h1>
      <p>Po&scaron;tovani/a %s,</p>
      <p>Ovim putem Vas podse&cacute;amo da je danas datum dospe&cacute;a Va&scaron;e rate.</p>
      <p><strong>Iznos rate:</strong> <span style="font-size: 24px; font-weight: bold; color: #4F46E5;">%s RSD</span></p>
      <p><strong>Datum dospe&cacute;a:</strong> %s</p>
      <p>Molimo Vas da izvr&scaron;ite uplatu u najkra&cacute;em mogu&cacute;em roku.</p>
      <p>Ukoliko ste ve&cacute; izvr&scaron;ili uplatu, molimo zanemarite ovu poruku.</p>
    </div>
  </body>
</html>`, customer, amount.StringFixed(2), dueDate)
}

func installmentSMSBody(customer string, amount decimal.Decimal, dueDate string) string {
	return fmt.Sprintf("Postovani/a %s, podsetnik: Vasa rata od %s RSD dospeva %s. Molimo izvrsite uplatu. Hvala!",
		customer, amount.StringFixed(2), dueDate)
}

func hostingEmailSubject() string { return "Podsetnik za obnovu hostinga" }

func hostingEmailBody(customer, renewalDate string, daysLeft int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1 style="background: #4F46E5; color: white; padding: 20px; text-align: center;">Podsetnik za obnovu hostinga</h1>
      <p>Po&scaron;tovani/a %s,</p>
      <p>Va&scaron; hosting isti&ccaron;e za <strong>%d dana</strong>.</p>
      <p><strong>Datum obnavljanja:</strong> %s</p>
      <p>Molimo Vas da obnovite hosting na vreme kako bi Va&scaron; sajt ostao dostupan.</p>
    </div>
  </body>
</html>`, customer, daysLeft, renewalDate)
}

func hostingSMSBody(customer, renewalDate string, daysLeft int) string {
	return fmt.Sprintf("Postovani/a %s, Vas hosting istice za %d dana (%s). Molimo obnovite na vreme. Hvala!",
		customer, daysLeft, renewalDate)
}

// formatDate renders dates the way the business writes them.
func formatDate(t time.Time) string {
	return t.Format("02.01.2006.")
}
