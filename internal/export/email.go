package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shembeark/registrations-backend/pkg/i18n"
)

// Report timestamps are presented in South African Standard Time.
var sast = time.FixedZone("SAST", 2*60*60)

func reportSubject(count int, generated time.Time) string {
	return i18n.T(i18n.LocaleEnglish, "report.subject", map[string]string{
		"count": strconv.Itoa(count),
		"date":  generated.UTC().Format("2006-01-02"),
	})
}

func attachmentName(generated time.Time) string {
	return "registrations-" + generated.UTC().Format("2006-01-02") + ".csv"
}

func reportBody(count int, generated time.Time) string {
	heading := i18n.T(i18n.LocaleEnglish, "report.heading", nil)
	badge := i18n.T(i18n.LocaleEnglish, "report.badge", nil)
	footer := i18n.T(i18n.LocaleEnglish, "report.footer", nil)
	tagline := i18n.T(i18n.LocaleEnglish, "footer.copyright", nil)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>%s</title></head>
<body style="margin:0;padding:0;background-color:#ffffff;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;">
  <div style="max-width:600px;margin:0 auto;">
    <div style="text-align:center;padding:40px 20px 30px;border-bottom:2px solid #171717;">
      <h1 style="margin:0;color:#171717;font-size:28px;font-weight:600;">%s</h1>
    </div>
    <div style="padding:40px 20px;">
      <div style="border:2px solid #171717;border-radius:8px;padding:30px;text-align:center;">
        <div style="display:inline-block;background-color:#171717;color:#ffffff;padding:8px 16px;border-radius:20px;font-size:14px;margin-bottom:15px;">%s</div>
        <h2 style="margin:0;color:#171717;font-size:48px;font-weight:700;">%d</h2>
        <p style="margin:20px 0 0;color:#666;font-size:14px;">Report generated: %s (SAST)</p>
      </div>
      <p style="margin:30px 0 0;color:#666;font-size:14px;text-align:center;">
        All registration details are included in the attached CSV file:<br>
        <strong style="color:#171717;">%s</strong>
      </p>
      <div style="text-align:center;padding:20px 0;margin-top:30px;border-top:1px solid #e5e5e5;">
        <p style="margin:0;color:#999;font-size:12px;">%s<br>%s</p>
      </div>
    </div>
  </div>
</body>
</html>`,
		heading,
		heading,
		badge,
		count,
		generated.In(sast).Format("2 January 2006 15:04"),
		attachmentName(generated),
		footer,
		tagline,
	)
}
