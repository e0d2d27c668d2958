package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ShareLinks holds everything a client needs to share a birthday page
type ShareLinks struct {
	PageURL     string `json:"page_url"`
	WhatsAppURL string `json:"whatsapp_url"`
	TelegramURL string `json:"telegram_url"`
	CalendarURL string `json:"calendar_url"`
}

const shareText = "Check out this awesome birthday page I made!"

// BuildShareLinks assembles the share URL for a page plus the social and
// calendar variants
func BuildShareLinks(baseURL, id, name string, date, now time.Time) *ShareLinks {
	pageURL := strings.TrimRight(baseURL, "/") + "/birthday/" + id
	return &ShareLinks{
		PageURL: pageURL,
		WhatsAppURL: "https://api.whatsapp.com/send?text=" +
			url.QueryEscape(shareText) + "%20" + url.QueryEscape(pageURL),
		TelegramURL: "https://t.me/share/url?url=" +
			url.QueryEscape(pageURL) + "&text=" + url.QueryEscape(shareText),
		CalendarURL: buildCalendarLink(name, date, now),
	}
}

// buildCalendarLink formats a Google Calendar event URL for the birthday.
// The stored year may be the year of creation, so the month and day are
// projected into the current year.
func buildCalendarLink(name string, date, now time.Time) string {
	year := now.UTC().Year()
	start := time.Date(year, date.UTC().Month(), date.UTC().Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	const stamp = "20060102T150405Z"
	return fmt.Sprintf(
		"https://www.google.com/calendar/render?action=TEMPLATE&text=%s&dates=%s/%s&details=%s",
		url.QueryEscape("Birthday: "+name),
		start.Format(stamp),
		end.Format(stamp),
		url.QueryEscape("Don't forget to wish "+name+" a happy birthday!"),
	)
}
