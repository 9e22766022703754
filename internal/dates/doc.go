// Package dates provides the calendar arithmetic behind the month grid and the
// day-detail screen.
//
// Month names are localized through github.com/goodsign/monday. Day ranges are
// computed with the Gregorian calendar from the time package, so February has
// 29 days exactly in leap years. Hour slots are the 24 fixed labels "00:00"
// through "23:00" shown on a day screen; they carry no date or time zone.
package dates
