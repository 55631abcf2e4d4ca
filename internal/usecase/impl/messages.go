package impl

import "fmt"

// Message rendering is kept as pure functions over a small structured
// context so the copy can be tested apart from the transactional logic.
// Croatian is the launch locale; anything else falls back to English.

const (
	localeCroatian = "hr"

	dataTypeVisitReminder       = "visit_reminder"
	dataTypeAppointmentReminder = "appointment_reminder"
	dataTypeCancellationNotice  = "cancellation_notice"
)

// visitReminderMessage renders the "come back" retention nudge.
func visitReminderMessage(locale, customerName, staffName string) (title, body string) {
	if locale != localeCroatian && locale != "" {
		if customerName != "" {
			title = fmt.Sprintf("%s, we miss you!", customerName)
		} else {
			title = "We miss you!"
		}
		if staffName != "" {
			body = fmt.Sprintf("%s is looking forward to seeing you again. Book your next visit in seconds!", staffName)
		} else {
			body = "We are looking forward to seeing you again. Book your next visit in seconds!"
		}

		return title, body
	}

	if customerName != "" {
		title = fmt.Sprintf("%s, nedostaješ nam!", customerName)
	} else {
		title = "Nedostaješ nam!"
	}
	if staffName != "" {
		body = fmt.Sprintf("%s te čeka i veseli se tvom povratku. Rezerviraj termin – brzo i jednostavno!", staffName)
	} else {
		body = "Čekamo te i veselimo se tvom povratku. Rezerviraj termin – brzo i jednostavno!"
	}

	return title, body
}

// appointmentReminderMessage renders the 2-hours-before reminder. timeStr is
// the appointment start formatted in the brand's local time zone.
func appointmentReminderMessage(locale, venueName, staffName, timeStr string) (title, body string) {
	if locale != localeCroatian && locale != "" {
		title = "See you in 2 hours!"
		if venueName == "" {
			venueName = "the salon"
		}
		staffPart := ""
		if staffName != "" {
			staffPart = fmt.Sprintf(" with %s", staffName)
		}
		body = fmt.Sprintf("Your appointment at %s%s starts at %s.", venueName, staffPart, timeStr)

		return title, body
	}

	title = "Vidimo se za 2 sata!"
	if venueName == "" {
		venueName = "lokacija"
	}
	staffPart := ""
	if staffName != "" {
		staffPart = fmt.Sprintf(" s %s", staffName)
	}
	body = fmt.Sprintf("Tvoj termin u %s%s kreće u %s.", venueName, staffPart, timeStr)

	return title, body
}

// cancellationNoticeMessage renders the best-effort notice sent to the
// assigned staff member when an appointment is cancelled.
func cancellationNoticeMessage(locale, timeStr string) (title, body string) {
	if locale != localeCroatian && locale != "" {
		return "Appointment cancelled", fmt.Sprintf("Your %s appointment was cancelled.", timeStr)
	}

	return "Termin otkazan", fmt.Sprintf("Tvoj termin u %s je otkazan.", timeStr)
}
