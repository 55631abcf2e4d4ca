package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitReminderMessage(t *testing.T) {
	title, body := visitReminderMessage("hr", "Ivana", "Ana")
	assert.Equal(t, "Ivana, nedostaješ nam!", title)
	assert.Contains(t, body, "Ana")

	title, body = visitReminderMessage("hr", "", "")
	assert.Equal(t, "Nedostaješ nam!", title)
	assert.NotEmpty(t, body)

	// Empty locale means the brand never set one; stay on the launch copy.
	title, _ = visitReminderMessage("", "Ivana", "")
	assert.Equal(t, "Ivana, nedostaješ nam!", title)

	title, body = visitReminderMessage("en", "Jane", "Ana")
	assert.Equal(t, "Jane, we miss you!", title)
	assert.Contains(t, body, "Ana")
}

func TestAppointmentReminderMessage(t *testing.T) {
	title, body := appointmentReminderMessage("hr", "Studio Centar", "Ana", "14:00")
	assert.Equal(t, "Vidimo se za 2 sata!", title)
	assert.Equal(t, "Tvoj termin u Studio Centar s Ana kreće u 14:00.", body)

	_, body = appointmentReminderMessage("hr", "", "", "14:00")
	assert.Equal(t, "Tvoj termin u lokacija kreće u 14:00.", body)

	title, body = appointmentReminderMessage("en", "Downtown Salon", "", "09:30")
	assert.Equal(t, "See you in 2 hours!", title)
	assert.Equal(t, "Your appointment at Downtown Salon starts at 09:30.", body)
}

func TestCancellationNoticeMessage(t *testing.T) {
	title, body := cancellationNoticeMessage("hr", "14:00")
	assert.Equal(t, "Termin otkazan", title)
	assert.Equal(t, "Tvoj termin u 14:00 je otkazan.", body)

	title, _ = cancellationNoticeMessage("en", "14:00")
	assert.Equal(t, "Appointment cancelled", title)
}
