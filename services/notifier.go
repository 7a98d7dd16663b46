package services

import (
	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// Notifier is the outgoing notification collaborator. Controllers invoke
// it after successful writes; failures must never fail the request.
type Notifier interface {
	OrderCreated(order *models.Order)
	ReservationCreated(reservation *models.Reservation)
	ContactReceived(msg *models.ContactMessage)
}

// LogNotifier writes notifications to the application log. It stands in
// for an email sender; swapping in an SMTP implementation only touches
// this file.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) OrderCreated(order *models.Order) {
	utils.InfoLogger.Printf("notification: order %s created, total %s (%s/%s)",
		order.No, order.Total, order.DeliveryMode, order.PaymentMode)
}

func (n *LogNotifier) ReservationCreated(reservation *models.Reservation) {
	utils.InfoLogger.Printf("notification: reservation for %s %s on %s %s (%d guests)",
		reservation.FirstName, reservation.LastName,
		reservation.Date.Format("2006-01-02"), reservation.Time, reservation.Guests)
}

func (n *LogNotifier) ContactReceived(msg *models.ContactMessage) {
	utils.InfoLogger.Printf("notification: contact message from %s <%s>", msg.Name, msg.Email)
}
